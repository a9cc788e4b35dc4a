package models_test

import (
	"testing"
	"time"

	"github.com/school-central/centralserver/internal/models"
	"github.com/school-central/centralserver/pkg/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestVoucherBeforeSave() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	voucher := models.Voucher{
		SchoolID:      1,
		Date:          time.Date(2024, 2, 15, 0, 0, 0, 0, tz),
		Payee:         "  Juan dela Cruz ",
		ModeOfPayment: "MDS Check ",
	}

	err := voucher.BeforeSave(models.DB)
	assert.Nil(suite.T(), err)

	assert.Equal(suite.T(), time.UTC, voucher.Date.Location(), "Timezone for model is not UTC")
	assert.Equal(suite.T(), "Juan dela Cruz", voucher.Payee)
	assert.Equal(suite.T(), "MDS Check", voucher.ModeOfPayment)
	assert.Equal(suite.T(), models.StatusDraft, voucher.ReportStatus)
	assert.True(suite.T(), voucher.Parent.Equal(types.NewMonth(2024, 2)))
}

func (suite *TestSuiteStandard) TestVoucherTotal() {
	voucher := models.Voucher{
		Entries: []models.VoucherEntry{
			{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100)},
			{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(50)},
		},
	}

	assert.True(suite.T(), voucher.Total().Equal(decimal.NewFromInt(250)), "Total is %s, expected 250", voucher.Total())
}

func (suite *TestSuiteStandard) TestVoucherUpsertCreates() {
	voucher := suite.createTestVoucher(models.Voucher{
		SchoolID:      4,
		Date:          time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		Payee:         "Juan dela Cruz",
		ModeOfPayment: "MDS Check",
		Entries: []models.VoucherEntry{
			{Particulars: "Bond paper", Unit: "ream", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromFloat(245.50)},
		},
		CertifiedBy: []models.VoucherCertifiedBy{
			{User: "Maria Santos"},
		},
	})

	assert.NotZero(suite.T(), voucher.ID)
	assert.Equal(suite.T(), models.StatusDraft, voucher.ReportStatus)
	assert.True(suite.T(), voucher.Parent.Equal(types.NewMonth(2024, 2)))
	assert.Len(suite.T(), voucher.Entries, 1)
	assert.Len(suite.T(), voucher.CertifiedBy, 1)
}

func (suite *TestSuiteStandard) TestVoucherUpsertReplaces() {
	date := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	first := suite.createTestVoucher(models.Voucher{
		SchoolID:      4,
		Date:          date,
		Payee:         "Juan dela Cruz",
		ModeOfPayment: "MDS Check",
		Entries: []models.VoucherEntry{
			{Particulars: "Bond paper", Unit: "ream", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100)},
			{Particulars: "Stapler", Unit: "piece", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(150)},
		},
	})

	second := suite.createTestVoucher(models.Voucher{
		SchoolID:      4,
		Date:          date,
		Payee:         "Maria Santos",
		ModeOfPayment: "ADA",
		Entries: []models.VoucherEntry{
			{Particulars: "Chalk", Unit: "box", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(40)},
		},
	})

	assert.Equal(suite.T(), first.ID, second.ID, "Upsert for the same day must update the existing voucher")
	assert.Equal(suite.T(), "Maria Santos", second.Payee)
	assert.Len(suite.T(), second.Entries, 1, "Child rows must be replaced, not appended")

	// Only one voucher for the day exists
	var count int64
	models.DB.Model(&models.Voucher{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)

	// The replaced line items are gone
	var entries int64
	models.DB.Model(&models.VoucherEntry{}).Count(&entries)
	assert.Equal(suite.T(), int64(1), entries)
}

func (suite *TestSuiteStandard) TestVoucherUpsertKeepsReportStatus() {
	date := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	voucher := suite.createTestVoucher(models.Voucher{
		SchoolID:      4,
		Date:          date,
		Payee:         "Juan dela Cruz",
		ModeOfPayment: "MDS Check",
	})

	err := models.DB.Model(&models.Voucher{}).Where("id = ?", voucher.ID).Update("report_status", models.StatusApproved).Error
	assert.Nil(suite.T(), err)

	updated := suite.createTestVoucher(models.Voucher{
		SchoolID:      4,
		Date:          date,
		Payee:         "Juan dela Cruz",
		ModeOfPayment: "Commercial Check",
	})

	assert.Equal(suite.T(), models.StatusApproved, updated.ReportStatus, "Voucher writes must not reset the report status")
}

// TestVoucherUpsertDatabaseClosed verifies that a write against an
// unavailable database surfaces as the general error, even though it
// fails before any query callback runs.
func (suite *TestSuiteStandard) TestVoucherUpsertDatabaseClosed() {
	suite.CloseDB()

	voucher := models.Voucher{
		SchoolID:      4,
		Date:          time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		Payee:         "Juan dela Cruz",
		ModeOfPayment: "MDS Check",
	}

	_, err := voucher.Upsert(models.DB)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestGetVoucherNotFound() {
	_, err := models.GetVoucher(models.DB, 99, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestGetVouchersForMonth() {
	february := types.NewMonth(2024, 2)

	_ = suite.createTestVoucher(models.Voucher{
		SchoolID:                  4,
		Date:                      time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		Payee:                     "Juan dela Cruz",
		ModeOfPayment:             "MDS Check",
		LinkedLiquidationCategory: "operating_expenses",
	})
	_ = suite.createTestVoucher(models.Voucher{
		SchoolID:      4,
		Date:          time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		Payee:         "Maria Santos",
		ModeOfPayment: "ADA",
	})
	_ = suite.createTestVoucher(models.Voucher{
		SchoolID:      7,
		Date:          time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		Payee:         "Other School",
		ModeOfPayment: "Others",
	})
	_ = suite.createTestVoucher(models.Voucher{
		SchoolID:      4,
		Date:          time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Payee:         "Next Month",
		ModeOfPayment: "Others",
	})

	tests := []struct {
		name     string
		schoolID uint64
		month    types.Month
		category string
		payees   []string
	}{
		{"all vouchers for the month, ordered by date", 4, february, "", []string{"Maria Santos", "Juan dela Cruz"}},
		{"filtered by category", 4, february, "operating_expenses", []string{"Juan dela Cruz"}},
		{"category without vouchers", 4, february, "does-not-exist", []string{}},
		{"other school", 7, february, "", []string{"Other School"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			vouchers, err := models.GetVouchersForMonth(models.DB, tt.schoolID, tt.month, tt.category)
			assert.Nil(t, err)

			payees := make([]string, 0)
			for _, v := range vouchers {
				payees = append(payees, v.Payee)
			}
			assert.Equal(t, tt.payees, payees)
		})
	}
}
