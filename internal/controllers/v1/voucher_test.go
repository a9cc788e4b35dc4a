package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/school-central/centralserver/internal/controllers/v1"
	"github.com/school-central/centralserver/internal/models"
	"github.com/school-central/centralserver/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const voucherBase = "http://example.com/api/v1/reports/disbursement-voucher"

// createTestVoucher creates a voucher via the API.
func createTestVoucher(t *testing.T, path string, voucher v1.VoucherEditable, expectedStatus ...int) v1.Voucher {
	// Default to 200 OK as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodPost, voucherBase+path, voucher)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var created v1.Voucher
	if r.Code == http.StatusOK {
		test.DecodeResponse(t, &r, &created)
	}

	return created
}

// TestVoucherOptions verifies the allowed HTTP verbs for both voucher paths.
func (suite *TestSuiteStandard) TestVoucherOptions() {
	tests := []struct {
		name     string // Name for the test
		path     string // Path to request
		expected string // Expected allow header
	}{
		{"Month collection", "/4/2024/2", "OPTIONS, GET"},
		{"Single day", "/4/2024/2/15", "OPTIONS, GET, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, voucherBase+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.expected, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestVoucherCreate() {
	voucher := createTestVoucher(suite.T(), "/4/2024/2/15", v1.VoucherEditable{
		Payee:         "Juan dela Cruz",
		ModeOfPayment: "MDS Check",
		Entries: []v1.VoucherEntryData{
			{Particulars: "Bond paper", Unit: "ream", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromFloat(245)},
		},
	})

	assert.Equal(suite.T(), uint64(4), voucher.SchoolID)
	assert.Equal(suite.T(), "2024-02-15", voucher.Date.String())
	assert.Equal(suite.T(), "2024-02", voucher.Parent.String())
	assert.Equal(suite.T(), models.StatusDraft, voucher.ReportStatus)

	if assert.Len(suite.T(), voucher.Entries, 1) {
		assert.True(suite.T(), voucher.Entries[0].Quantity.Equal(decimal.NewFromInt(2)))
	}
}

// TestVoucherCreateReplaces verifies that posting to the same day again
// replaces the line items instead of appending to them.
func (suite *TestSuiteStandard) TestVoucherCreateReplaces() {
	path := "/4/2024/2/15"

	_ = createTestVoucher(suite.T(), path, v1.VoucherEditable{
		Payee:         "Juan dela Cruz",
		ModeOfPayment: "MDS Check",
		Entries: []v1.VoucherEntryData{
			{Particulars: "Bond paper", Unit: "ream", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromFloat(245)},
			{Particulars: "Staplers", Unit: "piece", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromFloat(120)},
		},
	})

	updated := createTestVoucher(suite.T(), path, v1.VoucherEditable{
		Payee:         "Maria Clara",
		ModeOfPayment: "ADA",
		Entries: []v1.VoucherEntryData{
			{Particulars: "Chalk", Unit: "box", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromFloat(80)},
		},
	})

	assert.Equal(suite.T(), "Maria Clara", updated.Payee)
	assert.Equal(suite.T(), "ADA", updated.ModeOfPayment)
	assert.Len(suite.T(), updated.Entries, 1)

	// The GET view agrees with the upsert response
	r := test.Request(suite.T(), http.MethodGet, voucherBase+path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var fetched v1.Voucher
	test.DecodeResponse(suite.T(), &r, &fetched)
	assert.Equal(suite.T(), updated, fetched)
}

func (suite *TestSuiteStandard) TestVoucherCreateInvalid() {
	tests := []struct {
		name   string // Name for the test
		path   string // Path to post to
		body   any    // Request body
		status int    // Expected HTTP status
	}{
		{"Day does not exist in month", "/4/2024/2/30", v1.VoucherEditable{Payee: "Juan dela Cruz"}, http.StatusBadRequest},
		{"Month out of range", "/4/2024/13/1", v1.VoucherEditable{Payee: "Juan dela Cruz"}, http.StatusBadRequest},
		{"Day out of range", "/4/2024/2/32", v1.VoucherEditable{Payee: "Juan dela Cruz"}, http.StatusBadRequest},
		{"School ID not parseable", "/NotANumber/2024/2/15", v1.VoucherEditable{Payee: "Juan dela Cruz"}, http.StatusBadRequest},
		{"Broken body", "/4/2024/2/15", `{ "payee": 2" }`, http.StatusBadRequest},
		{"Empty body", "/4/2024/2/15", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, voucherBase+tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestVoucherGetNotFound() {
	r := test.Request(suite.T(), http.MethodGet, voucherBase+"/4/2024/2/15", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestVoucherGetForMonth() {
	_ = createTestVoucher(suite.T(), "/4/2024/2/15", v1.VoucherEditable{
		Payee:                     "Juan dela Cruz",
		ModeOfPayment:             "MDS Check",
		LinkedLiquidationCategory: "operating_expenses",
	})
	_ = createTestVoucher(suite.T(), "/4/2024/2/3", v1.VoucherEditable{
		Payee:         "Maria Clara",
		ModeOfPayment: "ADA",
	})

	// A voucher in another month stays invisible
	_ = createTestVoucher(suite.T(), "/4/2024/3/1", v1.VoucherEditable{
		Payee:         "Crisostomo Ibarra",
		ModeOfPayment: "Others",
	})

	tests := []struct {
		name   string   // Name for the test
		path   string   // Path to request
		payees []string // Payees expected in order
	}{
		{"All vouchers of the month", "/4/2024/2", []string{"Maria Clara", "Juan dela Cruz"}},
		{"Filtered by category", "/4/2024/2?linked_category=operating_expenses", []string{"Juan dela Cruz"}},
		{"Category without matches", "/4/2024/2?linked_category=trust_fund", []string{}},
		{"Empty month", "/4/2024/4", []string{}},
		{"Other school", "/7/2024/2", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, voucherBase+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var vouchers []v1.Voucher
			test.DecodeResponse(t, &r, &vouchers)

			payees := make([]string, 0, len(vouchers))
			for _, voucher := range vouchers {
				payees = append(payees, voucher.Payee)
			}
			assert.Equal(t, tt.payees, payees)
		})
	}
}

// TestVoucherUnlink verifies that re-submitting a voucher without a
// category removes it from the filtered view.
func (suite *TestSuiteStandard) TestVoucherUnlink() {
	path := "/4/2024/2/15"

	_ = createTestVoucher(suite.T(), path, v1.VoucherEditable{
		Payee:                     "Juan dela Cruz",
		ModeOfPayment:             "MDS Check",
		LinkedLiquidationCategory: "operating_expenses",
	})

	unlinked := createTestVoucher(suite.T(), path, v1.VoucherEditable{
		Payee:         "Juan dela Cruz",
		ModeOfPayment: "MDS Check",
	})
	assert.Empty(suite.T(), unlinked.LinkedLiquidationCategory)

	r := test.Request(suite.T(), http.MethodGet, voucherBase+"/4/2024/2?linked_category=operating_expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var vouchers []v1.Voucher
	test.DecodeResponse(suite.T(), &r, &vouchers)
	assert.Empty(suite.T(), vouchers)
}

// TestVoucherDatabaseError verifies that the endpoints return the appropriate
// error when the database is disconnected.
func (suite *TestSuiteStandard) TestVoucherDatabaseError() {
	tests := []struct {
		name   string // Name of the test
		path   string // Path to send request to
		method string // HTTP method to use
		body   any    // The request body
	}{
		{"GET Month", "/4/2024/2", http.MethodGet, ""},
		{"GET Single", "/4/2024/2/15", http.MethodGet, ""},
		{"POST Single", "/4/2024/2/15", http.MethodPost, v1.VoucherEditable{Payee: "Juan dela Cruz"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			recorder := test.Request(t, tt.method, fmt.Sprintf("%s%s", voucherBase, tt.path), tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
		})
	}
}
