package models

import (
	"errors"
	"strings"
	"time"

	"github.com/school-central/centralserver/pkg/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReportStatus is the review lifecycle state of a report document.
type ReportStatus string

const (
	StatusDraft    ReportStatus = "draft"
	StatusReview   ReportStatus = "review"
	StatusApproved ReportStatus = "approved"
	StatusReceived ReportStatus = "received"
	StatusArchived ReportStatus = "archived"
)

// Voucher represents a disbursement voucher filed for a single day of a
// school's monthly liquidation report. A school can file at most one
// voucher per day, writes for the same day replace the existing voucher.
type Voucher struct {
	Model
	SchoolID uint64      `gorm:"uniqueIndex:voucher_school_date"`
	Parent   types.Month // The reporting month the voucher belongs to
	Date     time.Time   `gorm:"uniqueIndex:voucher_school_date"`

	Payee         string
	ModeOfPayment string

	TinOrEmployeeNo      string
	ResponsibilityCenter string
	OrsBursNo            string
	Address              string

	// The liquidation report category the voucher is linked to.
	// Empty means the voucher is not linked to any category.
	LinkedLiquidationCategory string

	ReportStatus ReportStatus

	// Section C: Certified
	CertifiedCashAvailable          bool
	CertifiedSupportingDocsComplete bool
	CertifiedSubjectToDebitAccount  bool

	// Section D: Approved for Payment
	ApprovedBy string

	// Section E: Receipt of Payment
	CheckNo              string
	BankNameAndAccountNo string
	AdaNo                string
	JevNo                string

	Entries           []VoucherEntry           `gorm:"constraint:OnDelete:CASCADE"`
	AccountingEntries []VoucherAccountingEntry `gorm:"constraint:OnDelete:CASCADE"`
	CertifiedBy       []VoucherCertifiedBy     `gorm:"constraint:OnDelete:CASCADE"`
}

// VoucherEntry is a single line item of a disbursement voucher.
type VoucherEntry struct {
	Model
	VoucherID   uint64 `gorm:"index"`
	Receipt     string
	Particulars string
	Unit        string
	Quantity    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	UnitPrice   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// VoucherAccountingEntry is a debit/credit posting of a disbursement
// voucher against a UACS account.
type VoucherAccountingEntry struct {
	Model
	VoucherID    uint64 `gorm:"index"`
	UACSCode     string
	AccountTitle string
	Debit        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Credit       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// VoucherCertifiedBy records a user certifying a disbursement voucher.
type VoucherCertifiedBy struct {
	Model
	VoucherID uint64 `gorm:"index"`
	User      string
}

// BeforeSave normalizes the voucher.
//
// It trims whitespace from all user supplied strings, stores the date
// in UTC and derives the reporting month from the date when unset.
func (v *Voucher) BeforeSave(_ *gorm.DB) error {
	v.Payee = strings.TrimSpace(v.Payee)
	v.ModeOfPayment = strings.TrimSpace(v.ModeOfPayment)
	v.LinkedLiquidationCategory = strings.TrimSpace(v.LinkedLiquidationCategory)

	v.Date = v.Date.In(time.UTC)

	if v.Parent.IsZero() {
		v.Parent = types.MonthOf(v.Date)
	}

	if v.ReportStatus == "" {
		v.ReportStatus = StatusDraft
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
func (v *Voucher) AfterFind(_ *gorm.DB) (err error) {
	v.Date = v.Date.In(time.UTC)
	return nil
}

// Total is the sum of quantity times unit price over all line items.
func (v Voucher) Total() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range v.Entries {
		total = total.Add(entry.Quantity.Mul(entry.UnitPrice))
	}

	return total
}

// Upsert creates the voucher or replaces the voucher already filed for
// the same school and day. Child rows are replaced wholesale. The
// report status of an existing voucher is kept since it is managed by
// the report review workflow, not by voucher writes.
func (v Voucher) Upsert(db *gorm.DB) (Voucher, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var existing Voucher
		err := tx.Where("school_id = ? AND date = ?", v.SchoolID, v.Date).First(&existing).Error
		if err != nil && !errors.Is(err, ErrResourceNotFound) {
			return err
		}

		if err == nil {
			for _, child := range []interface{}{&VoucherEntry{}, &VoucherAccountingEntry{}, &VoucherCertifiedBy{}} {
				err = tx.Where("voucher_id = ?", existing.ID).Delete(child).Error
				if err != nil {
					return err
				}
			}

			v.ID = existing.ID
			v.CreatedAt = existing.CreatedAt
			v.ReportStatus = existing.ReportStatus
			return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&v).Error
		}

		return tx.Create(&v).Error
	})
	if err != nil {
		return Voucher{}, generalError(err)
	}

	return GetVoucher(db, v.SchoolID, v.Date)
}

// GetVoucher returns the voucher filed by a school for a specific day,
// with all child rows loaded.
func GetVoucher(db *gorm.DB, schoolID uint64, date time.Time) (Voucher, error) {
	var voucher Voucher
	err := db.
		Preload("Entries").
		Preload("AccountingEntries").
		Preload("CertifiedBy").
		Where("school_id = ? AND date = ?", schoolID, date).
		First(&voucher).Error

	return voucher, err
}

// GetVouchersForMonth returns all vouchers a school filed for a
// reporting month, ordered by date. A non-empty category restricts the
// result to vouchers linked to that liquidation report category.
func GetVouchersForMonth(db *gorm.DB, schoolID uint64, month types.Month, category string) ([]Voucher, error) {
	q := db.
		Preload("Entries").
		Preload("AccountingEntries").
		Preload("CertifiedBy").
		Where("school_id = ? AND parent = ?", schoolID, month).
		Order("date(vouchers.date) ASC, vouchers.id ASC")

	if category != "" {
		q = q.Where("linked_liquidation_category = ?", category)
	}

	vouchers := make([]Voucher, 0)
	err := q.Find(&vouchers).Error
	return vouchers, err
}
