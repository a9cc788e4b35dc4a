package client

import (
	"github.com/school-central/centralserver/pkg/types"
	"github.com/shopspring/decimal"
)

// LineItemEntry is one purchased item on a voucher.
type LineItemEntry struct {
	Receipt     string          `json:"receipt,omitempty"` // Receipt number, if any
	Particulars string          `json:"particulars"`       // What was paid for
	Unit        string          `json:"unit"`              // Unit of measurement
	Quantity    decimal.Decimal `json:"quantity"`          // Number of units
	UnitPrice   decimal.Decimal `json:"unitPrice"`         // Price per unit
}

// AccountingEntry is one debit/credit posting of a voucher. The
// uacs_code key is snake_case on the wire, kept for compatibility with
// existing consumers.
type AccountingEntry struct {
	UACSCode     string          `json:"uacs_code"`    // UACS object code
	AccountTitle string          `json:"accountTitle"` // Account title for the code
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
}

// VoucherCreateRequest contains the fields that can be set when filing
// a voucher. School and date are taken from the URL path, the fields
// here are informational.
type VoucherCreateRequest struct {
	SchoolID uint64     `json:"schoolId,omitempty"`
	Date     types.Date `json:"date,omitempty"`

	ModeOfPayment string `json:"modeOfPayment"`
	Payee         string `json:"payee"`

	TinOrEmployeeNo      string `json:"tinOrEmployeeNo,omitempty"`
	ResponsibilityCenter string `json:"responsibilityCenter,omitempty"`
	OrsBursNo            string `json:"orsbursNo,omitempty"`
	Address              string `json:"address,omitempty"`

	// The liquidation report category to link the voucher to. An empty
	// value unlinks the voucher.
	LinkedLiquidationCategory string `json:"linkedLiquidationCategory,omitempty"`

	CertifiedCashAvailable          bool `json:"certifiedCashAvailable"`
	CertifiedSupportingDocsComplete bool `json:"certifiedSupportingDocsComplete"`
	CertifiedSubjectToDebitAccount  bool `json:"certifiedSubjectToDebitAccount"`

	ApprovedBy string `json:"approvedBy,omitempty"`

	CheckNo              string `json:"checkNo,omitempty"`
	BankNameAndAccountNo string `json:"bankNameAndAccountNo,omitempty"`
	AdaNo                string `json:"adaNo,omitempty"`
	JevNo                string `json:"jevNo,omitempty"`

	Entries           []LineItemEntry   `json:"entries"`
	AccountingEntries []AccountingEntry `json:"accountingEntries"`
	CertifiedBy       []string          `json:"certifiedBy"`
}

// Voucher is a disbursement voucher as the server returns it.
type Voucher struct {
	Parent   types.Month `json:"parent"` // First day of the reporting month
	Date     types.Date  `json:"date"`
	SchoolID uint64      `json:"schoolId"`

	ModeOfPayment string `json:"modeOfPayment"`
	Payee         string `json:"payee"`

	TinOrEmployeeNo      string `json:"tinOrEmployeeNo,omitempty"`
	ResponsibilityCenter string `json:"responsibilityCenter,omitempty"`
	OrsBursNo            string `json:"orsbursNo,omitempty"`
	Address              string `json:"address,omitempty"`

	LinkedLiquidationCategory string `json:"linkedLiquidationCategory,omitempty"`

	ReportStatus string `json:"reportStatus"`

	CertifiedCashAvailable          bool `json:"certifiedCashAvailable"`
	CertifiedSupportingDocsComplete bool `json:"certifiedSupportingDocsComplete"`
	CertifiedSubjectToDebitAccount  bool `json:"certifiedSubjectToDebitAccount"`

	ApprovedBy string `json:"approvedBy,omitempty"`

	CheckNo              string `json:"checkNo,omitempty"`
	BankNameAndAccountNo string `json:"bankNameAndAccountNo,omitempty"`
	AdaNo                string `json:"adaNo,omitempty"`
	JevNo                string `json:"jevNo,omitempty"`

	Entries           []LineItemEntry   `json:"entries"`
	AccountingEntries []AccountingEntry `json:"accountingEntries"`
	CertifiedBy       []string          `json:"certifiedBy"`
}

// Total returns the sum over all line items of quantity times unit price.
func (v Voucher) Total() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range v.Entries {
		total = total.Add(entry.Quantity.Mul(entry.UnitPrice))
	}

	return total
}

// CreateRequest returns the voucher as a request body for CreateOrUpdate.
// Resubmitting a modified copy of a fetched voucher is how existing
// vouchers are edited.
func (v Voucher) CreateRequest() VoucherCreateRequest {
	return VoucherCreateRequest{
		SchoolID:                        v.SchoolID,
		Date:                            v.Date,
		ModeOfPayment:                   v.ModeOfPayment,
		Payee:                           v.Payee,
		TinOrEmployeeNo:                 v.TinOrEmployeeNo,
		ResponsibilityCenter:            v.ResponsibilityCenter,
		OrsBursNo:                       v.OrsBursNo,
		Address:                         v.Address,
		LinkedLiquidationCategory:       v.LinkedLiquidationCategory,
		CertifiedCashAvailable:          v.CertifiedCashAvailable,
		CertifiedSupportingDocsComplete: v.CertifiedSupportingDocsComplete,
		CertifiedSubjectToDebitAccount:  v.CertifiedSubjectToDebitAccount,
		ApprovedBy:                      v.ApprovedBy,
		CheckNo:                         v.CheckNo,
		BankNameAndAccountNo:            v.BankNameAndAccountNo,
		AdaNo:                           v.AdaNo,
		JevNo:                           v.JevNo,
		Entries:                         v.Entries,
		AccountingEntries:               v.AccountingEntries,
		CertifiedBy:                     v.CertifiedBy,
	}
}
