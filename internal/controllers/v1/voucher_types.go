package v1

import (
	"github.com/school-central/centralserver/internal/models"
	"github.com/school-central/centralserver/pkg/types"
	"github.com/shopspring/decimal"
)

// VoucherEntryData is the API representation of a voucher line item.
type VoucherEntryData struct {
	Receipt     string          `json:"receipt,omitempty" example:"OR-2024-0131"`  // Receipt number, if any
	Particulars string          `json:"particulars" example:"Bond paper"`          // What was paid for
	Unit        string          `json:"unit" example:"ream"`                       // Unit of measurement
	Quantity    decimal.Decimal `json:"quantity" example:"2"`                      // Number of units
	UnitPrice   decimal.Decimal `json:"unitPrice" example:"245.00"`                // Price per unit
}

// VoucherAccountingEntryData is the API representation of a debit/credit
// posting. The uacs_code key is snake_case on the wire, kept for
// compatibility with existing consumers.
type VoucherAccountingEntryData struct {
	UACSCode     string          `json:"uacs_code" example:"5020399000"`                              // UACS object code
	AccountTitle string          `json:"accountTitle" example:"Other Supplies and Materials Expense"` // Account title for the code
	Debit        decimal.Decimal `json:"debit" example:"490.00"`
	Credit       decimal.Decimal `json:"credit" example:"0"`
}

// VoucherEditable contains the fields a client can set on a voucher.
// School and date in the body are informational, the upsert is keyed by
// the values in the URL path.
type VoucherEditable struct {
	SchoolID uint64     `json:"schoolId" example:"4"`
	Date     types.Date `json:"date" example:"2024-02-15"`

	ModeOfPayment string `json:"modeOfPayment" example:"MDS Check"`
	Payee         string `json:"payee" example:"Juan dela Cruz"`

	TinOrEmployeeNo      string `json:"tinOrEmployeeNo,omitempty"`
	ResponsibilityCenter string `json:"responsibilityCenter,omitempty"`
	OrsBursNo            string `json:"orsbursNo,omitempty"`
	Address              string `json:"address,omitempty"`

	// The liquidation report category to link the voucher to. An empty
	// value unlinks the voucher.
	LinkedLiquidationCategory string `json:"linkedLiquidationCategory,omitempty" example:"operating_expenses"`

	// Section C: Certified
	CertifiedCashAvailable          bool `json:"certifiedCashAvailable"`
	CertifiedSupportingDocsComplete bool `json:"certifiedSupportingDocsComplete"`
	CertifiedSubjectToDebitAccount  bool `json:"certifiedSubjectToDebitAccount"`

	// Section D: Approved for Payment
	ApprovedBy string `json:"approvedBy,omitempty"`

	// Section E: Receipt of Payment
	CheckNo              string `json:"checkNo,omitempty"`
	BankNameAndAccountNo string `json:"bankNameAndAccountNo,omitempty"`
	AdaNo                string `json:"adaNo,omitempty"`
	JevNo                string `json:"jevNo,omitempty"`

	Entries           []VoucherEntryData           `json:"entries"`
	AccountingEntries []VoucherAccountingEntryData `json:"accountingEntries"`
	CertifiedBy       []string                     `json:"certifiedBy"`
}

// model returns the database resource for the API representation of the editable fields
func (editable VoucherEditable) model() models.Voucher {
	entries := make([]models.VoucherEntry, 0, len(editable.Entries))
	for _, entry := range editable.Entries {
		entries = append(entries, models.VoucherEntry{
			Receipt:     entry.Receipt,
			Particulars: entry.Particulars,
			Unit:        entry.Unit,
			Quantity:    entry.Quantity,
			UnitPrice:   entry.UnitPrice,
		})
	}

	accountingEntries := make([]models.VoucherAccountingEntry, 0, len(editable.AccountingEntries))
	for _, entry := range editable.AccountingEntries {
		accountingEntries = append(accountingEntries, models.VoucherAccountingEntry{
			UACSCode:     entry.UACSCode,
			AccountTitle: entry.AccountTitle,
			Debit:        entry.Debit,
			Credit:       entry.Credit,
		})
	}

	certifiedBy := make([]models.VoucherCertifiedBy, 0, len(editable.CertifiedBy))
	for _, user := range editable.CertifiedBy {
		certifiedBy = append(certifiedBy, models.VoucherCertifiedBy{
			User: user,
		})
	}

	return models.Voucher{
		ModeOfPayment:                   editable.ModeOfPayment,
		Payee:                           editable.Payee,
		TinOrEmployeeNo:                 editable.TinOrEmployeeNo,
		ResponsibilityCenter:            editable.ResponsibilityCenter,
		OrsBursNo:                       editable.OrsBursNo,
		Address:                         editable.Address,
		LinkedLiquidationCategory:       editable.LinkedLiquidationCategory,
		CertifiedCashAvailable:          editable.CertifiedCashAvailable,
		CertifiedSupportingDocsComplete: editable.CertifiedSupportingDocsComplete,
		CertifiedSubjectToDebitAccount:  editable.CertifiedSubjectToDebitAccount,
		ApprovedBy:                      editable.ApprovedBy,
		CheckNo:                         editable.CheckNo,
		BankNameAndAccountNo:            editable.BankNameAndAccountNo,
		AdaNo:                           editable.AdaNo,
		JevNo:                           editable.JevNo,
		Entries:                         entries,
		AccountingEntries:               accountingEntries,
		CertifiedBy:                     certifiedBy,
	}
}

// Voucher is the API representation of a disbursement voucher.
//
// The response is the bare voucher object without a wrapper, this is
// the wire contract existing report views consume.
type Voucher struct {
	Parent   types.Month `json:"parent" example:"2024-02-01"` // First day of the reporting month
	Date     types.Date  `json:"date" example:"2024-02-15"`
	SchoolID uint64      `json:"schoolId" example:"4"`

	ModeOfPayment string `json:"modeOfPayment" example:"MDS Check"`
	Payee         string `json:"payee" example:"Juan dela Cruz"`

	TinOrEmployeeNo      string `json:"tinOrEmployeeNo,omitempty"`
	ResponsibilityCenter string `json:"responsibilityCenter,omitempty"`
	OrsBursNo            string `json:"orsbursNo,omitempty"`
	Address              string `json:"address,omitempty"`

	LinkedLiquidationCategory string `json:"linkedLiquidationCategory,omitempty" example:"operating_expenses"`

	ReportStatus models.ReportStatus `json:"reportStatus" example:"draft"`

	// Section C: Certified
	CertifiedCashAvailable          bool `json:"certifiedCashAvailable"`
	CertifiedSupportingDocsComplete bool `json:"certifiedSupportingDocsComplete"`
	CertifiedSubjectToDebitAccount  bool `json:"certifiedSubjectToDebitAccount"`

	// Section D: Approved for Payment
	ApprovedBy string `json:"approvedBy,omitempty"`

	// Section E: Receipt of Payment
	CheckNo              string `json:"checkNo,omitempty"`
	BankNameAndAccountNo string `json:"bankNameAndAccountNo,omitempty"`
	AdaNo                string `json:"adaNo,omitempty"`
	JevNo                string `json:"jevNo,omitempty"`

	Entries           []VoucherEntryData           `json:"entries"`
	AccountingEntries []VoucherAccountingEntryData `json:"accountingEntries"`
	CertifiedBy       []string                     `json:"certifiedBy"`
}

// newVoucher returns the API representation of the resource
func newVoucher(model models.Voucher) Voucher {
	entries := make([]VoucherEntryData, 0, len(model.Entries))
	for _, entry := range model.Entries {
		entries = append(entries, VoucherEntryData{
			Receipt:     entry.Receipt,
			Particulars: entry.Particulars,
			Unit:        entry.Unit,
			Quantity:    entry.Quantity,
			UnitPrice:   entry.UnitPrice,
		})
	}

	accountingEntries := make([]VoucherAccountingEntryData, 0, len(model.AccountingEntries))
	for _, entry := range model.AccountingEntries {
		accountingEntries = append(accountingEntries, VoucherAccountingEntryData{
			UACSCode:     entry.UACSCode,
			AccountTitle: entry.AccountTitle,
			Debit:        entry.Debit,
			Credit:       entry.Credit,
		})
	}

	certifiedBy := make([]string, 0, len(model.CertifiedBy))
	for _, cert := range model.CertifiedBy {
		certifiedBy = append(certifiedBy, cert.User)
	}

	return Voucher{
		Parent:                          model.Parent,
		Date:                            types.DateOf(model.Date),
		SchoolID:                        model.SchoolID,
		ModeOfPayment:                   model.ModeOfPayment,
		Payee:                           model.Payee,
		TinOrEmployeeNo:                 model.TinOrEmployeeNo,
		ResponsibilityCenter:            model.ResponsibilityCenter,
		OrsBursNo:                       model.OrsBursNo,
		Address:                         model.Address,
		LinkedLiquidationCategory:       model.LinkedLiquidationCategory,
		ReportStatus:                    model.ReportStatus,
		CertifiedCashAvailable:          model.CertifiedCashAvailable,
		CertifiedSupportingDocsComplete: model.CertifiedSupportingDocsComplete,
		CertifiedSubjectToDebitAccount:  model.CertifiedSubjectToDebitAccount,
		ApprovedBy:                      model.ApprovedBy,
		CheckNo:                         model.CheckNo,
		BankNameAndAccountNo:            model.BankNameAndAccountNo,
		AdaNo:                           model.AdaNo,
		JevNo:                           model.JevNo,
		Entries:                         entries,
		AccountingEntries:               accountingEntries,
		CertifiedBy:                     certifiedBy,
	}
}
