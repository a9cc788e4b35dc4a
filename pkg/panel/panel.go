// Package panel implements the view controller for the disbursement
// voucher list of a liquidation report. It holds the list and create
// dialog state, validates user input and talks to the report API.
package panel

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/school-central/centralserver/pkg/types"
	"github.com/school-central/centralserver/pkg/client"
)

// Severity classifies a notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier displays a notification to the user.
type Notifier interface {
	Notify(title, message string, severity Severity)
}

// API is the subset of the report client the panel uses.
type API interface {
	CreateOrUpdate(ctx context.Context, schoolID uint64, year int, month time.Month, day int, voucher client.VoucherCreateRequest) (client.Voucher, error)
	GetForMonth(ctx context.Context, schoolID uint64, year int, month time.Month, linkedCategory string) ([]client.Voucher, error)
}

// ListState is the state of the voucher list.
type ListState string

const (
	StateIdle    ListState = "idle"
	StateLoading ListState = "loading"
	StateLoaded  ListState = "loaded"
	StateErrored ListState = "errored"
)

// CreateForm holds the fields of the create dialog.
type CreateForm struct {
	Date        types.Date
	Payee       string
	Mode        string
	Particulars string
}

// Panel is the controller for the voucher list of one report view.
//
// The zero value is not usable, use New.
type Panel struct {
	api      API
	notifier Notifier
	log      zerolog.Logger

	mu sync.Mutex

	// generation invalidates in-flight fetches when the filter changes.
	// The list only ever shows the response for the latest filter.
	generation uint64

	reportPeriod types.Month
	category     string
	schoolID     uint64
	disabled     bool

	listState ListState
	vouchers  []client.Voucher

	dialogOpen bool
	submitting bool
	form       CreateForm
}

// Option configures a Panel.
type Option func(*Panel)

// WithLogger sets the logger the panel reports errors to.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Panel) {
		p.log = log
	}
}

// New returns a Panel that loads vouchers from api and reports to notifier.
func New(api API, notifier Notifier, options ...Option) *Panel {
	p := &Panel{
		api:       api,
		notifier:  notifier,
		log:       zerolog.Nop(),
		listState: StateIdle,
		vouchers:  make([]client.Voucher, 0),
	}

	for _, option := range options {
		option(p)
	}

	return p
}

// SetFilter sets the reporting period, category and school the panel
// displays vouchers for and reloads the list.
func (p *Panel) SetFilter(ctx context.Context, reportPeriod types.Month, category string, schoolID uint64) {
	p.mu.Lock()
	p.reportPeriod = reportPeriod
	p.category = category
	p.schoolID = schoolID
	p.mu.Unlock()

	p.Refresh(ctx)
}

// SetDisabled enables or disables creating and unlinking vouchers.
func (p *Panel) SetDisabled(disabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.disabled = disabled
}

// Refresh reloads the voucher list for the current filter.
//
// Without a complete filter no request is made and the list stays
// empty. When refreshes overlap, responses for an outdated filter are
// discarded so that the list always reflects the latest filter.
func (p *Panel) Refresh(ctx context.Context) {
	p.mu.Lock()

	if p.reportPeriod.IsZero() || p.category == "" || p.schoolID == 0 {
		p.listState = StateIdle
		p.vouchers = make([]client.Voucher, 0)
		p.mu.Unlock()
		return
	}

	p.generation++
	generation := p.generation
	p.listState = StateLoading

	period := p.reportPeriod
	category := p.category
	schoolID := p.schoolID
	p.mu.Unlock()

	first := period.FirstDay()
	vouchers, err := p.api.GetForMonth(ctx, schoolID, first.Year(), first.Month(), category)

	p.mu.Lock()
	defer p.mu.Unlock()

	// A newer refresh has been started in the meantime, its response wins
	if generation != p.generation {
		return
	}

	if err != nil {
		p.log.Error().Err(err).Str("category", category).Msg("Panel")
		p.listState = StateErrored
		p.vouchers = make([]client.Voucher, 0)
		p.notifier.Notify("Disbursement Vouchers", "The vouchers could not be loaded. Please try again.", SeverityError)
		return
	}

	p.listState = StateLoaded
	p.vouchers = vouchers
}

// ListState returns the current state of the voucher list.
func (p *Panel) ListState() ListState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.listState
}

// Vouchers returns the vouchers the panel currently displays.
func (p *Panel) Vouchers() []client.Voucher {
	p.mu.Lock()
	defer p.mu.Unlock()

	vouchers := make([]client.Voucher, len(p.vouchers))
	copy(vouchers, p.vouchers)
	return vouchers
}

// DateRange returns the first and last day a voucher can be filed for
// in the current reporting period.
func (p *Panel) DateRange() (min, max types.Date) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return types.DateOf(p.reportPeriod.FirstDay()), types.DateOf(p.reportPeriod.LastDay())
}

// OpenDialog opens the create dialog. A disabled panel ignores the request.
func (p *Panel) OpenDialog() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.disabled {
		return
	}

	p.dialogOpen = true
}

// CloseDialog closes the create dialog. The form fields are kept.
func (p *Panel) CloseDialog() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialogOpen = false
}

// DialogOpen reports whether the create dialog is open.
func (p *Panel) DialogOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dialogOpen
}

// Submitting reports whether a create request is in flight.
func (p *Panel) Submitting() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.submitting
}

// SetForm sets the fields of the create dialog.
func (p *Panel) SetForm(form CreateForm) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = form
}

// Form returns the fields of the create dialog.
func (p *Panel) Form() CreateForm {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form
}

// validate checks the create form. It returns a message for the user
// when the form cannot be submitted.
func (p *Panel) validate(form CreateForm) (string, bool) {
	if form.Date.IsZero() || strings.TrimSpace(form.Payee) == "" || form.Mode == "" {
		return "Please fill in date, payee and mode of payment.", false
	}

	if !ValidMode(form.Mode) {
		return "The mode of payment is not one of the accepted values.", false
	}

	if !p.reportPeriod.Contains(form.Date.Time()) {
		return "The date must be within the reporting period.", false
	}

	return "", true
}

// Submit validates the create form and files the voucher. The voucher
// is linked to the panel's category. On success the form is reset, the
// dialog closes and the list is reloaded.
func (p *Panel) Submit(ctx context.Context) {
	p.mu.Lock()

	// A request is already in flight, ignore the duplicate submission
	if p.submitting {
		p.mu.Unlock()
		return
	}

	form := p.form
	category := p.category
	schoolID := p.schoolID

	message, ok := p.validate(form)
	if !ok {
		p.mu.Unlock()
		p.notifier.Notify("Disbursement Vouchers", message, SeverityWarning)
		return
	}

	p.submitting = true
	p.mu.Unlock()

	request := client.VoucherCreateRequest{
		Payee:                     strings.TrimSpace(form.Payee),
		ModeOfPayment:             form.Mode,
		LinkedLiquidationCategory: category,
	}

	if strings.TrimSpace(form.Particulars) != "" {
		request.Entries = []client.LineItemEntry{
			{Particulars: strings.TrimSpace(form.Particulars)},
		}
	}

	date := form.Date.Time()
	_, err := p.api.CreateOrUpdate(ctx, schoolID, date.Year(), date.Month(), date.Day(), request)

	p.mu.Lock()
	p.submitting = false

	if err != nil {
		p.mu.Unlock()
		p.log.Error().Err(err).Str("date", form.Date.String()).Msg("Panel")
		p.notifier.Notify("Disbursement Vouchers", "The voucher could not be saved. Please try again.", SeverityError)
		return
	}

	p.form = CreateForm{}
	p.dialogOpen = false
	p.mu.Unlock()

	p.notifier.Notify("Disbursement Vouchers", "The voucher has been saved.", SeverityInfo)
	p.Refresh(ctx)
}

// Unlink removes the voucher from the report by resubmitting it with
// the category cleared, then reloads the list.
func (p *Panel) Unlink(ctx context.Context, voucher client.Voucher) {
	p.mu.Lock()
	if p.disabled {
		p.mu.Unlock()
		return
	}
	schoolID := p.schoolID
	p.mu.Unlock()

	request := voucher.CreateRequest()
	request.LinkedLiquidationCategory = ""

	date := voucher.Date.Time()
	_, err := p.api.CreateOrUpdate(ctx, schoolID, date.Year(), date.Month(), date.Day(), request)
	if err != nil {
		p.log.Error().Err(err).Str("date", voucher.Date.String()).Msg("Panel")
		p.notifier.Notify("Disbursement Vouchers", "The voucher could not be unlinked. Please try again.", SeverityError)
		return
	}

	p.notifier.Notify("Disbursement Vouchers", "The voucher has been unlinked.", SeverityInfo)
	p.Refresh(ctx)
}
