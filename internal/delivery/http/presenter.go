package http

import (
	"sync"
	"time"

	"github.com/smartcity/weatherlookup/internal/domain"
	"github.com/smartcity/weatherlookup/internal/service"
)

// View states a ViewPresenter moves through.
const (
	StateIdle    = "idle"
	StateLoading = "loading"
	StateResult  = "result"
	StateError   = "error"
)

// ViewPresenter keeps the widget state for one request so it can be returned
// as JSON.
type ViewPresenter struct {
	mu      sync.Mutex
	now     func() time.Time
	state   string
	loading bool
	view    *domain.DisplayView
	errMsg  string
	calls   []string
}

// NewViewPresenter creates a presenter in the idle state.
func NewViewPresenter() *ViewPresenter {
	return &ViewPresenter{now: time.Now, state: StateIdle}
}

func (p *ViewPresenter) ShowLoading() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = true
	p.state = StateLoading
	p.calls = append(p.calls, "ShowLoading")
}

func (p *ViewPresenter) HideLoading() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false
	p.calls = append(p.calls, "HideLoading")
}

func (p *ViewPresenter) ClearAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view = nil
	p.errMsg = ""
	p.state = StateIdle
	p.calls = append(p.calls, "ClearAll")
}

func (p *ViewPresenter) ShowError(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errMsg = message
	p.loading = false
	p.view = nil
	p.state = StateError
	p.calls = append(p.calls, "ShowError")
}

func (p *ViewPresenter) ShowResult(record domain.WeatherRecord, originalQuery string) {
	icon := service.ClassifyIcon(record.Description)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.view = &domain.DisplayView{
		Query:   originalQuery,
		Record:  record,
		Icon:    icon,
		Display: domain.NewDisplayFields(record, icon, p.now()),
	}
	p.errMsg = ""
	p.state = StateResult
	p.calls = append(p.calls, "ShowResult")
}

// State returns the current view state.
func (p *ViewPresenter) State() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Loading reports whether the loading indicator is visible.
func (p *ViewPresenter) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// View returns the rendered result, or nil.
func (p *ViewPresenter) View() *domain.DisplayView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view
}

// ErrorMessage returns the visible error text.
func (p *ViewPresenter) ErrorMessage() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

// Calls returns the presenter calls in order.
func (p *ViewPresenter) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

var _ domain.Presenter = (*ViewPresenter)(nil)
