// Package cli renders searches to a terminal.
package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/smartcity/weatherlookup/internal/domain"
	"github.com/smartcity/weatherlookup/internal/service"
)

// Presenter writes loading, result and error output to w.
type Presenter struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

// NewPresenter creates a terminal presenter writing to w.
func NewPresenter(w io.Writer) *Presenter {
	return &Presenter{w: w, now: time.Now}
}

func (p *Presenter) ShowLoading() {
	p.printf("Loading weather data...\n")
}

// HideLoading is a no-op; the next line of output replaces the indicator.
func (p *Presenter) HideLoading() {}

// ClearAll separates consecutive searches.
func (p *Presenter) ClearAll() {
	p.printf("\n")
}

func (p *Presenter) ShowError(message string) {
	p.printf("Error: %s\n", message)
}

func (p *Presenter) ShowResult(record domain.WeatherRecord, originalQuery string) {
	icon := service.ClassifyIcon(record.Description)
	d := domain.NewDisplayFields(record, icon, p.now())

	p.printf("%s\n%s\n\n  %s  %s°C  %s\n\n", d.CityName, d.CurrentTime, d.Icon, d.Temperature, d.Description)
	p.printf("  Feels like: %s\n  Humidity:   %s\n  Wind:       %s\n  Pressure:   %s\n", d.FeelsLike, d.Humidity, d.WindSpeed, d.Pressure)
}

func (p *Presenter) printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, format, args...)
}

var _ domain.Presenter = (*Presenter)(nil)
