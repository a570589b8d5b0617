package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/smartcity/weatherlookup/internal/domain"
)

// WttrProvider fetches conditions from wttr.in's JSON endpoint, which already
// answers in the RawReply shape.
type WttrProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewWttrProvider creates a wttr.in provider
func NewWttrProvider(baseURL string, timeout time.Duration) *WttrProvider {
	return &WttrProvider{
		baseURL:    baseURL,
		httpClient: newHTTPClient(timeout),
	}
}

// Name returns the provider name
func (p *WttrProvider) Name() string {
	return "wttr.in"
}

// Fetch returns the raw reply for city
func (p *WttrProvider) Fetch(ctx context.Context, city string) (domain.RawReply, error) {
	endpoint := fmt.Sprintf("%s/%s?format=j1", p.baseURL, url.PathEscape(city))

	var reply domain.RawReply
	if err := getJSON(ctx, p.httpClient, p.Name(), endpoint, city, &reply); err != nil {
		return domain.RawReply{}, err
	}
	return reply, nil
}

var _ domain.WeatherProvider = (*WttrProvider)(nil)
