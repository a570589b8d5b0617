package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/smartcity/weatherlookup/internal/domain"
	"github.com/smartcity/weatherlookup/pkg/utils"
)

// OpenWeatherResponse represents the OpenWeatherMap API response.
// Pointers distinguish an absent field from a zero reading.
type OpenWeatherResponse struct {
	Main *struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  *float64 `json:"humidity"`
		Pressure  *float64 `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
}

// OpenWeatherMapProvider fetches metric current conditions from OpenWeatherMap
// and translates them into the RawReply shape.
type OpenWeatherMapProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenWeatherMapProvider creates a new OpenWeatherMap provider
func NewOpenWeatherMapProvider(apiKey, baseURL string, timeout time.Duration) *OpenWeatherMapProvider {
	return &OpenWeatherMapProvider{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: newHTTPClient(timeout),
	}
}

// Name returns the provider name
func (p *OpenWeatherMapProvider) Name() string {
	return "OpenWeatherMap"
}

// Fetch returns the raw reply for city
func (p *OpenWeatherMapProvider) Fetch(ctx context.Context, city string) (domain.RawReply, error) {
	params := url.Values{}
	params.Add("q", city)
	params.Add("appid", p.apiKey)
	params.Add("units", "metric")
	endpoint := fmt.Sprintf("%s/weather?%s", p.baseURL, params.Encode())

	var owResp OpenWeatherResponse
	if err := getJSON(ctx, p.httpClient, p.Name(), endpoint, city, &owResp); err != nil {
		return domain.RawReply{}, err
	}
	return owResp.ToRawReply(), nil
}

// ToRawReply translates the metric reply. Temperatures are rounded and wind is
// converted from m/s to whole km/h. Absent readings stay empty so that
// normalization rejects the reply.
func (r OpenWeatherResponse) ToRawReply() domain.RawReply {
	var cc domain.CurrentCondition
	if r.Main != nil {
		cc.TempC = rounded(r.Main.Temp)
		cc.FeelsLikeC = rounded(r.Main.FeelsLike)
		cc.Humidity = plain(r.Main.Humidity)
		cc.Pressure = plain(r.Main.Pressure)
	}
	if r.Wind != nil && r.Wind.Speed != nil {
		kmh := utils.MetersPerSecondToKmh(*r.Wind.Speed)
		cc.WindspeedKmph = rounded(&kmh)
	}
	if len(r.Weather) > 0 {
		cc.WeatherDesc = []domain.ValueItem{{Value: r.Weather[0].Description}}
	}

	var area domain.NearestArea
	if r.Name != "" {
		area.AreaName = []domain.ValueItem{{Value: r.Name}}
	}
	area.Country = []domain.ValueItem{{Value: r.Sys.Country}}

	return domain.RawReply{
		CurrentCondition: []domain.CurrentCondition{cc},
		NearestArea:      []domain.NearestArea{area},
	}
}

func rounded(v *float64) domain.Scalar {
	if v == nil {
		return ""
	}
	return domain.Scalar(strconv.Itoa(int(utils.RoundTo(*v, 0))))
}

func plain(v *float64) domain.Scalar {
	if v == nil {
		return ""
	}
	return domain.Scalar(strconv.FormatFloat(*v, 'f', -1, 64))
}

var _ domain.WeatherProvider = (*OpenWeatherMapProvider)(nil)
