package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/smartcity/weatherlookup/internal/domain"
)

type syntheticEntry struct {
	country     string
	temp        int
	feelsLike   int
	humidity    int
	pressure    int
	wind        int
	description string
}

// syntheticTable is keyed by lower-cased city name.
var syntheticTable = map[string]syntheticEntry{
	"london":   {country: "United Kingdom", temp: 15, feelsLike: 13, humidity: 78, pressure: 1013, wind: 12, description: "Partly cloudy"},
	"tokyo":    {country: "Japan", temp: 22, feelsLike: 24, humidity: 65, pressure: 1015, wind: 8, description: "Clear"},
	"new york": {country: "United States", temp: 18, feelsLike: 16, humidity: 72, pressure: 1012, wind: 15, description: "Light rain"},
	"paris":    {country: "France", temp: 12, feelsLike: 10, humidity: 80, pressure: 1010, wind: 10, description: "Overcast"},
	"sydney":   {country: "Australia", temp: 25, feelsLike: 27, humidity: 60, pressure: 1018, wind: 6, description: "Sunny"},
}

var syntheticDefault = syntheticEntry{country: "Unknown", temp: 20, feelsLike: 19, humidity: 70, pressure: 1013, wind: 10, description: "Partly cloudy"}

// SyntheticProvider answers from a fixed local table. It never fails and is
// used as the fallback when live providers cannot be reached.
type SyntheticProvider struct{}

// NewSyntheticProvider creates the demo data provider
func NewSyntheticProvider() *SyntheticProvider {
	return &SyntheticProvider{}
}

// Name returns the provider name
func (p *SyntheticProvider) Name() string {
	return "synthetic"
}

// Fetch returns the table entry for city, or the default entry named after city.
func (p *SyntheticProvider) Fetch(_ context.Context, city string) (domain.RawReply, error) {
	name := strings.TrimSpace(city)
	entry, ok := syntheticTable[strings.ToLower(name)]
	if ok {
		name = knownCityName(name)
	} else {
		entry = syntheticDefault
	}

	return domain.RawReply{
		CurrentCondition: []domain.CurrentCondition{{
			TempC:         domain.Scalar(strconv.Itoa(entry.temp)),
			FeelsLikeC:    domain.Scalar(strconv.Itoa(entry.feelsLike)),
			Humidity:      domain.Scalar(strconv.Itoa(entry.humidity)),
			Pressure:      domain.Scalar(strconv.Itoa(entry.pressure)),
			WindspeedKmph: domain.Scalar(strconv.Itoa(entry.wind)),
			WeatherDesc:   []domain.ValueItem{{Value: entry.description}},
		}},
		NearestArea: []domain.NearestArea{{
			AreaName: []domain.ValueItem{{Value: name}},
			Country:  []domain.ValueItem{{Value: entry.country}},
		}},
	}, nil
}

// knownCityName title-cases a table key, so "new york" reads "New York".
func knownCityName(name string) string {
	words := strings.Fields(strings.ToLower(name))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

var _ domain.WeatherProvider = (*SyntheticProvider)(nil)
