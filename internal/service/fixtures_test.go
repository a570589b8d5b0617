package service

import (
	"context"
	"sync/atomic"

	"github.com/smartcity/weatherlookup/internal/domain"
)

const wttrLondonJSON = `{
  "current_condition": [{
    "FeelsLikeC": "13",
    "humidity": "78",
    "pressure": "1013",
    "temp_C": "15",
    "weatherDesc": [{"value": "Partly cloudy"}],
    "windspeedKmph": "12"
  }],
  "nearest_area": [{
    "areaName": [{"value": "London"}],
    "country": [{"value": "United Kingdom"}]
  }]
}`

const owmLondonJSON = `{
  "main": {"temp": 14.6, "feels_like": 12.5, "humidity": 78, "pressure": 1013},
  "weather": [{"description": "light rain", "icon": "10d"}],
  "wind": {"speed": 3.3},
  "name": "London",
  "sys": {"country": "GB"}
}`

func londonReply() domain.RawReply {
	return domain.RawReply{
		CurrentCondition: []domain.CurrentCondition{{
			TempC:         "15",
			FeelsLikeC:    "13",
			Humidity:      "78",
			Pressure:      "1013",
			WindspeedKmph: "12",
			WeatherDesc:   []domain.ValueItem{{Value: "Partly cloudy"}},
		}},
		NearestArea: []domain.NearestArea{{
			AreaName: []domain.ValueItem{{Value: "London"}},
			Country:  []domain.ValueItem{{Value: "United Kingdom"}},
		}},
	}
}

// stubProvider returns a fixed reply or error and counts calls.
type stubProvider struct {
	name  string
	reply domain.RawReply
	err   error
	calls atomic.Int32
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Fetch(_ context.Context, _ string) (domain.RawReply, error) {
	p.calls.Add(1)
	return p.reply, p.err
}
