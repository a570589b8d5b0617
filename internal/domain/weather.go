package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// WeatherRecord is the normalized result of one weather query.
// It is only built by the normalizer, so every field is always populated.
type WeatherRecord struct {
	LocationName        string    `json:"location_name"`
	CountryName         string    `json:"country_name"`
	TemperatureC        int       `json:"temperature_c"`
	FeelsLikeC          int       `json:"feels_like_c"`
	HumidityPct         int       `json:"humidity_pct"`
	WindSpeedKmh        float64   `json:"wind_speed_kmh"`
	PressureMb          float64   `json:"pressure_mb"`
	Description         string    `json:"description"`
	IsSyntheticFallback bool      `json:"is_synthetic_fallback"`
	Provider            string    `json:"provider"`
	FetchedAt           time.Time `json:"fetched_at"`
}

// ValidationResult is the outcome of checking a raw city name.
// Message is empty iff Valid is true.
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// Scalar is a provider value that may arrive as a JSON string or a JSON number.
type Scalar string

// UnmarshalJSON accepts "15", 15, 15.4 and null.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = Scalar(num.String())
	return nil
}

// ValueItem is the single-element wrapper the provider uses for scalar text.
type ValueItem struct {
	Value string `json:"value"`
}

// CurrentCondition is one entry of RawReply.CurrentCondition.
type CurrentCondition struct {
	TempC         Scalar      `json:"temp_C"`
	FeelsLikeC    Scalar      `json:"FeelsLikeC"`
	Humidity      Scalar      `json:"humidity"`
	Pressure      Scalar      `json:"pressure"`
	WindspeedKmph Scalar      `json:"windspeedKmph"`
	WeatherDesc   []ValueItem `json:"weatherDesc"`
}

// NearestArea is one entry of RawReply.NearestArea.
type NearestArea struct {
	AreaName []ValueItem `json:"areaName"`
	Country  []ValueItem `json:"country"`
}

// RawReply is the provider reply shape every weather provider is translated into
// before normalization.
type RawReply struct {
	CurrentCondition []CurrentCondition `json:"current_condition"`
	NearestArea      []NearestArea      `json:"nearest_area"`
}

// WeatherResponse wraps a weather record with metadata
type WeatherResponse struct {
	Data    *DisplayView `json:"data,omitempty"`
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
}
