package domain

import (
	"fmt"
	"strconv"
	"time"
)

// DisplayFields are the formatted strings a presenter puts on screen.
type DisplayFields struct {
	CityName    string `json:"city_name"`
	CurrentTime string `json:"current_time"`
	Temperature string `json:"temperature"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	FeelsLike   string `json:"feels_like"`
	Humidity    string `json:"humidity"`
	WindSpeed   string `json:"wind_speed"`
	Pressure    string `json:"pressure"`
}

// DisplayView is a rendered result: the record, its icon and the formatted fields.
type DisplayView struct {
	Query   string        `json:"query"`
	Record  WeatherRecord `json:"record"`
	Icon    IconSymbol    `json:"icon"`
	Display DisplayFields `json:"display"`
}

// NewDisplayFields formats a record the way the widget shows it.
func NewDisplayFields(r WeatherRecord, icon IconSymbol, now time.Time) DisplayFields {
	city := fmt.Sprintf("%s, %s", r.LocationName, r.CountryName)
	if r.IsSyntheticFallback {
		city += " (Demo Data)"
	}

	return DisplayFields{
		CityName:    city,
		CurrentTime: now.Format("2006-01-02") + " • " + now.Format("15:04:05"),
		Temperature: strconv.Itoa(r.TemperatureC),
		Icon:        icon.Glyph(),
		Description: r.Description,
		FeelsLike:   fmt.Sprintf("%d°C", r.FeelsLikeC),
		Humidity:    fmt.Sprintf("%d%%", r.HumidityPct),
		WindSpeed:   formatNumber(r.WindSpeedKmh) + " km/h",
		Pressure:    formatNumber(r.PressureMb) + " mb",
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
