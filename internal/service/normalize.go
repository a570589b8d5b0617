package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/smartcity/weatherlookup/internal/domain"
	"github.com/smartcity/weatherlookup/pkg/utils"
)

var (
	errNoCurrentCondition = errors.New("reply has no current_condition")
	errNoNearestArea      = errors.New("reply has no nearest_area")
)

// NormalizeReply unwraps the provider's single-element lists and coerces every
// field into a WeatherRecord. Any missing or invalid field fails the whole
// reply; the returned error is always a *domain.SearchError of kind
// KindMalformedResponse.
func NormalizeReply(city string, raw domain.RawReply, provider string, synthetic bool) (domain.WeatherRecord, error) {
	rec, err := normalize(raw)
	if err != nil {
		return domain.WeatherRecord{}, domain.NewMalformedResponseError(city, fmt.Errorf("%s: %w", provider, err))
	}
	rec.IsSyntheticFallback = synthetic
	rec.Provider = provider
	rec.FetchedAt = time.Now()
	return rec, nil
}

func normalize(raw domain.RawReply) (domain.WeatherRecord, error) {
	if len(raw.CurrentCondition) == 0 {
		return domain.WeatherRecord{}, errNoCurrentCondition
	}
	if len(raw.NearestArea) == 0 {
		return domain.WeatherRecord{}, errNoNearestArea
	}
	current := raw.CurrentCondition[0]
	area := raw.NearestArea[0]

	location, err := firstValue("areaName", area.AreaName, true)
	if err != nil {
		return domain.WeatherRecord{}, err
	}
	country, err := firstValue("country", area.Country, false)
	if err != nil {
		return domain.WeatherRecord{}, err
	}
	description, err := firstValue("weatherDesc", current.WeatherDesc, true)
	if err != nil {
		return domain.WeatherRecord{}, err
	}

	temp, err := number("temp_C", current.TempC)
	if err != nil {
		return domain.WeatherRecord{}, err
	}
	feelsLike, err := number("FeelsLikeC", current.FeelsLikeC)
	if err != nil {
		return domain.WeatherRecord{}, err
	}
	humidity, err := number("humidity", current.Humidity)
	if err != nil {
		return domain.WeatherRecord{}, err
	}
	humidity = math.Round(humidity)
	if humidity < 0 || humidity > 100 {
		return domain.WeatherRecord{}, fmt.Errorf("humidity %v out of range 0-100", humidity)
	}
	wind, err := number("windspeedKmph", current.WindspeedKmph)
	if err != nil {
		return domain.WeatherRecord{}, err
	}
	if wind < 0 {
		return domain.WeatherRecord{}, fmt.Errorf("windspeedKmph %v is negative", wind)
	}
	pressure, err := number("pressure", current.Pressure)
	if err != nil {
		return domain.WeatherRecord{}, err
	}
	if pressure <= 0 {
		return domain.WeatherRecord{}, fmt.Errorf("pressure %v is not positive", pressure)
	}

	return domain.WeatherRecord{
		LocationName: location,
		CountryName:  country,
		TemperatureC: int(math.Round(temp)),
		FeelsLikeC:   int(math.Round(feelsLike)),
		HumidityPct:  int(humidity),
		WindSpeedKmh: wind,
		PressureMb:   pressure,
		Description:  description,
	}, nil
}

func firstValue(field string, items []domain.ValueItem, required bool) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("%s is missing", field)
	}
	v := strings.TrimSpace(items[0].Value)
	if required && v == "" {
		return "", fmt.Errorf("%s is empty", field)
	}
	return v, nil
}

func number(field string, s domain.Scalar) (float64, error) {
	if strings.TrimSpace(string(s)) == "" {
		return 0, fmt.Errorf("%s is missing", field)
	}
	v, err := utils.ParseNumber(string(s))
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a number: %w", field, s, err)
	}
	return v, nil
}
