package domain

import "context"

// Presenter owns the visible loading/error/result state. The search core only
// calls into it and never reads it back.
type Presenter interface {
	ShowLoading()
	HideLoading()
	ShowResult(record WeatherRecord, originalQuery string)
	ShowError(message string)
	ClearAll()
}

// WeatherProvider fetches the raw reply for a city from one upstream source.
type WeatherProvider interface {
	Name() string
	Fetch(ctx context.Context, city string) (RawReply, error)
}

// WeatherSource turns a city into a normalized record or a *SearchError.
type WeatherSource interface {
	FetchWeather(ctx context.Context, city string) (WeatherRecord, error)
}
