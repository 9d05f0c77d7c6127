package openmeteo

import "time"

const (
	// DefaultForecastURL is the Open-Meteo forecast endpoint
	DefaultForecastURL = "https://api.open-meteo.com/v1/forecast"

	// DefaultGeocodingURL is the Open-Meteo geocoding endpoint
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 15 * time.Second
)
