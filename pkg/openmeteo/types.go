package openmeteo

import (
	"fmt"
	"net/http"
)

// Config holds the settings needed to construct an Open-Meteo client.
type Config struct {
	ForecastURL  string
	GeocodingURL string
	HTTPClient   *http.Client
}

// Validate applies defaults. The Open-Meteo API needs no credentials.
func (c *Config) Validate() error {
	if c.ForecastURL == "" {
		c.ForecastURL = DefaultForecastURL
	}
	if c.GeocodingURL == "" {
		c.GeocodingURL = DefaultGeocodingURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Report is a simplified daily forecast for one location.
type Report struct {
	Location    string
	Date        string // YYYY-MM-DD
	TempMinC    float64
	TempMaxC    float64
	Description string
}

// Summary renders the report as a single human-readable line.
func (r *Report) Summary() string {
	return fmt.Sprintf("%s on %s: %s, %.0f-%.0f°C", r.Location, r.Date, r.Description, r.TempMinC, r.TempMaxC)
}

// geocodingResponse is the raw geocoding search response.
type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
	} `json:"results"`
}

// forecastResponse is the raw daily forecast response.
type forecastResponse struct {
	Daily struct {
		Time           []string  `json:"time"`
		WeatherCode    []int     `json:"weather_code"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
		Temperature2mMin []float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}
