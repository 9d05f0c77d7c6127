package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

type openMeteoImpl struct {
	forecastURL  string
	geocodingURL string
	httpClient   *http.Client
}

// newOpenMeteoImpl creates a new Open-Meteo implementation
func newOpenMeteoImpl(cfg Config) *openMeteoImpl {
	return &openMeteoImpl{
		forecastURL:  cfg.ForecastURL,
		geocodingURL: cfg.GeocodingURL,
		httpClient:   cfg.HTTPClient,
	}
}

// Forecast resolves the location name, then fetches the daily forecast for
// the given YYYY-MM-DD date.
func (o *openMeteoImpl) Forecast(ctx context.Context, location string, date string) (*Report, error) {
	lat, lon, name, err := o.geocode(ctx, location)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min")
	q.Set("timezone", "auto")
	q.Set("start_date", date)
	q.Set("end_date", date)

	var result forecastResponse
	if err := o.getJSON(ctx, o.forecastURL+"?"+q.Encode(), &result); err != nil {
		return nil, err
	}

	if len(result.Daily.Time) == 0 {
		return nil, fmt.Errorf("openmeteo: no forecast for %q on %s", location, date)
	}

	report := &Report{
		Location: name,
		Date:     result.Daily.Time[0],
	}
	if len(result.Daily.Temperature2mMin) > 0 {
		report.TempMinC = result.Daily.Temperature2mMin[0]
	}
	if len(result.Daily.Temperature2mMax) > 0 {
		report.TempMaxC = result.Daily.Temperature2mMax[0]
	}
	if len(result.Daily.WeatherCode) > 0 {
		report.Description = describeWeatherCode(result.Daily.WeatherCode[0])
	}
	return report, nil
}

// geocode resolves a location name to coordinates
func (o *openMeteoImpl) geocode(ctx context.Context, location string) (float64, float64, string, error) {
	q := url.Values{}
	q.Set("name", location)
	q.Set("count", "1")

	var result geocodingResponse
	if err := o.getJSON(ctx, o.geocodingURL+"?"+q.Encode(), &result); err != nil {
		return 0, 0, "", err
	}

	if len(result.Results) == 0 {
		return 0, 0, "", fmt.Errorf("openmeteo: unknown location %q", location)
	}

	hit := result.Results[0]
	return hit.Latitude, hit.Longitude, hit.Name, nil
}

func (o *openMeteoImpl) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("openmeteo: failed to create request: %w", err)
	}

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("openmeteo: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("openmeteo: API error %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("openmeteo: failed to decode response: %w", err)
	}
	return nil
}

// describeWeatherCode maps WMO weather codes to short descriptions.
func describeWeatherCode(code int) string {
	switch {
	case code == 0:
		return "clear sky"
	case code <= 2:
		return "partly cloudy"
	case code == 3:
		return "overcast"
	case code <= 48:
		return "fog"
	case code <= 57:
		return "drizzle"
	case code <= 67:
		return "rain"
	case code <= 77:
		return "snow"
	case code <= 82:
		return "rain showers"
	case code <= 86:
		return "snow showers"
	default:
		return "thunderstorm"
	}
}
