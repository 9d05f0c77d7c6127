package openmeteo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"personal-agent/pkg/openmeteo"
)

func TestForecast(t *testing.T) {
	geo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("name") == "nowhere" {
			w.Write([]byte(`{"results": []}`))
			return
		}
		w.Write([]byte(`{
			"results": [
				{"name": "Paris", "latitude": 48.8566, "longitude": 2.3522, "country": "France"}
			]
		}`))
	}))
	defer geo.Close()

	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("start_date") != "2026-02-10" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{
			"daily": {
				"time": ["2026-02-10"],
				"weather_code": [61],
				"temperature_2m_max": [9.5],
				"temperature_2m_min": [3.2]
			}
		}`))
	}))
	defer forecast.Close()

	client, err := openmeteo.New(openmeteo.Config{
		ForecastURL:  forecast.URL,
		GeocodingURL: geo.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		report, err := client.Forecast(context.Background(), "paris", "2026-02-10")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Location != "Paris" {
			t.Errorf("unexpected location: %s", report.Location)
		}
		if report.Description != "rain" {
			t.Errorf("unexpected description: %s", report.Description)
		}
		if !strings.Contains(report.Summary(), "Paris on 2026-02-10") {
			t.Errorf("unexpected summary: %s", report.Summary())
		}
	})

	t.Run("Unknown Location", func(t *testing.T) {
		_, err := client.Forecast(context.Background(), "nowhere", "2026-02-10")
		if err == nil {
			t.Fatalf("expected error for unknown location")
		}
	})
}

func TestForecast_ServerError(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	client, _ := openmeteo.New(openmeteo.Config{
		ForecastURL:  broken.URL,
		GeocodingURL: broken.URL,
	})

	_, err := client.Forecast(context.Background(), "paris", "2026-02-10")
	if err == nil {
		t.Fatalf("expected error from 500 response")
	}
}
