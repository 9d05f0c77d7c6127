package tools

import (
	"context"
	"fmt"
	"time"

	"personal-agent/internal/agent"
	"personal-agent/internal/model"
	"personal-agent/pkg/datemath"
	"personal-agent/pkg/openmeteo"
)

// GetWeatherTool fetches a daily forecast from Open-Meteo.
type GetWeatherTool struct {
	client openmeteo.IOpenMeteo
	dates  *datemath.Parser
}

// NewGetWeatherTool creates the weather tool.
func NewGetWeatherTool(client openmeteo.IOpenMeteo, dates *datemath.Parser) agent.Tool {
	return &GetWeatherTool{client: client, dates: dates}
}

func (t *GetWeatherTool) Name() string {
	return model.ToolGetWeather
}

func (t *GetWeatherTool) Description() string {
	return "Get the weather forecast for a location on a given date."
}

func (t *GetWeatherTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"location": map[string]interface{}{
				"type":        "string",
				"description": "Place name, e.g. 'Paris'",
			},
			"date": map[string]interface{}{
				"type":        "string",
				"description": "Date in the user's words ('today', 'tomorrow') or YYYY-MM-DD",
			},
		},
		"required": []string{"location", "date"},
	}
}

func (t *GetWeatherTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	location, ok := params["location"].(string)
	if !ok || location == "" {
		return nil, fmt.Errorf("location parameter is required")
	}
	rawDate, ok := params["date"].(string)
	if !ok || rawDate == "" {
		return nil, fmt.Errorf("date parameter is required")
	}

	day, err := t.dates.Parse(rawDate, time.Now())
	if err != nil {
		return nil, fmt.Errorf("unusable date %q: %w", rawDate, err)
	}

	report, err := t.client.Forecast(ctx, location, day.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("forecast failed: %w", err)
	}

	return map[string]interface{}{
		"location":    report.Location,
		"date":        report.Date,
		"description": report.Description,
		"temp_min_c":  report.TempMinC,
		"temp_max_c":  report.TempMaxC,
		"summary":     report.Summary(),
	}, nil
}
