package openmeteo

import "context"

// IOpenMeteo defines the interface for the Open-Meteo forecast client.
// Implementations are safe for concurrent use.
type IOpenMeteo interface {
	// Forecast returns the daily forecast for a named location and date.
	Forecast(ctx context.Context, location string, date string) (*Report, error)
}

// New creates a new Open-Meteo client with the given configuration
func New(cfg Config) (IOpenMeteo, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenMeteoImpl(cfg), nil
}
