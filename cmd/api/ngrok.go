package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	ngrokPollAttempts = 10
	ngrokPollInterval = 3 * time.Second
)

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectNgrokURL polls the ngrok local API until a tunnel appears,
// preferring HTTPS. ngrok can take a few seconds to establish its
// tunnels after the container starts, hence the retry loop.
func detectNgrokURL(ctx context.Context, ngrokAPIBase string) (string, error) {
	endpoint := ngrokAPIBase + "/api/tunnels"
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= ngrokPollAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(ngrokPollInterval):
			}
		}

		url, err := fetchTunnelURL(ctx, client, endpoint)
		if err == nil && url != "" {
			return url, nil
		}
		if err != nil {
			lastErr = err
		}
	}

	if lastErr != nil {
		return "", fmt.Errorf("ngrok API not reachable after %d attempts: %w", ngrokPollAttempts, lastErr)
	}
	return "", fmt.Errorf("ngrok has no active tunnels after %d attempts", ngrokPollAttempts)
}

func fetchTunnelURL(ctx context.Context, client *http.Client, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body struct {
		Tunnels []ngrokTunnel `json:"tunnels"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
	}

	for _, t := range body.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(body.Tunnels) > 0 {
		return body.Tunnels[0].PublicURL, nil
	}
	return "", nil
}
