package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const healthTimeout = 10 * time.Second

// HealthStatus is the shape of the server's GET /health response.
type HealthStatus struct {
	Status   string `json:"status"`
	Services struct {
		Database string `json:"database"`
		Redis    string `json:"redis"`
	} `json:"services"`
}

// CheckHealth probes the server's health endpoint. Any transport failure or
// unparseable body is returned as an error; the caller treats that as fatal
// for the whole run. Missing fields default to "unknown".
func CheckHealth(ctx context.Context, httpClient *http.Client, url string) (*HealthStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create health request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	closeErr := resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read health response: %w", err)
	}
	if closeErr != nil {
		return nil, closeErr
	}

	var status HealthStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("failed to parse health response: %w", err)
	}

	if status.Status == "" {
		status.Status = "unknown"
	}
	if status.Services.Database == "" {
		status.Services.Database = "unknown"
	}
	if status.Services.Redis == "" {
		status.Services.Redis = "unknown"
	}

	return &status, nil
}
