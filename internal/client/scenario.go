package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// Confidence is fixed: the harness simulates recognized speech, it does
	// not exercise the recognizer.
	speechConfidence = "0.9"

	DefaultScenarioTimeout = 30 * time.Second
)

// Scenario is one fixed (label, spoken input, call identifier) triple.
type Scenario struct {
	Name       string
	SpeechText string
	CallID     string
}

// ScenarioResult is the record produced by a single scenario run. It is
// never mutated after Run returns.
type ScenarioResult struct {
	Scenario          string  `json:"scenario"`
	ResponseTimeMs    float64 `json:"response_time_ms,omitempty"`
	Success           bool    `json:"success"`
	TTSInstances      *int    `json:"tts_instances,omitempty"`
	FallbackInstances *int    `json:"fallback_instances,omitempty"`
	GatherTimeout     *string `json:"gather_timeout,omitempty"`
	SpeechTimeout     *string `json:"speech_timeout,omitempty"`
	Timeout           bool    `json:"timeout,omitempty"`
	Error             string  `json:"error,omitempty"`

	// Advisory only, not persisted: the body contained the text "error".
	HasErrorMarker bool `json:"-"`
}

// Runner issues gather webhook requests for scenarios, one at a time.
type Runner struct {
	httpClient *http.Client
	gatherURL  string
	timeout    time.Duration
}

func NewRunner(httpClient *http.Client, gatherURL string, timeout time.Duration) *Runner {
	return &Runner{
		httpClient: httpClient,
		gatherURL:  gatherURL,
		timeout:    timeout,
	}
}

// Run issues one form-encoded POST for the scenario and measures wall-clock
// latency around the whole exchange, body read included.
//
// A deadline-exceeded failure reports the configured budget in milliseconds
// as the latency, not the measured elapsed time; any other failure carries
// the error text and no latency. Neither aborts the run.
func (r *Runner) Run(ctx context.Context, sc Scenario) ScenarioResult {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	form := url.Values{}
	form.Set("CallSid", sc.CallID)
	form.Set("SpeechResult", sc.SpeechText)
	form.Set("Confidence", speechConfidence)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.gatherURL, strings.NewReader(form.Encode()))
	if err != nil {
		return ScenarioResult{Scenario: sc.Name, Success: false, Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return r.failure(sc, err)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	closeErr := resp.Body.Close()
	if err != nil {
		return r.failure(sc, err)
	}
	if closeErr != nil {
		return r.failure(sc, closeErr)
	}

	elapsed := time.Since(start)
	info := InspectBody(string(body))

	return ScenarioResult{
		Scenario:          sc.Name,
		ResponseTimeMs:    float64(elapsed.Nanoseconds()) / 1e6,
		Success:           true,
		TTSInstances:      &info.TTSInstances,
		FallbackInstances: &info.FallbackInstances,
		GatherTimeout:     info.GatherTimeout,
		SpeechTimeout:     info.SpeechTimeout,
		HasErrorMarker:    info.HasErrorMarker,
	}
}

func (r *Runner) failure(sc Scenario, err error) ScenarioResult {
	if errors.Is(err, context.DeadlineExceeded) {
		return ScenarioResult{
			Scenario:       sc.Name,
			ResponseTimeMs: float64(r.timeout.Milliseconds()),
			Success:        false,
			Timeout:        true,
		}
	}
	return ScenarioResult{Scenario: sc.Name, Success: false, Error: err.Error()}
}
