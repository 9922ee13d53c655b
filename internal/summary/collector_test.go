package summary

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baseline-harness/internal/client"
)

func successResult(name string, ms float64) client.ScenarioResult {
	tts, fallback := 1, 0
	return client.ScenarioResult{
		Scenario:          name,
		ResponseTimeMs:    ms,
		Success:           true,
		TTSInstances:      &tts,
		FallbackInstances: &fallback,
	}
}

func TestAggregateStats(t *testing.T) {
	results := []client.ScenarioResult{
		successResult("a", 100),
		successResult("b", 200),
		successResult("c", 300),
		successResult("d", 400),
	}

	stats, ok := Aggregate(results)
	require.True(t, ok)

	assert.Equal(t, 4, stats.TotalTests)
	assert.Equal(t, 4, stats.SuccessfulTests)
	assert.Equal(t, 250.0, stats.AvgResponseTimeMs)
	assert.Equal(t, 100.0, stats.MinResponseTimeMs)
	assert.Equal(t, 400.0, stats.MaxResponseTimeMs)
}

func TestAggregateSkipsFailures(t *testing.T) {
	results := []client.ScenarioResult{
		successResult("a", 120),
		{Scenario: "b", ResponseTimeMs: 30000, Success: false, Timeout: true},
		{Scenario: "c", Success: false, Error: "connection refused"},
	}

	stats, ok := Aggregate(results)
	require.True(t, ok)

	assert.Equal(t, 3, stats.TotalTests)
	assert.Equal(t, 1, stats.SuccessfulTests)
	assert.Equal(t, 120.0, stats.AvgResponseTimeMs)
	assert.Equal(t, 120.0, stats.MinResponseTimeMs)
	assert.Equal(t, 120.0, stats.MaxResponseTimeMs)
}

func TestAggregateAllFailed(t *testing.T) {
	results := []client.ScenarioResult{
		{Scenario: "a", ResponseTimeMs: 30000, Success: false, Timeout: true},
		{Scenario: "b", ResponseTimeMs: 30000, Success: false, Timeout: true},
	}

	_, ok := Aggregate(results)
	assert.False(t, ok)
}

func TestExportWritesReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline-results.json")
	results := []client.ScenarioResult{successResult("a", 150)}
	stats, ok := Aggregate(results)
	require.True(t, ok)

	written, err := NewWriter(path).Export(stats, results)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report BaselineReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Greater(t, report.Timestamp, 0.0)
	assert.Equal(t, 1, report.Summary.TotalTests)
	require.Len(t, report.DetailedResults, 1)
	assert.Equal(t, "a", report.DetailedResults[0].Scenario)
}

func TestExportOverwritesPreviousReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline-results.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"stale":true}`), 0o600))

	results := []client.ScenarioResult{successResult("fresh", 90)}
	stats, _ := Aggregate(results)

	_, err := NewWriter(path).Export(stats, results)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report BaselineReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "fresh", report.DetailedResults[0].Scenario)
	assert.NotContains(t, string(data), "stale")
}

func TestResultJSONShape(t *testing.T) {
	results := []client.ScenarioResult{
		successResult("ok", 100),
		{Scenario: "timed-out", ResponseTimeMs: 30000, Success: false, Timeout: true},
		{Scenario: "failed", Success: false, Error: "connection refused"},
	}
	stats, _ := Aggregate(results)

	path := filepath.Join(t.TempDir(), "baseline-results.json")
	_, err := NewWriter(path).Export(stats, results)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw struct {
		Summary  map[string]any   `json:"summary"`
		Detailed []map[string]any `json:"detailed_results"`
	}
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{
		"total_tests", "successful_tests",
		"avg_response_time_ms", "min_response_time_ms", "max_response_time_ms",
	} {
		assert.Contains(t, raw.Summary, key)
	}

	require.Len(t, raw.Detailed, 3)

	ok := raw.Detailed[0]
	assert.Contains(t, ok, "tts_instances")
	assert.Contains(t, ok, "fallback_instances")
	assert.NotContains(t, ok, "timeout")
	assert.NotContains(t, ok, "error")

	timedOut := raw.Detailed[1]
	assert.Equal(t, true, timedOut["timeout"])
	assert.Equal(t, 30000.0, timedOut["response_time_ms"])
	assert.NotContains(t, timedOut, "tts_instances")

	failed := raw.Detailed[2]
	assert.Equal(t, "connection refused", failed["error"])
	assert.NotContains(t, failed, "response_time_ms")
}
