package summary

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"baseline-harness/internal/client"
)

// BaselineStats is the aggregate block of the report, computed over the
// successful scenario results only.
type BaselineStats struct {
	TotalTests        int     `json:"total_tests"`
	SuccessfulTests   int     `json:"successful_tests"`
	AvgResponseTimeMs float64 `json:"avg_response_time_ms"`
	MinResponseTimeMs float64 `json:"min_response_time_ms"`
	MaxResponseTimeMs float64 `json:"max_response_time_ms"`
}

// BaselineReport is the document persisted to the results file.
type BaselineReport struct {
	Timestamp       float64                 `json:"timestamp"`
	Summary         BaselineStats           `json:"summary"`
	DetailedResults []client.ScenarioResult `json:"detailed_results"`
}

// Aggregate computes min/avg/max latency over the successful results.
// The second return is false when no result succeeded; the caller must not
// persist a report in that case.
func Aggregate(results []client.ScenarioResult) (BaselineStats, bool) {
	var stats BaselineStats
	stats.TotalTests = len(results)

	var total float64
	for _, r := range results {
		if !r.Success {
			continue
		}
		if stats.SuccessfulTests == 0 {
			stats.MinResponseTimeMs = r.ResponseTimeMs
			stats.MaxResponseTimeMs = r.ResponseTimeMs
		}
		stats.SuccessfulTests++
		total += r.ResponseTimeMs
		stats.MinResponseTimeMs = min(stats.MinResponseTimeMs, r.ResponseTimeMs)
		stats.MaxResponseTimeMs = max(stats.MaxResponseTimeMs, r.ResponseTimeMs)
	}

	if stats.SuccessfulTests == 0 {
		return stats, false
	}

	stats.AvgResponseTimeMs = total / float64(stats.SuccessfulTests)
	return stats, true
}

// Writer persists baseline reports to a fixed path.
type Writer struct {
	path string
}

func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Export overwrites the results file with a pretty-printed report.
func (w *Writer) Export(stats BaselineStats, results []client.ScenarioResult) (string, error) {
	report := BaselineReport{
		Timestamp:       float64(time.Now().UnixMilli()) / 1e3,
		Summary:         stats,
		DetailedResults: results,
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal baseline report: %w", err)
	}

	if err = os.WriteFile(w.path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write baseline report: %w", err)
	}

	return w.path, nil
}
