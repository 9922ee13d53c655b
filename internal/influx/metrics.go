package influx

import (
	"time"

	"baseline-harness/internal/client"
)

// WriteScenarioResults exports one point per scenario result, tagged with the
// run identifier so later runs can be compared against this baseline.
func (c *Client) WriteScenarioResults(runID string, results []client.ScenarioResult) {
	if c == nil {
		return
	}

	now := time.Now()
	for i, r := range results {
		fields := map[string]any{
			"response_time_ms": r.ResponseTimeMs,
			"success":          r.Success,
			"timeout":          r.Timeout,
		}
		if r.TTSInstances != nil {
			fields["tts_instances"] = *r.TTSInstances
		}
		if r.FallbackInstances != nil {
			fields["fallback_instances"] = *r.FallbackInstances
		}

		c.WritePoint("baseline_scenario",
			map[string]string{
				"run_id":   runID,
				"scenario": r.Scenario,
			},
			fields,
			now.Add(time.Duration(i)*time.Microsecond),
		)
	}
}
