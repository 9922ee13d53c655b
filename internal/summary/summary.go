package summary

import (
	"fmt"

	"baseline-harness/internal/cli"
	"baseline-harness/internal/client"
)

// PrintScenarioResult prints the per-scenario report block right after the
// scenario completes.
func PrintScenarioResult(result *client.ScenarioResult) {
	if result.Timeout {
		cli.Failf("Request timed out after %s", cli.FormatMillis(result.ResponseTimeMs))
		return
	}
	if !result.Success {
		cli.Failf("Error: %s", cli.Truncate(result.Error, 120))
		return
	}

	cli.Successf("Response time: %s", cli.FormatMillis(result.ResponseTimeMs))
	if result.TTSInstances != nil {
		cli.Successf("OpenAI TTS detected: %d instances", *result.TTSInstances)
	}
	if result.FallbackInstances != nil {
		cli.Successf("Fallback TTS: %d instances", *result.FallbackInstances)
	}
	if result.GatherTimeout != nil {
		cli.Successf("Gather timeout: %ss", *result.GatherTimeout)
	}
	if result.SpeechTimeout != nil {
		cli.Successf("Speech timeout: %ss", *result.SpeechTimeout)
	}
	if result.HasErrorMarker {
		cli.Warnf("Response contains error indicators")
	}
}

// PrintBaselineSummary prints the aggregate block after all scenarios ran.
func PrintBaselineSummary(stats BaselineStats) {
	cli.Section("Baseline Summary")
	cli.KeyValue("Total scenarios tested", fmt.Sprintf("%d", stats.TotalTests))
	cli.KeyValue("Successful tests", fmt.Sprintf("%d", stats.SuccessfulTests))
	cli.KeyValue("Average response time", cli.FormatMillis(stats.AvgResponseTimeMs))
	cli.KeyValue("Min response time", cli.FormatMillis(stats.MinResponseTimeMs))
	cli.KeyValue("Max response time", cli.FormatMillis(stats.MaxResponseTimeMs))
}
