package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"baseline-harness/internal/cli"
	"baseline-harness/internal/client"
	"baseline-harness/internal/influx"
	"baseline-harness/internal/summary"
)

const (
	healthURL   = "http://localhost:3000/health"
	gatherURL   = "http://localhost:3000/twilio/gather"
	resultsFile = "baseline-results.json"

	// Self-imposed rate limiting between scenarios, not a backoff policy.
	scenarioCooldown = time.Second
)

var scenarios = []client.Scenario{
	{Name: "Termite Emergency", SpeechText: "Hi I have a termite emergency in Mosman", CallID: "baseline-test-1"},
	{Name: "Service Inquiry", SpeechText: "Do you service Cremorne what services do you offer", CallID: "baseline-test-2"},
	{Name: "Booking Request", SpeechText: "My name is John and I need to book a pest control treatment for Friday", CallID: "baseline-test-3"},
	{Name: "Business Hours", SpeechText: "What are your business hours", CallID: "baseline-test-4"},
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cli.Header("BASELINE PERFORMANCE TEST")

	httpClient := client.NewHTTPClient()

	health, err := client.CheckHealth(ctx, httpClient, healthURL)
	if err != nil {
		cli.Failf("Cannot connect to server: %v", err)
		return
	}
	cli.Successf("Server Status: %s", health.Status)
	cli.Successf("Database: %s", health.Services.Database)
	cli.Successf("Redis: %s", health.Services.Redis)

	runner := client.NewRunner(httpClient, gatherURL, client.DefaultScenarioTimeout)

	results := make([]client.ScenarioResult, 0, len(scenarios))
	for i, sc := range scenarios {
		cli.Section("Testing: " + sc.Name)

		result := runner.Run(ctx, sc)
		summary.PrintScenarioResult(&result)
		results = append(results, result)

		if i < len(scenarios)-1 {
			select {
			case <-ctx.Done():
				cli.Warnf("Interrupted, stopping...")
				return
			case <-time.After(scenarioCooldown):
			}
		}
	}

	stats, ok := summary.Aggregate(results)
	if !ok {
		cli.Blank()
		cli.Failf("No successful tests to analyze")
		return
	}

	summary.PrintBaselineSummary(stats)

	writer := summary.NewWriter(resultsFile)
	path, err := writer.Export(stats, results)
	if err != nil {
		cli.Failf("Failed to export results: %v", err)
		return
	}
	cli.Blank()
	cli.Infof("Results saved to %s", path)

	exportMetrics(results)
}

// exportMetrics ships the per-scenario points to a local InfluxDB instance
// when one is running; a silent no-op otherwise.
func exportMetrics(results []client.ScenarioResult) {
	metrics := influx.NewClient(influx.DefaultConfig())
	if metrics == nil {
		return
	}
	defer metrics.Close()

	metrics.WriteScenarioResults(influx.RunID(time.Now()), results)
}
