package influx

import (
	"context"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"baseline-harness/internal/cli"
)

// Client wraps InfluxDB write operations.
type Client struct {
	client   influxdb2.Client
	writeAPI api.WriteAPI
}

// NewClient creates a new InfluxDB client.
// Returns nil if no instance is reachable (graceful degradation); every
// method is safe to call on a nil Client.
func NewClient(cfg Config) *Client {
	client := influxdb2.NewClient(cfg.URL, cfg.Token)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	health, err := client.Health(ctx)
	if err != nil || health.Status != "pass" {
		client.Close()
		return nil
	}

	writeAPI := client.WriteAPI(cfg.Org, cfg.Bucket)

	go func() {
		for err := range writeAPI.Errors() {
			cli.Warnf("InfluxDB write error: %v", err)
		}
	}()

	cli.Infof("InfluxDB connected: %s", cfg.URL)

	return &Client{
		client:   client,
		writeAPI: writeAPI,
	}
}

// Close flushes pending writes and closes the connection.
func (c *Client) Close() {
	if c == nil {
		return
	}
	c.writeAPI.Flush()
	c.client.Close()
}

// WritePoint writes a single point to InfluxDB.
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]any, ts time.Time) {
	if c == nil {
		return
	}
	p := influxdb2.NewPoint(measurement, tags, fields, ts)
	c.writeAPI.WritePoint(p)
}

// RunID generates a unique run identifier from timestamp.
func RunID(t time.Time) string {
	return t.UTC().Format("20060102-150405")
}
