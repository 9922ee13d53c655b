package influx

// Config points at the local InfluxDB instance the baseline points are
// exported to. Fixed literals, like every other parameter of the harness;
// export simply degrades to a no-op when no instance is listening.
type Config struct {
	URL    string
	Org    string
	Bucket string
	Token  string
}

func DefaultConfig() Config {
	return Config{
		URL:    "http://localhost:8086",
		Org:    "baseline",
		Bucket: "baseline",
		Token:  "baseline-token",
	}
}
