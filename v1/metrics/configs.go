package metrics

// Config holds settings for the Prometheus metrics server.
type Config struct {
	// Address the /metrics HTTP server listens on, e.g. ":9090".
	Address string `yaml:"address" env:"METRICS_ADDRESS"`

	// ServiceName is attached to every metric as the constant "service" label.
	ServiceName string `yaml:"service_name" env:"METRICS_SERVICE_NAME"`

	// EnableDefaultCollectors registers the Go, process and build info collectors.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"METRICS_ENABLE_DEFAULT_COLLECTORS"`
}

// DefaultConfig returns a configuration listening on :9090.
func DefaultConfig() Config {
	return Config{
		Address:                 ":9090",
		ServiceName:             "vectorstore",
		EnableDefaultCollectors: true,
	}
}
