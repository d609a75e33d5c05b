package logger

import (
	"os"
	"strings"
)

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls how NewLoggerClient builds the underlying Zap logger.
type Config struct {
	// Level is one of Debug, Info, Warning or Error. Anything else means Info.
	Level string `yaml:"level" env:"ZAP_LOGGER_LEVEL"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" env:"LOGGER_SERVICE_NAME"`

	// EnableTracing adds trace_id and span_id to entries logged through the
	// *WithContext methods when the context carries a valid span.
	EnableTracing bool `yaml:"enable_tracing" env:"LOGGER_ENABLE_TRACING"`
}

// NewConfigFromEnv reads the logger configuration from the environment.
func NewConfigFromEnv() Config {
	return Config{
		Level:         strings.ToLower(os.Getenv("ZAP_LOGGER_LEVEL")),
		ServiceName:   os.Getenv("LOGGER_SERVICE_NAME"),
		EnableTracing: strings.EqualFold(os.Getenv("LOGGER_ENABLE_TRACING"), "true"),
	}
}
