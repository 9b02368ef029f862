package phlytyapp

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// Environment defines the interface that all environment configurations must implement.
// Embed BaseEnvironment in your struct to satisfy this interface.
type Environment interface {
	port() int
	serviceName() string
	healthCheckPath() string
	logLevel() zapcore.Level
	otelExporter() string
	bufferLimit() int
	readHeaderTimeout() time.Duration
}

// BaseEnvironment contains the environment variables every app needs.
// Embed this in your custom environment struct.
type BaseEnvironment struct {
	Port            int           `env:"PHLYTY_PORT,required"`
	ServiceName     string        `env:"PHLYTY_SERVICE_NAME,required"`
	HealthCheckPath string        `env:"PHLYTY_HEALTH_CHECK_PATH" envDefault:"/health"`
	LogLevel        zapcore.Level `env:"PHLYTY_LOG_LEVEL" envDefault:"info"`
	OtelExporter    string        `env:"PHLYTY_OTEL_EXPORTER" envDefault:"none"`
	// BufferLimit caps the buffered response body in bytes, -1 disables the cap.
	BufferLimit       int           `env:"PHLYTY_BUFFER_LIMIT" envDefault:"-1"`
	ReadHeaderTimeout time.Duration `env:"PHLYTY_READ_HEADER_TIMEOUT" envDefault:"5s"`
}

func (e BaseEnvironment) port() int {
	return e.Port
}

func (e BaseEnvironment) serviceName() string {
	return e.ServiceName
}

func (e BaseEnvironment) healthCheckPath() string {
	return e.HealthCheckPath
}

func (e BaseEnvironment) logLevel() zapcore.Level {
	return e.LogLevel
}

func (e BaseEnvironment) otelExporter() string {
	return e.OtelExporter
}

func (e BaseEnvironment) bufferLimit() int {
	return e.BufferLimit
}

func (e BaseEnvironment) readHeaderTimeout() time.Duration {
	return e.ReadHeaderTimeout
}

var _ Environment = BaseEnvironment{}

// ParseEnv parses environment variables into the given Environment type.
func ParseEnv[E Environment]() func() (E, error) {
	return func() (e E, err error) {
		if err := env.Parse(&e); err != nil {
			return e, errors.Wrap(err, "failed to parse environment")
		}
		return e, nil
	}
}
