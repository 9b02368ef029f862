package phlytyapptest

import (
	"strconv"
	"testing"
)

// Env provides a chainable builder for setting [phlytyapp.BaseEnvironment] env vars
// via t.Setenv. Create one with [SetBaseEnv].
type Env struct {
	t testing.TB
}

// SetBaseEnv sets the [phlytyapp.BaseEnvironment] env vars to test defaults.
// Port is required because each test must use a unique port to avoid collisions.
//
// Defaults:
//   - PHLYTY_SERVICE_NAME: "test"
//   - PHLYTY_HEALTH_CHECK_PATH: "/health"
//   - PHLYTY_LOG_LEVEL: "error"
//   - PHLYTY_OTEL_EXPORTER: "none"
func SetBaseEnv(t testing.TB, port int) *Env {
	t.Helper()
	t.Setenv("PHLYTY_PORT", strconv.Itoa(port))
	t.Setenv("PHLYTY_SERVICE_NAME", "test")
	t.Setenv("PHLYTY_HEALTH_CHECK_PATH", "/health")
	t.Setenv("PHLYTY_LOG_LEVEL", "error")
	t.Setenv("PHLYTY_OTEL_EXPORTER", "none")
	return &Env{t: t}
}

// ServiceName overrides PHLYTY_SERVICE_NAME.
func (e *Env) ServiceName(name string) *Env {
	e.t.Helper()
	e.t.Setenv("PHLYTY_SERVICE_NAME", name)
	return e
}

// HealthCheckPath overrides PHLYTY_HEALTH_CHECK_PATH.
func (e *Env) HealthCheckPath(path string) *Env {
	e.t.Helper()
	e.t.Setenv("PHLYTY_HEALTH_CHECK_PATH", path)
	return e
}

// BufferLimit overrides PHLYTY_BUFFER_LIMIT.
func (e *Env) BufferLimit(n int) *Env {
	e.t.Helper()
	e.t.Setenv("PHLYTY_BUFFER_LIMIT", strconv.Itoa(n))
	return e
}

// OtelExporter overrides PHLYTY_OTEL_EXPORTER.
func (e *Env) OtelExporter(name string) *Env {
	e.t.Helper()
	e.t.Setenv("PHLYTY_OTEL_EXPORTER", name)
	return e
}
