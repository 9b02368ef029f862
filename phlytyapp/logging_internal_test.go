package phlytyapp

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/advdv/phlyty"
	"github.com/cockroachdb/errors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type testEnv struct {
	level   zapcore.Level
	otelExp string
}

func (e testEnv) port() int                        { return 8080 }
func (e testEnv) serviceName() string              { return "test" }
func (e testEnv) healthCheckPath() string          { return "/health" }
func (e testEnv) logLevel() zapcore.Level          { return e.level }
func (e testEnv) otelExporter() string             { return e.otelExp }
func (e testEnv) bufferLimit() int                 { return -1 }
func (e testEnv) readHeaderTimeout() time.Duration { return time.Second }

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PHLYTY_PORT", "8080")
	t.Setenv("PHLYTY_SERVICE_NAME", "test")
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name  string
		level zapcore.Level
	}{
		{"info level", zapcore.InfoLevel},
		{"debug level", zapcore.DebugLevel},
		{"warn level", zapcore.WarnLevel},
		{"error level", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(testEnv{level: tt.level})
			if err != nil {
				t.Fatalf("NewLogger() error = %v", err)
			}
			if logger == nil {
				t.Fatal("NewLogger() returned nil logger")
			}
			if !logger.Core().Enabled(tt.level) {
				t.Errorf("expected level %v to be enabled", tt.level)
			}
			if tt.level > zapcore.DebugLevel && logger.Core().Enabled(tt.level-1) {
				t.Errorf("expected level %v to be disabled", tt.level-1)
			}
		})
	}
}

func TestBaseEnvironment_LogLevel_Parsing(t *testing.T) {
	tests := []struct {
		name      string
		envValue  string
		wantLevel zapcore.Level
	}{
		{"debug", "debug", zapcore.DebugLevel},
		{"info", "info", zapcore.InfoLevel},
		{"warn", "warn", zapcore.WarnLevel},
		{"error", "error", zapcore.ErrorLevel},
		{"DEBUG uppercase", "DEBUG", zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("PHLYTY_LOG_LEVEL", tt.envValue)

			env, err := ParseEnv[BaseEnvironment]()()
			if err != nil {
				t.Fatalf("ParseEnv() error = %v", err)
			}

			if env.LogLevel != tt.wantLevel {
				t.Errorf("LogLevel = %v, want %v", env.LogLevel, tt.wantLevel)
			}
		})
	}
}

func TestBaseEnvironment_Defaults(t *testing.T) {
	setRequiredEnv(t)

	env, err := ParseEnv[BaseEnvironment]()()
	if err != nil {
		t.Fatalf("ParseEnv() error = %v", err)
	}

	if env.LogLevel != zapcore.InfoLevel {
		t.Errorf("LogLevel default = %v, want %v", env.LogLevel, zapcore.InfoLevel)
	}
	if env.HealthCheckPath != "/health" {
		t.Errorf("HealthCheckPath default = %q, want /health", env.HealthCheckPath)
	}
	if env.OtelExporter != "none" {
		t.Errorf("OtelExporter default = %q, want none", env.OtelExporter)
	}
	if env.BufferLimit != -1 {
		t.Errorf("BufferLimit default = %d, want -1", env.BufferLimit)
	}
	if env.ReadHeaderTimeout != 5*time.Second {
		t.Errorf("ReadHeaderTimeout default = %v, want 5s", env.ReadHeaderTimeout)
	}
}

func TestZapLogger(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	logger := newDispatchLogger(zap.New(core))

	t.Run("unhandled serve error", func(t *testing.T) {
		logger.LogUnhandledServeError(errors.New("test serve error"))

		entries := logs.TakeAll()
		if len(entries) != 1 {
			t.Fatalf("expected 1 log entry, got %d", len(entries))
		}
		if entries[0].Message != "unhandled server error" {
			t.Errorf("unexpected message: %s", entries[0].Message)
		}
		if entries[0].LoggerName != "phlyty.dispatch" {
			t.Errorf("unexpected logger name: %s", entries[0].LoggerName)
		}
		if entries[0].Level != zapcore.ErrorLevel {
			t.Errorf("unexpected level: %s", entries[0].Level)
		}
	})

	t.Run("implicit flush error", func(t *testing.T) {
		logger.LogImplicitFlushError(errors.New("test flush error"))

		entries := logs.TakeAll()
		if len(entries) != 1 {
			t.Fatalf("expected 1 log entry, got %d", len(entries))
		}
		if entries[0].Message != "error while flushing implicitly" {
			t.Errorf("unexpected message: %s", entries[0].Message)
		}
		if entries[0].ContextMap()["error"] != "test flush error" {
			t.Errorf("unexpected error field: %v", entries[0].ContextMap()["error"])
		}
		if entries[0].ContextMap()["buffer_full"] != false {
			t.Errorf("unexpected buffer_full field: %v", entries[0].ContextMap()["buffer_full"])
		}
	})

	t.Run("implicit flush error from a full buffer", func(t *testing.T) {
		resp := phlyty.NewResponseWriter(httptest.NewRecorder(), 2).SetContent("too long")
		logger.LogImplicitFlushError(resp.FlushBuffer())

		entries := logs.TakeAll()
		if len(entries) != 1 {
			t.Fatalf("expected 1 log entry, got %d", len(entries))
		}
		if entries[0].ContextMap()["buffer_full"] != true {
			t.Errorf("unexpected buffer_full field: %v", entries[0].ContextMap()["buffer_full"])
		}
	})
}
