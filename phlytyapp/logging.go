package phlytyapp

import (
	"github.com/advdv/phlyty"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a JSON zap logger at the level set by PHLYTY_LOG_LEVEL. Every entry carries an ISO8601
// "timestamp" and the "service" name. Stack traces are only attached from DPanic up.
func NewLogger(env Environment) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(env.logLevel())
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build(
		zap.Fields(zap.String("service", env.serviceName())),
		zap.AddStacktrace(zapcore.DPanicLevel),
	)
}

// dispatchLogger reports what goes wrong while phlyty dispatches a request.
type dispatchLogger struct{ logs *zap.Logger }

func (l dispatchLogger) LogUnhandledServeError(err error) {
	l.logs.Error("unhandled server error", zap.Error(err))
}

// LogImplicitFlushError marks a full buffer separately, that is a handler producing more than PHLYTY_BUFFER_LIMIT
// rather than a broken connection.
func (l dispatchLogger) LogImplicitFlushError(err error) {
	l.logs.Error("error while flushing implicitly",
		zap.Error(err),
		zap.Bool("buffer_full", errors.Is(err, phlyty.ErrBufferFull)))
}

func newDispatchLogger(l *zap.Logger) phlyty.Logger {
	return dispatchLogger{logs: l.Named("phlyty").Named("dispatch")}
}
