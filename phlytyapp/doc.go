// Package phlytyapp serves a [phlyty.Handler] with the boilerplate of a production HTTP service: environment
// parsing, structured logging, OpenTelemetry tracing, a health check and graceful shutdown.
//
//	type Env struct {
//	    phlytyapp.BaseEnvironment
//	    Greeting string `env:"GREETING" envDefault:"hello"`
//	}
//
//	phlytyapp.NewApp[Env](func(env Env) phlyty.Handler {
//	    return phlyty.HandlerFunc(func(app *phlyty.App) error {
//	        phlytyapp.AppLog(app).Info("greeting")
//	        return app.Halt(http.StatusOK, env.Greeting)
//	    })
//	}).Run()
//
// # Environment Configuration
//
//	| Variable                    | Required | Default | Description                            |
//	|-----------------------------|----------|---------|----------------------------------------|
//	| PHLYTY_PORT                 | Yes      | -       | Port the HTTP server listens on        |
//	| PHLYTY_SERVICE_NAME         | Yes      | -       | Service name for logging and tracing   |
//	| PHLYTY_HEALTH_CHECK_PATH    | No       | /health | Health check endpoint path             |
//	| PHLYTY_LOG_LEVEL            | No       | info    | Log level (debug, info, warn, error)   |
//	| PHLYTY_OTEL_EXPORTER        | No       | none    | Trace exporter: "none" or "stdout"     |
//	| PHLYTY_BUFFER_LIMIT         | No       | -1      | Response buffer limit in bytes         |
//	| PHLYTY_READ_HEADER_TIMEOUT  | No       | 5s      | Server read header timeout             |
//
// # Logging and Tracing
//
// [Log] returns the request's zap logger with trace_id and span_id fields when a span is active, [AppLog] does
// the same for a [phlyty.App] and [Span] returns the active span.
package phlytyapp
