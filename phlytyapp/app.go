package phlytyapp

import (
	"context"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// App wraps an fx.App for lifecycle management.
type App struct {
	app *fx.App
}

// AppConfig holds configuration for the app.
type AppConfig struct {
	ServerConfig
	FxOptions []fx.Option
}

// Option configures the App.
type Option func(*AppConfig)

// WithFx adds fx options for dependency injection.
func WithFx(fxOpts ...fx.Option) Option {
	return func(c *AppConfig) {
		c.FxOptions = append(c.FxOptions, fxOpts...)
	}
}

// WithHealthHandler sets a custom health check handler.
// If not set, a default handler returning 200 OK is used.
func WithHealthHandler(h func(http.ResponseWriter, *http.Request)) Option {
	return func(c *AppConfig) {
		c.HealthHandler = h
	}
}

// FxOptions returns the options that make up the dependency graph of [NewApp]. The phlytyapptest package
// uses it to build the same graph on top of fxtest.
func FxOptions[E Environment](newHandler any, opts ...Option) []fx.Option {
	var cfg AppConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	baseOpts := make([]fx.Option, 0, 10+len(cfg.FxOptions))
	baseOpts = append(baseOpts, []fx.Option{
		fx.NopLogger,
		fx.Provide(ParseEnv[E]()),
		fx.Provide(func(e E) Environment { return e }),
		fx.Provide(func(e E) (*zap.Logger, error) { return NewLogger(e) }),
		fx.Provide(NewTracerProvider),
		fx.Provide(NewPropagator),
		fx.Provide(newHandler),
		fx.Supply(cfg.ServerConfig),
		fx.Provide(NewServer),
		fx.Invoke(startServerHook),
	}...)

	return append(baseOpts, cfg.FxOptions...)
}

// NewApp creates an app that serves a single phlyty handler.
//
// newHandler is an fx constructor returning a [phlyty.Handler]; its parameters are resolved from the
// graph, so anything provided with [WithFx] can be requested.
//
// Example:
//
//	phlytyapp.NewApp[Env](func(env Env, logs *zap.Logger) phlyty.Handler {
//	    return phlyty.HandlerFunc(func(app *phlyty.App) error {
//	        if app.Request().URL.Path == "/old" {
//	            return app.Redirect("/new", http.StatusMovedPermanently)
//	        }
//	        return app.Halt(http.StatusOK, "hello from "+env.ServiceName)
//	    })
//	}).Run()
func NewApp[E Environment](newHandler any, opts ...Option) *App {
	return &App{
		app: fx.New(FxOptions[E](newHandler, opts...)...),
	}
}

// Err returns the error that occurred while building the dependency graph, if any.
func (a *App) Err() error {
	return a.app.Err()
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() {
	a.app.Run()
}

// Start starts the application with the given context.
func (a *App) Start(ctx context.Context) error {
	if err := a.app.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.app.StopTimeout())
	defer cancel()

	return a.app.Stop(stopCtx)
}
