// Package phlytyapptest provides test helpers for phlytyapp applications.
//
// It constructs the identical DI graph as [phlytyapp.NewApp] but uses
// [fxtest.App] which fails the test immediately on DI errors.
//
// Example:
//
//	phlytyapptest.SetBaseEnv(t, 18081)
//	phlytyapptest.Start[phlytyapp.BaseEnvironment](t, newHandler)
package phlytyapptest

import (
	"testing"

	"github.com/advdv/phlyty/phlytyapp"
	"go.uber.org/fx/fxtest"
)

// App embeds *fxtest.App for testing phlytyapp applications.
type App struct {
	*fxtest.App
}

// New creates a test app with the same DI graph as [phlytyapp.NewApp].
func New[E phlytyapp.Environment](t testing.TB, newHandler any, opts ...phlytyapp.Option) *App {
	return &App{App: fxtest.New(t, phlytyapp.FxOptions[E](newHandler, opts...)...)}
}

// Start creates the test app, starts it and stops it again when the test is done.
func Start[E phlytyapp.Environment](t testing.TB, newHandler any, opts ...phlytyapp.Option) *App {
	t.Helper()

	app := New[E](t, newHandler, opts...)
	app.RequireStart()
	t.Cleanup(func() { app.RequireStop() })

	return app
}
