package phlyty

import (
	"log"
	"net/http"
)

// Handler handles a request through its App. Returning an error ends the handling: [ErrHalt] (see [App.Halt])
// sends the response as it is, an [*Error] renders its status code and any other error renders a 500.
type Handler interface {
	ServePhlyty(app *App) error
}

// HandlerFunc allow casting a function to implement [Handler].
type HandlerFunc func(*App) error

// ServePhlyty implements the [Handler] interface.
func (f HandlerFunc) ServePhlyty(app *App) error {
	return f(app)
}

// Serve converts h into a standard library http.Handler without a buffer limit, logging to the standard logger.
func Serve(h Handler) http.Handler {
	return ToStd(h, -1, NewStdLogger(log.Default()))
}

// ToStd converts h into a standard library http.Handler. Each request gets its own App with a buffered response
// that is flushed implicitly after the handler returns. A response injected with [App.SetResponse] replaces the
// buffered one: it is bound to the live writer unless its header was already sent, and it is not freed.
func ToStd(h Handler, bufLimit int, logs Logger) http.Handler {
	return http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
		app := NewFromStd(resp, req, bufLimit)
		defer app.Response().Free()

		err := h.ServePhlyty(app)

		bresp := app.Response()
		bresp.bind(resp)

		if err != nil && !IsHalt(err) {
			status := StatusOf(err)
			if status == 0 {
				logs.LogUnhandledServeError(err)
				status = http.StatusInternalServerError
			}

			// part of the response is already on the wire, the best we can do is end it.
			if bresp.flushed {
				return
			}

			renderError(bresp, status)
		}

		if err := bresp.FlushBuffer(); err != nil {
			logs.LogImplicitFlushError(err)

			// nothing was sent yet, so don't let the client mistake the failure for a 200.
			if !bresp.sentHeader {
				renderError(bresp, http.StatusInternalServerError)
				if err := bresp.FlushBuffer(); err != nil {
					logs.LogImplicitFlushError(err)
				}
			}
		}
	})
}

func renderError(bresp *Response, status int) {
	bresp.Reset()
	http.Error(bresp, http.StatusText(status), status)
}
