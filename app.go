package phlyty

import (
	"context"
	"net/http"

	"github.com/samber/lo"
)

// App is the context of a single request lifecycle. It holds the request and the response, creating defaults
// lazily when none were injected, and provides helpers that end handling early.
//
// An App is not safe for concurrent use.
type App struct {
	request  *http.Request
	response *Response
}

// New creates an App without a request or response. Both are created on first access.
func New() *App {
	return &App{}
}

// NewFromStd creates an App for a live request. The response buffers up to bufLimit bytes before writing to w,
// a negative bufLimit disables the limit. The caller must flush and free the response.
func NewFromStd(w http.ResponseWriter, r *http.Request, bufLimit int) *App {
	return &App{
		request:  r,
		response: NewResponseWriter(w, bufLimit),
	}
}

// Request returns the request, creating a "GET /" request on first call if none was set.
func (a *App) Request() *http.Request {
	if a.request == nil {
		a.request = lo.Must(http.NewRequestWithContext(context.Background(), http.MethodGet, "/", nil))
	}

	return a.request
}

// SetRequest replaces the request.
func (a *App) SetRequest(r *http.Request) {
	a.request = r
}

// Response returns the response, creating a detached one on first call if none was set.
func (a *App) Response() *Response {
	if a.response == nil {
		a.response = NewResponse()
	}

	return a.response
}

// SetResponse replaces the response. When called during dispatch by [ToStd] the new response is the one that
// gets flushed to the client.
func (a *App) SetResponse(r *Response) {
	a.response = r
}

// Context returns the context of the request.
func (a *App) Context() context.Context {
	return a.Request().Context()
}

// Halt sets the status code and, when a non-empty message is given, replaces the body with it. Other response
// state is kept. It always returns [ErrHalt] which the handler should return:
//
//	if !allowed {
//	    return app.Halt(http.StatusForbidden, "go away")
//	}
func (a *App) Halt(status int, message ...string) error {
	resp := a.Response().SetStatusCode(status)
	if msg := lo.FirstOr(message, ""); msg != "" {
		resp.SetContent(msg)
	}

	return ErrHalt
}

// Stop returns [ErrHalt] without touching the response. Use it when the response is complete and nothing else
// should run.
func (a *App) Stop() error {
	return ErrHalt
}

// Redirect sets the status code (302 Found unless given) and the Location header, then returns [ErrHalt].
func (a *App) Redirect(location string, status ...int) error {
	resp := a.Response().SetStatusCode(lo.FirstOr(status, http.StatusFound))
	resp.Header().Set("Location", location)

	return ErrHalt
}
