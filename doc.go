// Package phlyty provides a per-request application context with early-exit helpers for HTTP handlers.
//
// # Overview
//
// Every request is handled through an [App]. The App holds the request and a buffered [Response], and offers
// three helpers that end the handler: [App.Halt], [App.Stop] and [App.Redirect]. A minimal example:
//
//	h := phlyty.HandlerFunc(func(app *phlyty.App) error {
//	    if app.Request().Header.Get("Authorization") == "" {
//	        return app.Halt(http.StatusUnauthorized, "login first")
//	    }
//
//	    if app.Request().URL.Path == "/old" {
//	        return app.Redirect("/new", http.StatusMovedPermanently)
//	    }
//
//	    app.Response().SetContent("hello")
//	    return nil
//	})
//
//	http.ListenAndServe(":8080", phlyty.Serve(h))
//
// # Lazy request and response
//
// [App.Request] and [App.Response] never return nil. When nothing was injected with [App.SetRequest] or
// [App.SetResponse] a default value is created on first access and returned on every access after that. This
// makes an App trivial to construct in tests:
//
//	app := phlyty.New()
//	app.Response().SetStatusCode(http.StatusOK).SetContent("foo bar")
//
// # Halting
//
// The helpers write to the response and then return [ErrHalt]. Handlers return that error to unwind:
//
//   - [App.Halt] sets the status code and, if given, replaces the body with a message
//   - [App.Stop] changes nothing, the response is sent as it is
//   - [App.Redirect] sets the status code (302 by default) and the Location header
//
// ErrHalt is not a failure. The handler adapter ([ToStd], [Serve]) recognises it with [IsHalt], also when it is
// wrapped, and flushes the response unchanged.
//
// # Buffered Response
//
// [Response] implements http.ResponseWriter but holds everything in memory until it is flushed, so the status
// code and headers can still be changed after the body was written to. Besides the writer methods it provides
// accessors: [Response.StatusCode], [Response.SetStatusCode], [Response.Content], [Response.SetContent] and
// [Response.HasHeader].
//
// # Errors
//
// Handlers that fail return an error. [*Error] (created with [NewError]) is rendered with its status code, any
// other error is logged and rendered as 500 Internal Server Error. In both cases what was buffered so far is
// discarded:
//
//	return phlyty.NewError(http.StatusNotFound, fmt.Errorf("user %s not found", id))
package phlyty
