package phlytyapptest

import (
	"net/http"
	"net/http/httptest"

	"github.com/advdv/phlyty"
)

// CallHandler serves req with handler the way the app would, including halt and error handling, and returns the
// recorded response. Unhandled errors are logged through the standard logger.
func CallHandler(handler phlyty.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	phlyty.ToStd(handler, -1, phlyty.NewStdLogger(nil)).ServeHTTP(rec, req)

	return rec
}
