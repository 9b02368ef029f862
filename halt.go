package phlyty

import "github.com/cockroachdb/errors"

// ErrHalt signals that a handler wants to stop processing. It is not a failure: the response is sent exactly as
// it was left. It is returned by [App.Halt], [App.Stop] and [App.Redirect].
var ErrHalt = errors.New("phlyty: halt")

// IsHalt reports whether err is, or wraps, [ErrHalt].
func IsHalt(err error) bool {
	return errors.Is(err, ErrHalt)
}
