package phlyty

import (
	"bytes"
	"net/http"
	"sync"

	"github.com/cockroachdb/errors"
)

var (
	// ErrBufferFull is returned when a write would grow the buffer past its limit.
	ErrBufferFull = errors.New("phlyty: response buffer is full")

	// ErrNotBound is returned when a detached response is asked to flush.
	ErrNotBound = errors.New("phlyty: response is not bound to a response writer")
)

var bufPool = sync.Pool{New: func() any { return new(bytes.Buffer) }}

// ResponseWriter is implemented by [*Response]. It is an http.ResponseWriter whose bytes are buffered so the
// response can be rewritten, or reset completely, until it is flushed.
type ResponseWriter interface {
	http.ResponseWriter
	Reset()
	Free()
	FlushBuffer() error
}

// Response is the outbound state of a single request: a status code, a body and headers. Everything is held in
// memory until it is flushed to the underlying writer, so halting a handler can still change the status and
// headers after the body has been written to.
type Response struct {
	resp   http.ResponseWriter
	header http.Header
	buf    *bytes.Buffer
	limit  int
	status int
	err    error

	wroteHeader bool // WriteHeader or Write has been called
	sentHeader  bool // header has been written to resp
	flushed     bool // explicitly flushed, no more resets
}

// NewResponse creates a detached response with status 200, no content and no headers. It can be inspected and
// modified but not flushed.
func NewResponse() *Response {
	return NewResponseWriter(nil, -1)
}

// NewResponseWriter creates a response that buffers up to limit bytes before writing to resp. A negative limit
// disables limiting.
func NewResponseWriter(resp http.ResponseWriter, limit int) *Response {
	buf, _ := bufPool.Get().(*bytes.Buffer)
	buf.Reset()

	return &Response{
		resp:   resp,
		header: http.Header{},
		buf:    buf,
		limit:  limit,
		status: http.StatusOK,
	}
}

// StatusCode returns the status code that will be sent.
func (r *Response) StatusCode() int { return r.status }

// SetStatusCode overrides the status code, regardless of earlier calls to WriteHeader or Write.
func (r *Response) SetStatusCode(code int) *Response {
	r.status = code
	r.wroteHeader = true

	return r
}

// Content returns the buffered body.
func (r *Response) Content() string { return r.buf.String() }

// SetContent replaces the buffered body. If the content exceeds the buffer limit the body is left as is and
// [ErrBufferFull] is reported by the next flush.
func (r *Response) SetContent(s string) *Response {
	if r.limit >= 0 && len(s) > r.limit {
		r.err = errors.Wrapf(ErrBufferFull, "content of %d bytes exceeds limit of %d", len(s), r.limit)
		return r
	}

	r.buf.Reset()
	r.buf.WriteString(s)

	return r
}

// Header returns the header map that will be sent.
func (r *Response) Header() http.Header { return r.header }

// HasHeader reports whether at least one value is set for the (case-insensitive) header name.
func (r *Response) HasHeader(name string) bool {
	return len(r.header.Values(name)) > 0
}

// WriteHeader records the status code. Like the standard library, only the first call counts and a call after the
// body has been written is ignored.
func (r *Response) WriteHeader(code int) {
	if r.wroteHeader {
		return
	}

	r.status = code
	r.wroteHeader = true
}

// Write appends to the buffer. It writes nothing and returns [ErrBufferFull] if p doesn't fit.
func (r *Response) Write(p []byte) (int, error) {
	if r.limit >= 0 && r.buf.Len()+len(p) > r.limit {
		return 0, ErrBufferFull
	}

	r.wroteHeader = true

	return r.buf.Write(p)
}

// Reset discards the body, the headers, the status code and any recorded error. It panics when the response was
// already flushed explicitly since those bytes are on the wire.
func (r *Response) Reset() {
	if r.flushed {
		panic("phlyty: cannot reset, response was already flushed")
	}

	r.buf.Reset()
	r.header = http.Header{}
	r.status = http.StatusOK
	r.wroteHeader = false
	r.err = nil
}

// FlushBuffer writes the header (once) and the buffered body to the underlying writer.
func (r *Response) FlushBuffer() error {
	if r.err != nil {
		return r.err
	}

	if r.resp == nil {
		return ErrNotBound
	}

	if !r.sentHeader {
		dst := r.resp.Header()
		for k, v := range r.header {
			dst[k] = v
		}

		r.resp.WriteHeader(r.status)
		r.sentHeader = true
	}

	if _, err := r.buf.WriteTo(r.resp); err != nil {
		return errors.Wrap(err, "write buffer")
	}

	return nil
}

// FlushError flushes the buffer and then the underlying writer. It makes the response usable with
// http.ResponseController. After this the response can no longer be reset.
func (r *Response) FlushError() error {
	if err := r.FlushBuffer(); err != nil {
		return err
	}

	r.flushed = true

	if err := http.NewResponseController(r.resp).Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
		return errors.Wrap(err, "flush underlying writer")
	}

	return nil
}

// bind makes w the underlying writer, unless the header already went out on another one.
func (r *Response) bind(w http.ResponseWriter) {
	if r.sentHeader {
		return
	}

	r.resp = w
}

// Unwrap returns the underlying writer, nil for detached responses.
func (r *Response) Unwrap() http.ResponseWriter { return r.resp }

// Free returns the buffer to the pool. The response must not be used afterwards.
func (r *Response) Free() {
	if r.buf == nil {
		return
	}

	bufPool.Put(r.buf)
	r.buf = nil
}

var _ ResponseWriter = &Response{}
