package listfiles

import (
	"io"
)

// ReadAutoCloser wraps an io.Reader, and closes it automatically, if closable,
// once it has been completely read.
type ReadAutoCloser struct {
	r io.ReadCloser
}

// NewReadAutoCloser returns a ReadAutoCloser wrapping the supplied Reader. If
// the Reader is not a Closer, it will be wrapped in a NopCloser to make it
// closable.
func NewReadAutoCloser(r io.Reader) ReadAutoCloser {
	if rc, ok := r.(io.ReadCloser); ok {
		return ReadAutoCloser{rc}
	}
	return ReadAutoCloser{io.NopCloser(r)}
}

// Read reads up to len(b) bytes from the data source into b. At end of file
// Read returns 0, io.EOF, and the data source is closed.
func (a ReadAutoCloser) Read(b []byte) (n int, err error) {
	if a.r == nil {
		return 0, io.EOF
	}
	n, err = a.r.Read(b)
	if err == io.EOF {
		a.Close()
	}
	return n, err
}

// Close closes the data source associated with a, and returns the result of
// that close operation.
func (a ReadAutoCloser) Close() error {
	if a.r == nil {
		return nil
	}
	return a.r.Close()
}
