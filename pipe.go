// Package listfiles writes the names of the regular files in a directory to a
// text file, one per line.
//
// The work is done by a small pipe: a source produces lines, and a sink
// consumes them. Most callers only need Run:
//
//	err := listfiles.Run(listfiles.DefaultConfig())
//
// which is shorthand for
//
//	_, err := listfiles.RegularFiles(".").WriteFile("filesinfolder.txt")
//
// If any pipe operation results in an error, the pipe's Error method will
// return that error, and all later sinks on that pipe return it without doing
// anything else. A nil *Pipe is safe to use.
package listfiles

import (
	"io"
)

// Pipe represents a pipe object with an associated ReadAutoCloser.
type Pipe struct {
	Reader ReadAutoCloser
	err    error
}

// NewPipe returns a pointer to a new empty pipe.
func NewPipe() *Pipe {
	return &Pipe{
		Reader: ReadAutoCloser{},
		err:    nil,
	}
}

// Close closes the pipe's associated reader. This is always safe to do, because
// pipes created from a non-closable source will have an io.NopCloser to call.
func (p *Pipe) Close() error {
	if p == nil {
		return nil
	}
	return p.Reader.Close()
}

// Error returns the last error returned by any pipe operation, or nil otherwise.
func (p *Pipe) Error() error {
	if p == nil {
		return nil
	}
	return p.err
}

// Read reads up to len(b) bytes from the data source into b. It returns the
// number of bytes read and any error encountered. At end of file, or on a nil
// pipe, Read returns 0, io.EOF.
func (p *Pipe) Read(b []byte) (int, error) {
	if p == nil {
		return 0, io.EOF
	}
	if p.Error() != nil {
		return 0, p.Error()
	}
	return p.Reader.Read(b)
}

// SetError sets the pipe's error status to the specified error. Setting a
// non-nil error also closes the pipe's reader.
func (p *Pipe) SetError(err error) {
	if p == nil {
		return
	}
	if err != nil {
		p.Close()
	}
	p.err = err
}

// WithReader takes an io.Reader, and associates the pipe with that reader. If
// necessary, the reader will be automatically closed once it has been
// completely read.
func (p *Pipe) WithReader(r io.Reader) *Pipe {
	if p == nil {
		return nil
	}
	p.Reader = NewReadAutoCloser(r)
	return p
}

// WithError sets the pipe's error status to the specified error and returns the
// modified pipe.
func (p *Pipe) WithError(err error) *Pipe {
	p.SetError(err)
	return p
}
