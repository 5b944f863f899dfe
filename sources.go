package listfiles

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Echo returns a pipe containing the supplied string.
func Echo(s string) *Pipe {
	return NewPipe().WithReader(strings.NewReader(s))
}

// File returns a *Pipe associated with the specified file. If there is an
// error opening the file, the pipe's error status will be set.
func File(name string) *Pipe {
	p := NewPipe()
	f, err := os.Open(name)
	if err != nil {
		return p.WithError(err)
	}
	return p.WithReader(f)
}

// RegularFiles returns a pipe containing the base name of each regular file
// directly inside dir, one per line, in the order the directory yields them.
// Subdirectories are not descended into. Symbolic links are followed when
// deciding whether an entry is a regular file.
//
// The directory is not read until the pipe is. If it can't be read, the error
// is returned by the first read and by every read after it.
func RegularFiles(dir string) *Pipe {
	return NewPipe().WithReader(&dirLister{dir: dir})
}

// dirLister reads a directory on first use and then serves the names of its
// regular files.
type dirLister struct {
	dir    string
	listed bool
	err    error
	names  io.Reader
}

func (d *dirLister) Read(b []byte) (int, error) {
	if !d.listed {
		d.listed = true
		d.names, d.err = d.list()
	}
	if d.err != nil {
		return 0, d.err
	}
	return d.names.Read(b)
}

func (d *dirLister) list() (io.Reader, error) {
	f, err := os.Open(d.dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	// f.ReadDir, unlike os.ReadDir, leaves entries unsorted.
	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, err
	}
	var out strings.Builder
	for _, e := range entries {
		if isRegularFile(d.dir, e) {
			out.WriteString(e.Name())
			out.WriteRune('\n')
		}
	}
	return strings.NewReader(out.String()), nil
}

// isRegularFile reports whether e, found in dir, is a regular file or a link
// to one. Entries that disappear before they can be classified are not.
func isRegularFile(dir string, e fs.DirEntry) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.Type().IsRegular()
	}
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
