package listfiles

import (
	"bufio"
	"io"
	"os"
)

// String returns the contents of the Pipe as a string, or an error, and closes
// the pipe after reading. If there is an error reading, the pipe's error status
// is also set.
func (p *Pipe) String() (string, error) {
	if p.Error() != nil {
		return "", p.Error()
	}
	defer p.Close()
	res, err := io.ReadAll(p)
	if err != nil {
		p.SetError(err)
		return "", err
	}
	return string(res), nil
}

// Slice returns the contents of the pipe as a slice of strings, one element
// per line. Line terminators are not included.
func (p *Pipe) Slice() ([]string, error) {
	if p.Error() != nil {
		return nil, p.Error()
	}
	defer p.Close()
	var result []string
	scanner := bufio.NewScanner(p)
	for scanner.Scan() {
		result = append(result, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		p.SetError(err)
		return nil, err
	}
	return result, nil
}

// CountLines counts lines from the pipe's reader, and returns the integer
// result, or an error. If there is an error reading the pipe, the pipe's error
// status is also set.
func (p *Pipe) CountLines() (int, error) {
	lines, err := p.Slice()
	return len(lines), err
}

// WriteFile writes the contents of the Pipe to the specified file, creating it
// if necessary and truncating it if it exists, and closes the pipe after
// reading. The file is opened before the pipe is read. It returns the number of
// bytes successfully written, or an error. If there is an error reading or
// writing, the pipe's error status is also set.
func (p *Pipe) WriteFile(name string) (wrote int64, err error) {
	if p.Error() != nil {
		return 0, p.Error()
	}
	defer p.Close()
	out, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		p.SetError(err)
		return 0, err
	}
	defer func() {
		if closeErr := out.Close(); err == nil && closeErr != nil {
			p.SetError(closeErr)
			err = closeErr
		}
	}()
	wrote, err = io.Copy(out, p)
	if err != nil {
		p.SetError(err)
		return wrote, err
	}
	return wrote, nil
}
