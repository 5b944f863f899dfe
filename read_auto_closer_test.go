package listfiles_test

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/listfiles/listfiles"
)

func TestReadAutoCloser(t *testing.T) {
	t.Parallel()
	want, err := os.ReadFile("testdata/hello.txt")
	if err != nil {
		t.Fatal(err)
	}
	input, err := os.Open("testdata/hello.txt")
	if err != nil {
		t.Fatal(err)
	}
	acr := listfiles.NewReadAutoCloser(input)
	got, err := io.ReadAll(acr)
	if err != nil {
		t.Error(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("want %q, got %q", want, got)
	}
	_, err = io.ReadAll(acr)
	if err == nil {
		t.Error("input not closed after reading")
	}
}

func TestReadAutoCloserWrapsNonClosableReader(t *testing.T) {
	t.Parallel()
	acr := listfiles.NewReadAutoCloser(strings.NewReader("hello"))
	if err := acr.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestZeroReadAutoCloserReturnsEOF(t *testing.T) {
	t.Parallel()
	var acr listfiles.ReadAutoCloser
	_, err := acr.Read(make([]byte, 1))
	if err != io.EOF {
		t.Errorf("want io.EOF, got %v", err)
	}
	if err := acr.Close(); err != nil {
		t.Error(err)
	}
}
