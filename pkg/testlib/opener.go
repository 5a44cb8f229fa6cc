package testlib

import (
	"io"
	"os"
)

// Opener abstracts file opening for testability.
type Opener interface {
	Open(name string) (io.ReadCloser, error)
}

// RealOpener opens files on the real filesystem.
type RealOpener struct{}

// Open opens name read-only.
func (RealOpener) Open(name string) (io.ReadCloser, error) {
	return os.Open(name) //nolint:gosec // checker paths come from the judge
}

// describeOpenError turns an open failure into a short reason.
func describeOpenError(err error) string {
	switch {
	case os.IsNotExist(err):
		return "not found"
	case os.IsPermission(err):
		return "permission denied"
	default:
		return err.Error()
	}
}
