//go:build !unix

package fchdir

import (
	"errors"
	"os"
)

// Descriptors cannot be inspected here, so the caller registers only
// directory opens.
const defaultOpenIsDir = true

func (hostSystem) isDir(fd int) (bool, error) {
	return false, errors.ErrUnsupported
}

func (hostSystem) getwd() (string, error) {
	return os.Getwd()
}

func (hostSystem) close(fd int) error {
	return errors.ErrUnsupported
}

// validate cannot check fd, so an untracked descriptor is reported as not a
// directory.
func (hostSystem) validate(fd int) error {
	return nil
}
