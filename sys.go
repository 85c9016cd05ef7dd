package fchdir

import "os"

// system is the part of the host a Table talks to.
type system interface {
	isDir(fd int) (bool, error)
	getwd() (string, error)
	close(fd int) error
	validate(fd int) error // fails with EBADF if fd is not open
	chdir(dir string) error
}

type hostSystem struct{}

func (hostSystem) chdir(dir string) error {
	return os.Chdir(dir)
}
