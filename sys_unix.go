//go:build unix

package fchdir

import "golang.org/x/sys/unix"

// fstat tells directories apart, so every open is checked.
const defaultOpenIsDir = false

func (hostSystem) isDir(fd int) (bool, error) {
	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return false, err
	}
	return st.Mode&unix.S_IFMT == unix.S_IFDIR, nil
}

func (hostSystem) getwd() (string, error) {
	return unix.Getwd()
}

func (hostSystem) close(fd int) error {
	return unix.Close(fd)
}

// validate asks for the descriptor flags, which fails only for a bad
// descriptor, like dup2(fd, fd) would.
func (hostSystem) validate(fd int) error {
	_, err := unix.FcntlInt(uintptr(fd), unix.F_GETFD, 0)
	return err
}
