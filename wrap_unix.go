//go:build unix

package fchdir

import (
	"os"

	"golang.org/x/sys/unix"
)

// Open opens name like open(2) and registers the new descriptor. The
// descriptor is always close-on-exec, as with os.OpenFile; clear
// FD_CLOEXEC with fcntl to pass it to a child.
func (t *Table) Open(name string, flags int, mode uint32) (int, error) {
	fd, err := unix.Open(name, flags|unix.O_CLOEXEC, mode)
	if err != nil {
		return -1, &os.PathError{Op: "open", Path: name, Err: err}
	}
	return t.RegisterOpen(fd, name)
}

// Dup duplicates fd like dup(2) and registers the copy.
func (t *Table) Dup(fd int) (int, error) {
	newfd, err := unix.Dup(fd)
	if err != nil {
		return -1, os.NewSyscallError("dup", err)
	}
	return t.RegisterDup(fd, newfd)
}

// DupFD duplicates fd onto the first free descriptor not below lowest,
// like fcntl(F_DUPFD), and registers the copy.
func (t *Table) DupFD(fd, lowest int) (int, error) {
	newfd, err := unix.FcntlInt(uintptr(fd), unix.F_DUPFD, lowest)
	if err != nil {
		return -1, os.NewSyscallError("fcntl", err)
	}
	return t.RegisterDup(fd, newfd)
}

// Close unregisters fd and closes it.
func (t *Table) Close(fd int) error {
	t.Unregister(fd)
	return os.NewSyscallError("close", unix.Close(fd))
}
