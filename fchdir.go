package fchdir

import (
	"os"
	"sync"
	"syscall"
)

// Errors returned by DirName and Fchdir. They are the errno values that
// native fchdir fails with, so errors.Is works with either.
var (
	ErrBadDescriptor error = syscall.EBADF
	ErrNotDirectory  error = syscall.ENOTDIR
)

// Fchdir changes the working directory to the directory that fd visits.
// Errors from the lookup are wrapped in *os.SyscallError; errors from the
// change of directory are those of os.Chdir.
func (t *Table) Fchdir(fd int) error {
	dir, err := t.DirName(fd)
	if err != nil {
		return os.NewSyscallError("fchdir", err)
	}
	t.log.Debug().Int("fd", fd).Str("dir", dir).Msg("fchdir")
	return t.sys.chdir(dir)
}

// chdirMu serialises InDir calls of all tables, since they share the
// process working directory.
var chdirMu sync.Mutex

// InDir runs fn with the working directory changed to the directory that
// fd visits, then changes back. Concurrent InDir calls wait for each
// other; fn must not call InDir, and other code that changes the working
// directory meanwhile is not excluded.
func (t *Table) InDir(fd int, fn func() error) (err error) {
	chdirMu.Lock()
	defer chdirMu.Unlock()

	prev, err := t.sys.getwd()
	if err != nil {
		return os.NewSyscallError("getwd", err)
	}
	if err := t.Fchdir(fd); err != nil {
		return err
	}
	defer func() {
		if cerr := t.sys.chdir(prev); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn()
}
