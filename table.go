// Package fchdir emulates fchdir(2) with chdir(2) by remembering the
// absolute name of every directory opened through a Table.
//
// A Table assumes that a directory is not renamed or moved while a
// descriptor visiting it is open. Nothing detects a violation; Fchdir will
// then change to whatever now lives at the remembered name, or fail.
package fchdir

import (
	"errors"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/orivej/fchdir/filename"
)

// Table maps open descriptors to the directories they visit. Its hooks
// must be called by whatever opens, duplicates and closes descriptors; the
// Open, Dup, DupFD and Close methods do that themselves.
type Table struct {
	mu   sync.Mutex
	dirs []string // absolute directory name by descriptor, "" if untracked

	sys       system
	log       zerolog.Logger
	syntax    filename.Syntax
	openIsDir bool
}

// Option configures a Table built by New.
type Option func(*Table)

// WithLogger logs hook events at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(t *Table) {
		t.log = log
	}
}

// WithOpenDirectory makes RegisterOpen track every descriptor without
// checking that it is a directory. Use it when the caller only registers
// directories.
func WithOpenDirectory() Option {
	return func(t *Table) {
		t.openIsDir = true
	}
}

// WithSyntax sets the file name rules used to make names absolute.
func WithSyntax(sx filename.Syntax) Option {
	return func(t *Table) {
		t.syntax = sx
	}
}

// New returns an empty Table using the host's descriptors and file name
// syntax. Hosts that cannot tell a directory descriptor from another one
// start with WithOpenDirectory in effect.
func New(opts ...Option) *Table {
	t := &Table{
		sys:       hostSystem{},
		log:       zerolog.Nop(),
		syntax:    filename.Native,
		openIsDir: defaultOpenIsDir,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ensureSlot makes room for fd and empties its slot.
func (t *Table) ensureSlot(fd int) {
	if fd < len(t.dirs) {
		t.dirs[fd] = ""
		return
	}
	n := 2*len(t.dirs) + 1
	if n <= fd {
		n = fd + 1
	}
	dirs := make([]string, n)
	copy(dirs, t.dirs)
	t.dirs = dirs
}

func (t *Table) lookup(fd int) string {
	if fd >= 0 && fd < len(t.dirs) {
		return t.dirs[fd]
	}
	return ""
}

func (t *Table) clear(fd int) {
	if fd >= 0 && fd < len(t.dirs) {
		t.dirs[fd] = ""
	}
}

// absolute returns an absolute name for dir.
func (t *Table) absolute(dir string) (string, error) {
	if t.syntax.IsAbs(dir) {
		return dir, nil
	}
	cwd, err := t.sys.getwd()
	if err != nil {
		return "", os.NewSyscallError("getwd", err)
	}
	if dir == "." {
		return cwd, nil
	}
	abs, _ := t.syntax.Concat(cwd, dir)
	return abs, nil
}

// RegisterOpen records that fd was just opened as name. If fd visits a
// directory, its absolute name is remembered. If the name cannot be made
// absolute, fd is closed and the error is returned with -1.
func (t *Table) RegisterOpen(fd int, name string) (int, error) {
	if fd < 0 {
		return -1, ErrBadDescriptor
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.openIsDir {
		dir, err := t.sys.isDir(fd)
		switch {
		case errors.Is(err, errors.ErrUnsupported):
			// Only directories are registered where fstat cannot tell.
		case err != nil || !dir:
			t.clear(fd)
			return fd, nil
		}
	}

	t.ensureSlot(fd)
	abs, err := t.absolute(name)
	if err != nil {
		_ = t.sys.close(fd)
		t.log.Debug().Err(err).Int("fd", fd).Str("name", name).Msg("register failed")
		return -1, err
	}
	t.dirs[fd] = abs
	t.log.Debug().Int("fd", fd).Str("dir", abs).Msg("open")
	return fd, nil
}

// RegisterDup records that newfd was just made a duplicate of oldfd, by
// dup, dup2, dup3 or fcntl(F_DUPFD).
func (t *Table) RegisterDup(oldfd, newfd int) (int, error) {
	if oldfd < 0 || newfd < 0 {
		return -1, ErrBadDescriptor
	}
	if oldfd == newfd {
		return newfd, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if dir := t.lookup(oldfd); dir != "" {
		t.ensureSlot(newfd)
		t.dirs[newfd] = dir
		t.log.Debug().Int("fd", oldfd).Int("newfd", newfd).Str("dir", dir).Msg("dup")
	} else {
		// newfd now refers to a non-directory.
		t.clear(newfd)
	}
	return newfd, nil
}

// Unregister forgets fd. Call it when fd is closed.
func (t *Table) Unregister(fd int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.lookup(fd) != "" {
		t.log.Debug().Int("fd", fd).Msg("close")
	}
	t.clear(fd)
}

// DirName returns the directory that fd visits. It fails with
// ErrBadDescriptor if fd is not open and with ErrNotDirectory if fd is open
// but does not visit a tracked directory.
func (t *Table) DirName(fd int) (string, error) {
	t.mu.Lock()
	dir := t.lookup(fd)
	t.mu.Unlock()

	if dir != "" {
		return dir, nil
	}
	if fd < 0 {
		return "", ErrBadDescriptor
	}
	if err := t.sys.validate(fd); err != nil && !errors.Is(err, errors.ErrUnsupported) {
		return "", err
	}
	return "", ErrNotDirectory
}

// Len returns the number of tracked descriptors.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for _, dir := range t.dirs {
		if dir != "" {
			n++
		}
	}
	return n
}

// Clone returns a copy of t, as a forked process inherits its parent's
// descriptors.
func (t *Table) Clone() *Table {
	t.mu.Lock()
	defer t.mu.Unlock()

	newt := &Table{
		dirs:      make([]string, len(t.dirs)),
		sys:       t.sys,
		log:       t.log,
		syntax:    t.syntax,
		openIsDir: t.openIsDir,
	}
	copy(newt.dirs, t.dirs)
	return newt
}
