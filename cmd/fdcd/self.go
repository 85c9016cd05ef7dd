package main

import (
	"github.com/kardianos/osext"
)

// executableDir returns the directory holding the running executable,
// with symbolic links resolved.
func executableDir() (string, error) {
	return osext.ExecutableFolder()
}
