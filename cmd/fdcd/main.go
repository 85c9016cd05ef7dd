// Command fdcd changes directories through descriptors tracked by a
// fchdir.Table and prints file name components.
package main

import (
	"github.com/orivej/e"
)

func main() {
	err := newRootCommand().Execute()
	e.Exit(err)
}
