package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/djmitche/shquote"
	"github.com/jmgilman/go/errors"
	"github.com/orivej/e"
)

// writeScript writes a shell script that runs its arguments in each of
// dirs in turn.
func writeScript(name string, dirs []string) error {
	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0777) //#nosec
	if err != nil {
		return errors.Wrapf(err, errors.CodeExecutionFailed, "creating script %s", name)
	}
	defer e.CloseOrPrint(f)

	buf := bufio.NewWriter(f)
	fmt.Fprintln(buf, "#!/bin/sh")
	fmt.Fprintln(buf, "set -e")
	fmt.Fprintln(buf)
	for _, dir := range dirs {
		fmt.Fprintf(buf, "(cd %s && \"$@\")\n", shquote.Quote(dir))
	}
	return buf.Flush()
}
