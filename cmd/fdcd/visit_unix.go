//go:build unix

package main

import (
	"fmt"
	"io"

	"github.com/djmitche/shquote"
	"github.com/jmgilman/go/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/orivej/fchdir"
)

func (a *app) visitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visit [DIR...]",
		Short: "Open directories and change into each through a duplicated descriptor",
	}
	flags := cmd.Flags()
	dirs := dirSetFlag(flags, "dir", "directory to visit (repeatable)")
	flags.Bool("self", false, "also visit the directory holding this executable")
	flags.String("script", "", "write a shell script that runs its arguments in every visited directory")
	_ = a.v.BindPFlag("self", flags.Lookup("self"))
	_ = a.v.BindPFlag("script", flags.Lookup("script"))

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		for _, dir := range args {
			dirs.add(dir)
		}
		if a.v.GetBool("self") {
			dir, err := executableDir()
			if err != nil {
				return errors.Wrap(err, errors.CodeExecutionFailed, "locating executable")
			}
			dirs.add(dir)
		}
		if len(dirs.names) == 0 {
			return errors.New(errors.CodeInvalidInput, "no directories to visit")
		}

		visited, err := a.visit(cmd.OutOrStdout(), dirs.names)
		if err != nil {
			return err
		}
		if script := a.v.GetString("script"); script != "" {
			return writeScript(script, visited)
		}
		return nil
	}
	return cmd
}

// visit opens each of dirs, moves the descriptor with dup and close, and
// changes into the directory through the copy. It returns the working
// directory seen after each change; the original one is restored.
func (a *app) visit(out io.Writer, dirs []string) ([]string, error) {
	tbl := fchdir.New(fchdir.WithLogger(a.log))
	var visited []string
	for _, dir := range dirs {
		wd, err := a.visitOne(out, tbl, dir)
		if err != nil {
			return visited, errors.WrapWithContext(err, errors.CodeExecutionFailed, "visit failed",
				map[string]interface{}{"dir": dir})
		}
		visited = append(visited, wd)
	}
	a.log.Info().Int("count", len(visited)).Msg("visited")
	return visited, nil
}

func (a *app) visitOne(out io.Writer, tbl *fchdir.Table, dir string) (string, error) {
	fd, err := tbl.Open(dir, unix.O_RDONLY, 0)
	if err != nil {
		return "", err
	}
	name, err := tbl.DirName(fd)
	if err != nil {
		_ = tbl.Close(fd)
		return "", err
	}
	fmt.Fprintln(out, "open", fd, shquote.Quote(name))

	newfd, err := tbl.Dup(fd)
	if err != nil {
		_ = tbl.Close(fd)
		return "", err
	}
	fmt.Fprintln(out, "dup", fd, newfd)
	if err := tbl.Close(fd); err != nil {
		_ = tbl.Close(newfd)
		return "", err
	}
	fmt.Fprintln(out, "close", fd)
	defer func() {
		_ = tbl.Close(newfd)
		fmt.Fprintln(out, "close", newfd)
	}()

	var wd string
	err = tbl.InDir(newfd, func() error {
		var err error
		wd, err = unix.Getwd()
		return err
	})
	if err != nil {
		return "", err
	}
	fmt.Fprintln(out, "fchdir", newfd, shquote.Quote(wd))
	return wd, nil
}
