//go:build !unix

package main

import (
	"github.com/jmgilman/go/errors"
	"github.com/spf13/cobra"
)

func (a *app) visitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "visit [DIR...]",
		Short: "Open directories and change into each through a duplicated descriptor",
		RunE: func(*cobra.Command, []string) error {
			return errors.New(errors.CodeNotImplemented, "visit needs unix descriptors")
		},
	}
}
