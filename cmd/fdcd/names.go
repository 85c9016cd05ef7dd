package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) dirnameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dirname PATH...",
		Short: "Print each PATH with its last component removed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range args {
				fmt.Fprintln(cmd.OutOrStdout(), a.syntax.DirName(p))
			}
			return nil
		},
	}
}

func (a *app) basenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "basename PATH...",
		Short: "Print the last component of each PATH",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range args {
				fmt.Fprintln(cmd.OutOrStdout(), a.syntax.Base(p))
			}
			return nil
		},
	}
}

func (a *app) concatCommand() *cobra.Command {
	var offset bool
	cmd := &cobra.Command{
		Use:   "concat DIR BASE",
		Short: "Print the name of BASE as looked up from DIR",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, off := a.syntax.Concat(args[0], args[1])
			if offset {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", name, off)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&offset, "offset", false, "also print where BASE starts in the result")
	return cmd
}
