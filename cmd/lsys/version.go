package main

import (
	"fmt"

	"github.com/aretw0/lsys"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of lsys",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lsys version %s\n", lsys.Version)
		},
	}
}
