package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/overload"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of overload",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "overload version %s\n", strings.TrimSpace(overload.Version))
		},
	}
}
