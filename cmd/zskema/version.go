package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/zskema"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of zskema",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "zskema version %s\n", zskema.Version)
		},
	}
}
