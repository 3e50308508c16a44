package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/reoring/zskema/dsl"
)

func newSchemasCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "List the registered schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tKIND\tDESCRIPTION")
			for _, e := range a.registry.Entries() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, dsl.KindOf(e.Schema), e.Description)
			}
			return tw.Flush()
		},
	}
}
