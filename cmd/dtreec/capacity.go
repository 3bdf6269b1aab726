package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kestrelrw/rewritetree/internal/dtree"
)

func newCapacityCmd() *cobra.Command {
	var fixture string
	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Print the runtime capture-buffer upper bound for a compiled rule set",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := compileFixture(fixture)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dtree.Capacity(tree))
			return nil
		},
	}
	cmd.Flags().StringVar(&fixture, "fixture", "peano", "named fixture to compile (peano, not, and, hof)")
	return cmd
}
