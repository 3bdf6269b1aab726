package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kestrelrw/rewritetree/internal/dtree"
)

func newDemoCmd() *cobra.Command {
	var fixture string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Compile a named toy rule set and summarize its tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := loadFixture(fixture)
			if err != nil {
				return err
			}
			tree := dtree.Compile(rules)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%s %s (%d rules)\n", bold("fixture:"), cyan(fixture), len(rules))
			fmt.Fprintf(out, "%s %d\n", bold("capacity:"), dtree.Capacity(tree))

			nodes, leaves, fails, fetches := 0, 0, 0, 0
			dtree.Iter(tree, dtree.Visitor{
				Node:  func(*dtree.Node) { nodes++ },
				Leaf:  func(*dtree.Leaf) { leaves++ },
				Fail:  func(*dtree.Fail) { fails++ },
				Fetch: func(*dtree.Fetch) { fetches++ },
			})
			fmt.Fprintf(out, "%s node=%d leaf=%d fail=%d fetch=%d\n", bold("shape:"), nodes, leaves, fails, fetches)
			fmt.Fprintln(out, dim(tree.String()))
			return nil
		},
	}
	cmd.Flags().StringVar(&fixture, "fixture", "peano", "named fixture to compile (peano, not, and, hof)")
	return cmd
}
