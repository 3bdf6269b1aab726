package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kestrelrw/rewritetree/internal/dtree"
)

func newDotCmd() *cobra.Command {
	var fixture, out string
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Export a compiled rule set's decision tree as Graphviz DOT",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := compileFixture(fixture)
			if err != nil {
				return err
			}
			rendered := dtree.ExportDOT(tree)
			if out == "" {
				fmt.Fprint(cmd.OutOrStdout(), rendered)
				return nil
			}
			if err := os.WriteFile(out, []byte(rendered), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s wrote %s\n", green("ok:"), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&fixture, "fixture", "peano", "named fixture to compile (peano, not, and, hof)")
	cmd.Flags().StringVar(&out, "out", "", "file to write DOT to (default: stdout)")
	return cmd
}
