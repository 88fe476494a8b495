package cli

import (
	"errors"
	"fmt"

	"github.com/dgallion1/treelist/internal/flattree"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Verify that an outline file is depth-first ordered",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := parseFile(args[0])
		if err != nil {
			return err
		}

		roots, err := doc.Roots(filtered)
		if err != nil {
			var oe *flattree.OrderError
			if errors.As(err, &oe) {
				return fmt.Errorf("%s: node %d (%q) breaks depth-first order", args[0], oe.Index, oe.Node)
			}
			return err
		}

		maxDepth := 0
		for _, n := range doc.Nodes {
			if n.Depth > maxDepth {
				maxDepth = n.Depth
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d nodes, %d roots, max depth %d)\n",
			args[0], len(doc.Nodes), len(roots), maxDepth)
		return nil
	},
}
