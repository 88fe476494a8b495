package cli

import (
	"github.com/dgallion1/treelist/internal/outline"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert an outline file into a nested tree document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := parseFile(args[0])
		if err != nil {
			return err
		}

		roots, err := doc.Roots(filtered)
		if err != nil {
			return err
		}

		p, err := newPrinter()
		if err != nil {
			return err
		}
		return p.Print(map[string]any{
			"title":      doc.Title,
			"node_count": len(doc.Nodes),
			"roots":      outline.FromTree(roots),
		})
	},
}
