package cli

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/dgallion1/treelist/internal/outline"
	"github.com/dgallion1/treelist/internal/parser"
	"github.com/dgallion1/treelist/internal/render"
	"github.com/spf13/cobra"
)

var renderStyle string

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render an outline file as text, HTML, or breadcrumb trails",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := parseFile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch renderStyle {
		case "html":
			fmt.Fprintln(out, render.HTML(doc))
		case "breadcrumbs":
			for _, trail := range render.Breadcrumbs(doc, "") {
				fmt.Fprintln(out, trail)
			}
		default:
			style, err := render.ParseStyle(renderStyle)
			if err != nil {
				return err
			}
			text, err := render.Text(doc, render.TextOptions{Style: style, Filtered: filtered})
			if err != nil {
				return err
			}
			fmt.Fprint(out, text)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderStyle, "style", "indent", "Rendering style (indent|dashes|lines|html|breadcrumbs)")
}

func parseFile(path string) (*outline.Document, error) {
	p, err := parser.ForFile(path)
	if err != nil {
		return nil, err
	}
	data, err := openOutline(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(bytes.NewReader(data), filepath.Base(path))
}
