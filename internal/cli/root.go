package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags
var (
	outputFmt string
	queryExpr string
	filtered  bool
)

var rootCmd = &cobra.Command{
	Use:   "treelist",
	Short: "Reconstruct and render trees from flat outlines",
	Long: `treelist reads flat, depth-first-ordered outlines from markdown, HTML,
plain text, CSV, DOCX, or PDF files, reconstructs the tree they
describe, and renders or exports it.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "json", "Output format (json|yaml)")
	rootCmd.PersistentFlags().StringVar(&queryExpr, "query", "", "jq expression to filter JSON output")
	rootCmd.PersistentFlags().BoolVar(&filtered, "filtered", false, "Tolerate gaps from a filtered outline")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(convertCmd)
}

func newPrinter() (*Printer, error) {
	format, err := ParseFormat(outputFmt)
	if err != nil {
		return nil, err
	}
	return NewPrinter(os.Stdout, format, queryExpr), nil
}

func openOutline(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
