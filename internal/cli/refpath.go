package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pagegen-labs/pagegen/internal/config"
	"github.com/pagegen-labs/pagegen/internal/navigator"
)

var refpathSentinel string

func init() {
	refpathCmd.Flags().StringVar(&refpathSentinel, "sentinel", "", "Sentinel folder name (default: from config)")
	rootCmd.AddCommand(refpathCmd)
}

var refpathCmd = &cobra.Command{
	Use:   "refpath <path>",
	Short: "Print the reference path of a markdown file",
	Long: `Print the part of path after the sentinel folder, as used for a page's
markdown reference. ".md" is appended when the file has no extension.

Example:
  pagegen refpath ~/site/Notes/Go/basics.md   # Go/basics.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sentinel := refpathSentinel
		if sentinel == "" {
			sentinel = config.Current().Sentinel
		}

		path := args[0]
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		ref, err := navigator.TrimToSentinel(navigator.EnsureMarkdownExt(path), sentinel)
		if err != nil {
			return err
		}
		newPrinter(cmd).Println(ref)
		return nil
	},
}
