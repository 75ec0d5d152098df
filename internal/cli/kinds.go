package cli

import (
	"github.com/spf13/cobra"

	"github.com/pagegen-labs/pagegen/internal/templates"
)

func init() {
	rootCmd.AddCommand(kindsCmd)
}

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the output kinds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := newPrinter(cmd)
		for _, k := range templates.Kinds() {
			out.Printf("%-5s .%-4s %s\n", k, k.Extension(""), k.Describe())
		}
		return nil
	},
}
