package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pagegen-labs/pagegen/internal/config"
	"github.com/pagegen-labs/pagegen/internal/output"
	"github.com/pagegen-labs/pagegen/internal/plan"
	"github.com/pagegen-labs/pagegen/internal/scaffold"
)

var applyDryRun bool

func init() {
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Print the files that would be written")
	rootCmd.AddCommand(applyCmd)

	planCmd.AddCommand(planValidateCmd)
	rootCmd.AddCommand(planCmd)
}

var applyCmd = &cobra.Command{
	Use:   "apply <plan.yaml>",
	Short: "Generate everything listed in a plan file",
	Long: `Validate a plan file and generate each of its items in order. Relative
folders are resolved against the project root. Every item is rendered before
anything is written, so a plan with a bad item leaves the project untouched.

Example plan:
  version: "1.0"
  defaults:
    folder: src/Pages/Go
  items:
    - kind: page
      files:
        - name: Go_Basics
        - name: Go_Concurrency
          header: Goroutines and channels`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := plan.Load(args[0])
		if err != nil {
			return err
		}

		settings := config.Current()
		root, err := projectRoot(settings)
		if err != nil {
			return err
		}
		reqs, err := p.Requests(plan.Resolve{
			Root:               root,
			Sentinel:           settings.Sentinel,
			SentinelReferences: settings.SentinelReferences(),
		})
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		out := newPrinter(cmd)
		if err := renderAll(out, reqs); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		for _, req := range reqs {
			if err := generate(cmd.Context(), out, req, applyDryRun); err != nil {
				return err
			}
		}
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Work with plan files",
}

var planValidateCmd = &cobra.Command{
	Use:   "validate <plan.yaml>",
	Short: "Check a plan file without generating anything",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		result, err := plan.ValidateFile(path)
		if err != nil {
			return err
		}

		out := newPrinter(cmd)
		if !result.Valid {
			for _, issue := range result.Issues {
				out.Warn("%s", issue)
			}
			return fmt.Errorf("%s: %d issue(s)", path, len(result.Issues))
		}

		p, err := plan.ParseFile(path)
		if err != nil {
			return err
		}
		if err := p.CheckVersion(); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		reqs, err := p.Requests(plan.Resolve{})
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := renderAll(out, reqs); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		out.Heading(fmt.Sprintf("%s is valid (%d item(s))", path, len(p.Items)))
		for _, req := range reqs {
			names := make([]string, len(req.Items))
			for i, item := range req.Items {
				names[i] = item.Name
			}
			out.Printf("  %-4s %s: %s\n", req.Kind, req.Folder, strings.Join(names, ", "))
		}
		return nil
	},
}

// renderAll renders every request without writing anything and reports each
// one that fails.
func renderAll(out *output.Printer, reqs []*scaffold.Request) error {
	renderer := newRenderer()
	failed := 0
	for i, req := range reqs {
		if _, err := scaffold.Render(req, renderer); err != nil {
			out.Error(fmt.Errorf("items[%d]: %w", i, err))
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d item(s) cannot be generated, nothing written", failed)
	}
	return nil
}
