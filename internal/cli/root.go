package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/pagegen-labs/pagegen/internal/branding"
	"github.com/pagegen-labs/pagegen/internal/config"
	"github.com/pagegen-labs/pagegen/internal/output"
	"github.com/pagegen-labs/pagegen/internal/prompt"
	"github.com/pagegen-labs/pagegen/internal/templates"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	plainFlag   bool
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds page components, navigation manifests and stub files
into a project. Run without arguments for the interactive wizard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	Args: cobra.NoArgs,
	RunE: runWizard,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "Use numbered line prompts instead of the full-screen UI")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return fang.Execute(ctx, rootCmd, fang.WithVersion(version))
}

// newPrompter picks the prompter for cmd's streams. Prompts go to stderr so
// stdout carries only results.
func newPrompter(cmd *cobra.Command) prompt.Prompter {
	mode := config.Current().UI
	if plainFlag {
		mode = prompt.ModePlain
	}
	return prompt.ForTerminal(mode, cmd.InOrStdin(), cmd.ErrOrStderr())
}

func newPrinter(cmd *cobra.Command) *output.Printer {
	color := !noColorFlag && output.IsTTY(cmd.OutOrStdout())
	return output.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), color)
}

func newRenderer() *templates.Renderer {
	return templates.NewRenderer(config.Current().TemplatesDir)
}

// isInteractive reports whether cmd can ask questions. Replaced in tests.
var isInteractive = func(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && output.IsTTY(f)
}
