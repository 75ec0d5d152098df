package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pagegen-labs/pagegen/internal/config"
	"github.com/pagegen-labs/pagegen/internal/navigator"
	"github.com/pagegen-labs/pagegen/internal/scaffold"
	"github.com/pagegen-labs/pagegen/internal/templates"
)

// Flags shared by page, nav and stub.
var (
	createDir    string
	createHeader string
	createDryRun bool
)

func init() {
	for _, c := range []*cobra.Command{pageCmd, navCmd, stubCmd} {
		c.Flags().StringVar(&createDir, "dir", "", "Destination folder (default: pick interactively)")
		c.Flags().BoolVar(&createDryRun, "dry-run", false, "Print the files that would be written")
		rootCmd.AddCommand(c)
	}
	pageCmd.Flags().StringVar(&createHeader, "header", "", "Header text (single name only)")
	stubCmd.Flags().StringVar(&createHeader, "header", "", "Header text (single name only)")
}

// ─── page ──────────────────────────────────────────────────────────

var pageRef string

var pageCmd = &cobra.Command{
	Use:   "page <name>...",
	Short: "Generate page components",
	Long: `Generate one .tsx page component per name. The header defaults to the name
with underscores replaced by spaces, the markdown path to the folder after the
sentinel plus <name>.md.

Examples:
  pagegen page Go_Basics --dir src/Pages/Go
  pagegen page Intro Setup Testing --dir Notes/Guides`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := fileRequest(cmd, templates.KindPage, args)
		if err != nil {
			return err
		}
		if pageRef != "" {
			req.Items[0].ReferenceOverride = pageRef
		}
		return generate(cmd.Context(), newPrinter(cmd), req, createDryRun)
	},
}

func init() {
	pageCmd.Flags().StringVar(&pageRef, "ref", "", "Markdown reference path (single name only)")
}

// ─── nav ───────────────────────────────────────────────────────────

var (
	navSubpagesDir string
	navSubpages    string
)

var navCmd = &cobra.Command{
	Use:   "nav <topic>",
	Short: "Generate a navigation manifest",
	Long: `Generate <topic>.ts importing each subpage and listing them under <topic>Nav.
Subpages default to every .ts file in --subpages-dir, in name order.

Example:
  pagegen nav Go --subpages-dir src/Pages/Go --dir src/Navs`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := args[0]
		if err := scaffold.ValidateName(topic); err != nil {
			return err
		}

		settings := config.Current()
		root, err := projectRoot(settings)
		if err != nil {
			return err
		}
		subDir := resolveUnder(root, navSubpagesDir)
		if subDir == "" {
			subDir = root
		}

		subpages := splitList(navSubpages)
		if len(subpages) == 0 {
			if subpages, err = navigator.ListStems(subDir, "ts"); err != nil {
				return err
			}
			if len(subpages) == 0 {
				return fmt.Errorf("no .ts files found in %s", subDir)
			}
		}

		folder, err := destination(cmd, settings, root)
		if err != nil {
			return err
		}

		req := &scaffold.Request{
			Kind:       templates.KindNav,
			Folder:     folder,
			Items:      []scaffold.Item{{Name: topic}},
			Subpages:   subpages,
			ImportPath: importPathFor(subDir, settings, root),
		}
		return generate(cmd.Context(), newPrinter(cmd), req, createDryRun)
	},
}

func init() {
	navCmd.Flags().StringVar(&navSubpagesDir, "subpages-dir", "", "Folder holding the subpage .ts files (default: project root)")
	navCmd.Flags().StringVar(&navSubpages, "subpages", "", "Comma separated subpages, in order")
}

// ─── stub ──────────────────────────────────────────────────────────

var stubExt string

var stubCmd = &cobra.Command{
	Use:   "stub <name>...",
	Short: "Generate stub files",
	Long: `Generate a minimal file per name: "# <header>" for markdown, a "// <header>"
comment for anything else.

Example:
  pagegen stub Go_Basics --dir Notes/Go
  pagegen stub helpers --ext ts --dir src/lib`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := fileRequest(cmd, templates.KindStub, args)
		if err != nil {
			return err
		}
		req.Extension = stubExt
		return generate(cmd.Context(), newPrinter(cmd), req, createDryRun)
	},
}

func init() {
	stubCmd.Flags().StringVar(&stubExt, "ext", templates.DefaultStubExtension, "File extension")
}

// fileRequest builds a page or stub request from names and shared flags.
func fileRequest(cmd *cobra.Command, kind templates.Kind, names []string) (*scaffold.Request, error) {
	single := createHeader != "" || (kind == templates.KindPage && pageRef != "")
	if single && len(names) > 1 {
		return nil, errors.New("--header and --ref apply to a single name")
	}

	settings := config.Current()
	root, err := projectRoot(settings)
	if err != nil {
		return nil, err
	}
	folder, err := destination(cmd, settings, root)
	if err != nil {
		return nil, err
	}

	items := make([]scaffold.Item, len(names))
	for i, name := range names {
		items[i] = scaffold.Item{Name: name}
	}
	items[0].HeaderOverride = createHeader

	return &scaffold.Request{
		Kind:            kind,
		Folder:          folder,
		Items:           items,
		ReferenceFolder: referenceFolder(settings, root, folder),
	}, nil
}

// destination returns --dir resolved against the project root, or runs the
// navigator from the project root when stdin is a terminal.
func destination(cmd *cobra.Command, settings config.Settings, root string) (string, error) {
	if createDir != "" {
		if filepath.IsAbs(createDir) {
			return filepath.Clean(createDir), nil
		}
		return filepath.Join(root, createDir), nil
	}
	if !isInteractive(cmd) {
		return "", errors.New("--dir is required when not running in a terminal")
	}
	return navigator.New(newPrompter(cmd)).Select(cmd.Context(), root)
}
