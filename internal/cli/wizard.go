package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pagegen-labs/pagegen/internal/config"
	"github.com/pagegen-labs/pagegen/internal/navigator"
	"github.com/pagegen-labs/pagegen/internal/prompt"
	"github.com/pagegen-labs/pagegen/internal/scaffold"
	"github.com/pagegen-labs/pagegen/internal/templates"
)

func init() {
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Run the interactive wizard",
	Long: `Walk through choosing an output kind, a destination folder and the names to
generate. This is also what runs when no command is given.`,
	Args: cobra.NoArgs,
	RunE: runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	settings := config.Current()
	root, err := projectRoot(settings)
	if err != nil {
		return err
	}

	p := newPrompter(cmd)
	w := &wizard{p: p, nav: navigator.New(p), settings: settings, root: root}

	req, err := w.run(cmd.Context())
	if errors.Is(err, prompt.ErrAborted) || errors.Is(err, context.Canceled) {
		return errors.New("cancelled")
	}
	if err != nil {
		return err
	}
	return generate(cmd.Context(), newPrinter(cmd), req, false)
}

// Destination menu entries.
const (
	destProject = "Project folder"
	destStaging = "Staging folder"
)

// Reference override menu entries.
const (
	refTyped  = "Type the path"
	refBrowse = "Browse for the markdown file"
)

type wizard struct {
	p        prompt.Prompter
	nav      *navigator.Navigator
	settings config.Settings
	root     string // absolute project root
}

// run asks every question and returns the request to generate.
func (w *wizard) run(ctx context.Context) (*scaffold.Request, error) {
	kind, err := w.chooseKind(ctx)
	if err != nil {
		return nil, err
	}
	start, err := w.chooseDestination(ctx)
	if err != nil {
		return nil, err
	}
	if kind == templates.KindNav {
		return w.navRequest(ctx, start)
	}
	return w.fileRequest(ctx, kind, start)
}

func (w *wizard) chooseKind(ctx context.Context) (templates.Kind, error) {
	kinds := templates.Kinds()
	choices := make([]string, len(kinds))
	for i, k := range kinds {
		choices[i] = fmt.Sprintf("%s: %s", k, k.Describe())
	}
	idx, err := w.p.Select(ctx, "What do you want to generate?", choices)
	if err != nil {
		return "", err
	}
	return kinds[idx], nil
}

// chooseDestination returns the folder the navigator starts in.
func (w *wizard) chooseDestination(ctx context.Context) (string, error) {
	staging := resolveUnder(w.root, w.settings.StagingDir)
	choices := []string{
		fmt.Sprintf("%s (%s)", destProject, w.root),
		fmt.Sprintf("%s (%s)", destStaging, staging),
	}
	idx, err := w.p.Select(ctx, "Where should the files go?", choices)
	if err != nil {
		return "", err
	}
	if idx == 0 {
		return w.root, nil
	}
	return stagingDir(w.settings, w.root)
}

func (w *wizard) fileRequest(ctx context.Context, kind templates.Kind, start string) (*scaffold.Request, error) {
	var ext string
	if kind == templates.KindStub {
		var err error
		ext, err = w.p.Input(ctx, "File extension", templates.DefaultStubExtension)
		if err != nil {
			return nil, err
		}
	}

	multi, err := w.p.Confirm(ctx, "Generate multiple files?", false)
	if err != nil {
		return nil, err
	}

	label := "File name"
	if kind == templates.KindPage {
		label = "Component name"
	}
	var names []string
	if multi {
		names, err = w.askNames(ctx, label)
	} else {
		var name string
		name, err = w.askName(ctx, label)
		names = []string{name}
	}
	if err != nil {
		return nil, err
	}

	folder, err := w.nav.Select(ctx, start)
	if err != nil {
		return nil, err
	}
	refFolder := referenceFolder(w.settings, w.root, folder)

	items := make([]scaffold.Item, 0, len(names))
	for _, name := range names {
		item := scaffold.Item{Name: name}
		if kind == templates.KindPage {
			if item.ReferenceOverride, err = w.askReference(ctx, name, refFolder); err != nil {
				return nil, err
			}
		}
		if item.HeaderOverride, err = w.askHeader(ctx, name); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return &scaffold.Request{
		Kind:            kind,
		Folder:          folder,
		Items:           items,
		ReferenceFolder: refFolder,
		Extension:       ext,
	}, nil
}

func (w *wizard) navRequest(ctx context.Context, start string) (*scaffold.Request, error) {
	topic, err := w.askName(ctx, "Topic name (e.g. HTML, Vue, Go)")
	if err != nil {
		return nil, err
	}

	subDir, err := w.p.Input(ctx, "Folder with subpage .ts files", w.root)
	if err != nil {
		return nil, err
	}
	subDir = resolveUnder(w.root, strings.TrimSpace(subDir))
	stems, err := navigator.ListStems(subDir, "ts")
	if err != nil {
		return nil, err
	}
	if len(stems) == 0 {
		return nil, fmt.Errorf("no .ts files found in %s", subDir)
	}

	picked, err := w.p.MultiSelect(ctx, "Select subpages to include", stems)
	if err != nil {
		return nil, err
	}
	if len(picked) == 0 {
		return nil, errors.New("no subpages selected")
	}
	subpages := make([]string, len(picked))
	for i, idx := range picked {
		subpages[i] = stems[idx]
	}

	folder, err := w.nav.Select(ctx, start)
	if err != nil {
		return nil, err
	}

	return &scaffold.Request{
		Kind:       templates.KindNav,
		Folder:     folder,
		Items:      []scaffold.Item{{Name: topic}},
		Subpages:   subpages,
		ImportPath: importPathFor(subDir, w.settings, w.root),
	}, nil
}

// askName asks until a usable file name is given.
func (w *wizard) askName(ctx context.Context, label string) (string, error) {
	for {
		name, err := w.p.Input(ctx, label, "")
		if err != nil {
			return "", err
		}
		name = strings.TrimSpace(name)
		if err := scaffold.ValidateName(name); err != nil {
			w.p.Notify(err.Error())
			continue
		}
		return name, nil
	}
}

// askNames collects names until a blank answer. At least one is required.
func (w *wizard) askNames(ctx context.Context, label string) ([]string, error) {
	var names []string
	seen := map[string]bool{}
	for {
		name, err := w.p.Input(ctx, label+" (leave blank to finish)", "")
		if err != nil {
			return nil, err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			if len(names) == 0 {
				w.p.Notify("enter at least one name")
				continue
			}
			return names, nil
		}
		if err := scaffold.ValidateName(name); err != nil {
			w.p.Notify(err.Error())
			continue
		}
		if seen[name] {
			w.p.Notify(fmt.Sprintf("%q was already entered", name))
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
}

func (w *wizard) askHeader(ctx context.Context, name string) (string, error) {
	ok, err := w.p.Confirm(ctx, fmt.Sprintf("Override header text for %s?", name), false)
	if err != nil || !ok {
		return "", err
	}
	return w.p.Input(ctx, "Header text", templates.DeriveHeader(name))
}

func (w *wizard) askReference(ctx context.Context, name, refFolder string) (string, error) {
	ok, err := w.p.Confirm(ctx, fmt.Sprintf("Override markdown path for %s?", name), false)
	if err != nil || !ok {
		return "", err
	}

	idx, err := w.p.Select(ctx, "Markdown path", []string{refTyped, refBrowse})
	if err != nil {
		return "", err
	}
	if idx == 0 {
		return w.p.Input(ctx, "Markdown path", templates.DeriveReferencePath(refFolder, name))
	}
	return w.nav.SelectReference(ctx, w.referenceStart(), w.settings.Sentinel)
}

// referenceStart is where markdown browsing begins: the sentinel folder
// under the project root when it exists, else the root.
func (w *wizard) referenceStart() string {
	dir := filepath.Join(w.root, w.settings.Sentinel)
	if _, err := navigator.Open(dir); err == nil {
		return dir
	}
	return w.root
}
