package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pagegen-labs/pagegen/internal/platform"
	"github.com/pagegen-labs/pagegen/internal/syntax"
	"github.com/pagegen-labs/pagegen/internal/templates"
)

// Item is one file to generate. Empty overrides fall back to the values
// derived from the name and folder.
type Item struct {
	Name              string `yaml:"name"`
	HeaderOverride    string `yaml:"header,omitempty"`
	ReferenceOverride string `yaml:"ref,omitempty"`
}

// Request describes one generation run into a single destination folder.
type Request struct {
	Kind   templates.Kind
	Folder string // destination directory, created on demand
	Items  []Item

	// ReferenceFolder is the folder default reference paths are derived
	// from. Empty means Folder.
	ReferenceFolder string

	// Nav only.
	Subpages   []string
	ImportPath string

	// Stub only.
	Extension string
}

// Options tune Generate.
type Options struct {
	Renderer        *templates.Renderer // nil uses the built-in templates
	DryRun          bool
	SkipSyntaxCheck bool
}

// Result holds the outcome of a generation.
type Result struct {
	OutputDir string
	Files     []string // full paths, in item order
	Warnings  []string
}

// File is one rendered item before it is written.
type File struct {
	Path    string
	Content string
}

// Render renders every item of req without touching the filesystem.
func Render(req *Request, renderer *templates.Renderer) ([]File, error) {
	kind, err := templates.ParseKind(string(req.Kind))
	if err != nil {
		return nil, err
	}
	if len(req.Items) == 0 {
		return nil, errors.New("nothing to generate: no names given")
	}
	if renderer == nil {
		renderer = templates.NewRenderer("")
	}

	refFolder := req.ReferenceFolder
	if refFolder == "" {
		refFolder = req.Folder
	}
	ext := kind.Extension(req.Extension)

	files := make([]File, 0, len(req.Items))
	seen := make(map[string]bool, len(req.Items))
	for _, item := range req.Items {
		if err := ValidateName(item.Name); err != nil {
			return nil, err
		}

		content, err := renderer.Render(kind, templates.Params{
			Name:              item.Name,
			Folder:            refFolder,
			HeaderOverride:    item.HeaderOverride,
			ReferenceOverride: item.ReferenceOverride,
			Subpages:          req.Subpages,
			ImportPath:        req.ImportPath,
			Extension:         req.Extension,
		})
		if err != nil {
			return nil, fmt.Errorf("rendering %s %q: %w", kind, item.Name, err)
		}

		path := filepath.Join(req.Folder, item.Name+"."+ext)
		if seen[path] {
			return nil, fmt.Errorf("duplicate name %q in one request", item.Name)
		}
		seen[path] = true

		files = append(files, File{Path: path, Content: content})
	}
	return files, nil
}

// Generate renders all items first, then creates the destination folder and
// writes each file. Nothing is written if any item fails to render. Existing
// files are replaced.
func Generate(ctx context.Context, req *Request, opts Options) (*Result, error) {
	files, err := Render(req, opts.Renderer)
	if err != nil {
		return nil, err
	}

	result := &Result{OutputDir: req.Folder}

	if !opts.DryRun {
		if err := os.MkdirAll(req.Folder, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	for _, f := range files {
		if !opts.DryRun {
			if err := platform.WriteFileAtomic(f.Path, []byte(f.Content), 0644); err != nil {
				return result, fmt.Errorf("writing %s: %w", f.Path, err)
			}
		}
		result.Files = append(result.Files, f.Path)

		ext := strings.TrimPrefix(filepath.Ext(f.Path), ".")
		if opts.SkipSyntaxCheck || !syntax.Supported(ext) {
			continue
		}
		issues, err := syntax.Check(ctx, ext, []byte(f.Content))
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Could not check %s: %v", filepath.Base(f.Path), err))
			continue
		}
		for _, issue := range issues {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s:%s", filepath.Base(f.Path), issue))
		}
	}

	return result, nil
}

// ValidateName rejects names that cannot be used as a file name in the
// destination folder.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errors.New("name must not be blank")
	case name != strings.TrimSpace(name):
		return fmt.Errorf("invalid name %q: leading or trailing whitespace", name)
	case name == "." || name == "..":
		return fmt.Errorf("invalid name %q", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("invalid name %q: must not contain path separators", name)
	}
	return nil
}
