package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pagegen-labs/pagegen/internal/config"
	"github.com/pagegen-labs/pagegen/internal/navigator"
	"github.com/pagegen-labs/pagegen/internal/output"
	"github.com/pagegen-labs/pagegen/internal/scaffold"
)

// generate writes req and reports each file. Syntax findings are warnings.
func generate(ctx context.Context, out *output.Printer, req *scaffold.Request, dryRun bool) error {
	result, err := scaffold.Generate(ctx, req, scaffold.Options{
		Renderer: newRenderer(),
		DryRun:   dryRun,
	})
	if result != nil {
		for _, f := range result.Files {
			if dryRun {
				out.WouldCreate(string(req.Kind), f)
			} else {
				out.Created(string(req.Kind), f)
			}
		}
		for _, w := range result.Warnings {
			out.Warn("%s", w)
		}
	}
	if err != nil {
		return fmt.Errorf("generating %s: %w", req.Kind, err)
	}
	return nil
}

// projectRoot returns the configured project root as an absolute path.
func projectRoot(s config.Settings) (string, error) {
	root := s.ProjectRoot
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving project root %s: %w", root, err)
	}
	return abs, nil
}

// referenceFolder returns the folder default reference paths derive from.
func referenceFolder(s config.Settings, root, folder string) string {
	if !s.SentinelReferences() {
		return folder
	}
	return navigator.ReferenceFolder(folder, s.Sentinel, root)
}

// resolveUnder joins a relative p onto root.
func resolveUnder(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// stagingDir returns the absolute staging folder, creating it when missing.
func stagingDir(s config.Settings, root string) (string, error) {
	dir := resolveUnder(root, s.StagingDir)
	if dir == "" {
		dir = root
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating staging folder: %w", err)
	}
	return dir, nil
}

// importPathFor returns the nav import path for a folder of subpages:
// relative to import_root when inside it, else relative to the project
// root when inside it, else the absolute folder.
func importPathFor(dir string, s config.Settings, root string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	for _, base := range []string{resolveUnder(root, s.ImportRoot), root} {
		if base == "" {
			continue
		}
		if rel, ok := within(base, abs); ok {
			return rel
		}
	}
	return filepath.ToSlash(abs)
}

func within(base, target string) (string, bool) {
	rel, err := filepath.Rel(base, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	if rel == "." {
		return "", true
	}
	return filepath.ToSlash(rel), true
}

// splitList splits a comma separated flag value, dropping blanks.
func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
