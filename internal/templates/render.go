package templates

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed builtin/*.tmpl
var builtinFS embed.FS

// Params are the named inputs to a render. Which fields matter depends on
// the kind: Name is the component name for pages and stubs and the topic
// name for nav manifests.
type Params struct {
	Name string

	// Folder is the destination folder; page reference paths derive from it.
	Folder string

	HeaderOverride    string
	ReferenceOverride string

	// Nav only.
	Subpages   []string
	ImportPath string

	// Stub only.
	Extension string
}

type pageData struct {
	ComponentName string
	HeaderText    string
	MarkdownPath  string
}

type navImport struct {
	Name   string
	Source string
}

type navData struct {
	TopicName string
	ConstName string
	Imports   []navImport
	Subpages  []string
}

type stubData struct {
	Header   string
	Markdown bool
}

var funcs = template.FuncMap{
	"join": strings.Join,
}

// Renderer renders kinds from the built-in templates, optionally replaced by
// <kind>.tmpl files in an override directory.
type Renderer struct {
	overrideDir string
}

// NewRenderer returns a Renderer. An empty overrideDir uses only built-ins.
func NewRenderer(overrideDir string) *Renderer {
	return &Renderer{overrideDir: overrideDir}
}

var defaultRenderer = NewRenderer("")

// Render renders kind with the built-in templates.
func Render(kind Kind, p Params) (string, error) {
	return defaultRenderer.Render(kind, p)
}

// Render builds the template data for kind from p and executes the template.
func (r *Renderer) Render(kind Kind, p Params) (string, error) {
	if strings.TrimSpace(p.Name) == "" {
		return "", errors.New("name is required")
	}

	var data any
	switch kind {
	case KindPage:
		data = buildPage(p)
	case KindNav:
		nd, err := buildNav(p)
		if err != nil {
			return "", err
		}
		data = nd
	case KindStub:
		data = buildStub(p)
	default:
		return "", &UnknownKindError{Kind: string(kind), Suggestion: suggest(strings.ToLower(string(kind)))}
	}

	tmpl, err := r.load(kind)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing %s template: %w", kind, err)
	}
	return buf.String(), nil
}

// load returns the parsed template for kind, preferring the override directory.
func (r *Renderer) load(kind Kind) (*template.Template, error) {
	name := string(kind) + ".tmpl"

	var src []byte
	if r.overrideDir != "" {
		data, err := os.ReadFile(filepath.Join(r.overrideDir, name))
		switch {
		case err == nil:
			src = data
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("reading template override %s: %w", name, err)
		}
	}
	if src == nil {
		data, err := builtinFS.ReadFile(path.Join("builtin", name))
		if err != nil {
			return nil, fmt.Errorf("built-in template %s not found: %w", name, err)
		}
		src = data
	}

	tmpl, err := template.New(name).Funcs(funcs).Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	return tmpl, nil
}

func buildPage(p Params) pageData {
	header := p.HeaderOverride
	if header == "" {
		header = DeriveHeader(p.Name)
	}

	ref := NormalizeReferenceOverride(p.ReferenceOverride)
	if ref == "" {
		ref = DeriveReferencePath(p.Folder, p.Name)
	}

	return pageData{
		ComponentName: p.Name,
		HeaderText:    header,
		MarkdownPath:  ref,
	}
}

func buildNav(p Params) (navData, error) {
	if len(p.Subpages) == 0 {
		return navData{}, fmt.Errorf("nav %q needs at least one subpage", p.Name)
	}

	importPath := NormalizeImportPath(p.ImportPath)
	imports := make([]navImport, len(p.Subpages))
	for i, sub := range p.Subpages {
		imports[i] = navImport{
			Name:   sub,
			Source: "@/" + path.Join(importPath, sub),
		}
	}

	return navData{
		TopicName: p.Name,
		ConstName: p.Name + "Nav",
		Imports:   imports,
		Subpages:  p.Subpages,
	}, nil
}

func buildStub(p Params) stubData {
	header := p.HeaderOverride
	if header == "" {
		header = DeriveHeader(p.Name)
	}
	return stubData{
		Header:   header,
		Markdown: KindStub.Extension(p.Extension) == "md",
	}
}
