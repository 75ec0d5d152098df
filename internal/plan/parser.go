package plan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"

	"github.com/pagegen-labs/pagegen/internal/navigator"
	"github.com/pagegen-labs/pagegen/internal/scaffold"
	"github.com/pagegen-labs/pagegen/internal/templates"
)

// Parse decodes plan YAML. It does not validate against the schema.
func Parse(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}
	return &p, nil
}

// ParseFile reads and decodes a plan file.
func ParseFile(path string) (*Plan, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// CheckVersion reports an error when the plan's version is not a valid
// semver or falls outside SupportedVersions.
func (p *Plan) CheckVersion() error {
	v, err := semver.NewVersion(p.Version)
	if err != nil {
		return fmt.Errorf("invalid plan version %q: %w", p.Version, err)
	}
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !c.Check(v) {
		return fmt.Errorf("unsupported plan version %s (supported: %s)", v, SupportedVersions)
	}
	return nil
}

// Resolve holds the settings Requests falls back on.
type Resolve struct {
	Root     string // project root; relative folders are joined onto it
	Sentinel string // used when the plan sets no default sentinel

	// SentinelReferences derives default reference paths from the part of
	// each folder below the sentinel instead of the whole folder.
	SentinelReferences bool
}

// Requests converts the plan into scaffold requests, in entry order.
func (p *Plan) Requests(r Resolve) ([]*scaffold.Request, error) {
	sentinel := p.Defaults.Sentinel
	if sentinel == "" {
		sentinel = r.Sentinel
	}

	reqs := make([]*scaffold.Request, 0, len(p.Items))
	for i, e := range p.Items {
		kind, err := templates.ParseKind(e.Kind)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}

		folder := e.Folder
		if folder == "" {
			folder = p.Defaults.Folder
		}
		if folder == "" {
			return nil, fmt.Errorf("items[%d]: no folder and no default folder", i)
		}
		if !filepath.IsAbs(folder) && r.Root != "" {
			folder = filepath.Join(r.Root, folder)
		}

		refFolder := folder
		if r.SentinelReferences {
			refFolder = navigator.ReferenceFolder(folder, sentinel, r.Root)
		}

		reqs = append(reqs, &scaffold.Request{
			Kind:            kind,
			Folder:          folder,
			Items:           e.Files,
			ReferenceFolder: refFolder,
			Subpages:        e.Subpages,
			ImportPath:      e.ImportPath,
			Extension:       e.Extension,
		})
	}
	return reqs, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
