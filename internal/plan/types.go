package plan

import "github.com/pagegen-labs/pagegen/internal/scaffold"

// SupportedVersions is the semver constraint a plan's version must satisfy.
const SupportedVersions = ">= 1.0, < 2.0"

// Plan is the top-level structure of a plan file.
type Plan struct {
	Version  string   `yaml:"version"`
	Defaults Defaults `yaml:"defaults,omitempty"`
	Items    []Entry  `yaml:"items"`
}

// Defaults apply to every entry that leaves the field empty.
type Defaults struct {
	Folder   string `yaml:"folder,omitempty"`
	Sentinel string `yaml:"sentinel,omitempty"`
}

// Entry is one generation request: a kind, a destination folder and the
// files to render there.
type Entry struct {
	Kind   string          `yaml:"kind"`
	Folder string          `yaml:"folder,omitempty"`
	Files  []scaffold.Item `yaml:"files"`

	// Nav only.
	Subpages   []string `yaml:"subpages,omitempty"`
	ImportPath string   `yaml:"import_path,omitempty"`

	// Stub only.
	Extension string `yaml:"ext,omitempty"`
}
