package navigator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// State is the navigator cursor: an absolute directory that exists.
type State struct {
	dir string
}

// Open returns a State at start, which must be an existing directory.
func Open(start string) (State, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return State{}, fmt.Errorf("resolving %s: %w", start, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return State{}, fmt.Errorf("opening start folder: %w", err)
	}
	if !info.IsDir() {
		return State{}, fmt.Errorf("start path %s is not a directory", abs)
	}
	return State{dir: abs}, nil
}

// Dir returns the current absolute directory.
func (s State) Dir() string { return s.dir }

// AtRoot reports whether the cursor is at a filesystem root.
func (s State) AtRoot() bool {
	return filepath.Dir(s.dir) == s.dir
}

// Up moves to the parent directory. At a filesystem root it is a no-op.
func (s State) Up() State {
	if s.AtRoot() {
		return s
	}
	return State{dir: filepath.Dir(s.dir)}
}

// Descend moves into an existing child directory.
func (s State) Descend(name string) (State, error) {
	next := filepath.Join(s.dir, name)
	info, err := os.Stat(next)
	if err != nil {
		return s, fmt.Errorf("entering %s: %w", name, err)
	}
	if !info.IsDir() {
		return s, fmt.Errorf("entering %s: not a directory", name)
	}
	return State{dir: next}, nil
}

// Create makes name under the current directory (parents included) and
// moves into it.
func (s State) Create(name string) (State, error) {
	if strings.TrimSpace(name) == "" {
		return s, errors.New("folder name must not be blank")
	}
	next := filepath.Join(s.dir, name)
	if err := os.MkdirAll(next, 0755); err != nil {
		return s, fmt.Errorf("creating folder %s: %w", next, err)
	}
	return State{dir: next}, nil
}

// CreateMany makes each non-blank name under the current directory without
// moving. It returns the names it created.
func (s State) CreateMany(names []string) ([]string, error) {
	var created []string
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		dir := filepath.Join(s.dir, name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return created, fmt.Errorf("creating folder %s: %w", dir, err)
		}
		created = append(created, name)
	}
	return created, nil
}

// EnterNested makes the relative path rel (any depth) and moves into it.
func (s State) EnterNested(rel string) (State, error) {
	rel = strings.TrimSpace(rel)
	if rel == "" {
		return s, errors.New("nested path must not be blank")
	}
	return s.Create(filepath.FromSlash(strings.ReplaceAll(rel, `\`, "/")))
}

// ListSubdirs returns the visible subdirectories of dir sorted
// lexicographically. Hidden entries and files are excluded; symlinks are
// followed.
func ListSubdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if isDir(dir, e) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ListStems returns the base names (extension removed) of the visible files
// in dir with the given extension, sorted.
func ListStems(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	suffix := "." + strings.TrimPrefix(ext, ".")
	var stems []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") || isDir(dir, e) {
			continue
		}
		if strings.HasSuffix(name, suffix) && len(name) > len(suffix) {
			stems = append(stems, strings.TrimSuffix(name, suffix))
		}
	}
	sort.Strings(stems)
	return stems, nil
}

func isDir(parent string, e fs.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(parent, e.Name()))
	return err == nil && info.IsDir()
}
