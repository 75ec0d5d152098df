package navigator

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrSentinelNotFound is returned when a path has no segment equal to the
// sentinel folder name, or nothing after it.
var ErrSentinelNotFound = errors.New("sentinel folder not found")

// TrimToSentinel returns the slash-separated part of path after the first
// segment equal to sentinel. The extension is kept:
//
//	/home/u/site/Notes/A/B/file.md → A/B/file.md
func TrimToSentinel(path, sentinel string) (string, error) {
	rest, ok := afterSentinel(path, sentinel)
	if !ok || len(rest) == 0 {
		return "", fmt.Errorf("%w: no %q folder with content after it in %s", ErrSentinelNotFound, sentinel, path)
	}
	return strings.Join(rest, "/"), nil
}

// ReferenceFolder is the sentinel-relative base for default reference paths:
// the part after the sentinel when folder is inside one, else folder
// relative to root when folder is inside root, else folder unchanged.
func ReferenceFolder(folder, sentinel, root string) string {
	if rest, ok := afterSentinel(folder, sentinel); ok {
		return strings.Join(rest, "/")
	}
	if root != "" {
		absRoot, err1 := filepath.Abs(root)
		absFolder, err2 := filepath.Abs(folder)
		if err1 == nil && err2 == nil {
			if rel, err := filepath.Rel(absRoot, absFolder); err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
				if rel == "." {
					return ""
				}
				return filepath.ToSlash(rel)
			}
		}
	}
	return filepath.ToSlash(folder)
}

// EnsureMarkdownExt appends ".md" when name has no extension.
func EnsureMarkdownExt(name string) string {
	if filepath.Ext(name) == "" {
		return name + ".md"
	}
	return name
}

func afterSentinel(path, sentinel string) ([]string, bool) {
	if sentinel == "" {
		return nil, false
	}
	segs := strings.Split(strings.ReplaceAll(path, `\`, "/"), "/")
	for i, s := range segs {
		if s != sentinel {
			continue
		}
		var rest []string
		for _, r := range segs[i+1:] {
			if r != "" {
				rest = append(rest, r)
			}
		}
		return rest, true
	}
	return nil, false
}
