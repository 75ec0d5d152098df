package navigator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pagegen-labs/pagegen/internal/prompt"
)

// Menu entries shown above the subdirectory list.
const (
	ActionUp           = "[Up one folder]"
	ActionCreate       = "[Create new folder]"
	ActionCreateMany   = "[Create multiple folders]"
	ActionNested       = "[Enter full nested path]"
	ActionMarkdownFile = "[Enter markdown file]"
)

var folderActions = []string{ActionUp, ActionCreate, ActionCreateMany, ActionNested}

// Navigator drives the folder menu through a Prompter.
type Navigator struct {
	p prompt.Prompter
}

// New returns a Navigator asking questions through p.
func New(p prompt.Prompter) *Navigator {
	return &Navigator{p: p}
}

// Select lets the user browse from start and returns the confirmed folder.
func (n *Navigator) Select(ctx context.Context, start string) (string, error) {
	return n.loop(ctx, start, "")
}

// SelectReference is Select with an extra "enter markdown file" action that
// ends the loop with the file's path relative to the sentinel folder. Folder
// moves are not confirmed; only a markdown file ends this loop.
func (n *Navigator) SelectReference(ctx context.Context, start, sentinel string) (string, error) {
	if sentinel == "" {
		return "", errors.New("sentinel folder name must not be empty")
	}
	return n.loop(ctx, start, sentinel)
}

func (n *Navigator) loop(ctx context.Context, start, sentinel string) (string, error) {
	st, err := Open(start)
	if err != nil {
		return "", err
	}

	referenceMode := sentinel != ""
	actions := folderActions
	if referenceMode {
		actions = append(append([]string{}, folderActions...), ActionMarkdownFile)
	}

	for {
		subdirs, err := ListSubdirs(st.Dir())
		if err != nil {
			return "", err
		}

		choices := make([]string, 0, len(actions)+len(subdirs))
		choices = append(choices, actions...)
		choices = append(choices, subdirs...)

		idx, err := n.p.Select(ctx, "Current folder: "+st.Dir(), choices)
		if err != nil {
			return "", err
		}

		if idx >= len(actions) {
			if st, err = st.Descend(subdirs[idx-len(actions)]); err != nil {
				return "", err
			}
		} else {
			var (
				moved bool
				ref   string
			)
			st, moved, ref, err = n.apply(ctx, st, actions[idx], sentinel)
			if err != nil {
				return "", err
			}
			if ref != "" {
				return ref, nil
			}
			if !moved {
				continue
			}
		}

		if referenceMode {
			continue
		}

		ok, err := n.p.Confirm(ctx, "Use this folder? "+st.Dir(), true)
		if err != nil {
			return "", err
		}
		if ok {
			return st.Dir(), nil
		}
	}
}

// apply performs a menu action and returns the new state, whether the
// cursor moved (false means just show the menu again), and the reference
// path when the markdown action finished.
func (n *Navigator) apply(ctx context.Context, st State, action, sentinel string) (State, bool, string, error) {
	switch action {
	case ActionUp:
		return st.Up(), true, "", nil

	case ActionCreate:
		name, err := n.p.Input(ctx, "Enter new folder name", "")
		if err != nil {
			return st, false, "", err
		}
		if strings.TrimSpace(name) == "" {
			n.p.Notify("folder name must not be blank")
			return st, false, "", nil
		}
		next, err := st.Create(name)
		if err != nil {
			return st, false, "", err
		}
		return next, true, "", nil

	case ActionCreateMany:
		var names []string
		for {
			name, err := n.p.Input(ctx, "Enter folder name (or leave blank to stop)", "")
			if err != nil {
				return st, false, "", err
			}
			if strings.TrimSpace(name) == "" {
				break
			}
			names = append(names, name)
		}
		if _, err := st.CreateMany(names); err != nil {
			return st, false, "", err
		}
		return st, true, "", nil

	case ActionNested:
		rel, err := n.p.Input(ctx, "Enter full nested path from here", "")
		if err != nil {
			return st, false, "", err
		}
		if strings.TrimSpace(rel) == "" {
			n.p.Notify("nested path must not be blank")
			return st, false, "", nil
		}
		next, err := st.EnterNested(rel)
		if err != nil {
			return st, false, "", err
		}
		return next, true, "", nil

	case ActionMarkdownFile:
		name, err := n.p.Input(ctx, "Enter markdown file name", "")
		if err != nil {
			return st, false, "", err
		}
		if strings.TrimSpace(name) == "" {
			n.p.Notify("file name must not be blank")
			return st, false, "", nil
		}
		full := filepath.Join(st.Dir(), EnsureMarkdownExt(strings.TrimSpace(name)))
		ref, err := TrimToSentinel(full, sentinel)
		if errors.Is(err, ErrSentinelNotFound) {
			n.p.Notify(fmt.Sprintf("%q is not inside a %q folder; navigate into it first", full, sentinel))
			return st, false, "", nil
		}
		if err != nil {
			return st, false, "", err
		}
		return st, false, ref, nil
	}

	return st, false, "", fmt.Errorf("unknown navigator action %q", action)
}
