package templates

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Kind names a fixed template.
type Kind string

// Recognized kinds.
const (
	KindPage Kind = "page"
	KindNav  Kind = "nav"
	KindStub Kind = "stub"
)

// DefaultStubExtension is used when a stub request names no extension.
const DefaultStubExtension = "md"

// ErrUnknownKind is matched by every UnknownKindError.
var ErrUnknownKind = errors.New("unknown template kind")

// UnknownKindError reports a kind that no template handles.
type UnknownKindError struct {
	Kind       string
	Suggestion Kind // empty when nothing is close
}

func (e *UnknownKindError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown template kind %q (did you mean %q?)", e.Kind, e.Suggestion)
	}
	return fmt.Sprintf("unknown template kind %q (known kinds: %s)", e.Kind, kindList())
}

func (e *UnknownKindError) Unwrap() error { return ErrUnknownKind }

var kinds = []Kind{KindPage, KindNav, KindStub}

// aliases maps the names the old per-kind scripts used onto kinds.
var aliases = map[string]Kind{
	"tsx":        KindPage,
	"ts":         KindNav,
	"navigation": KindNav,
	"index":      KindNav,
	"generic":    KindStub,
	"other":      KindStub,
}

// maxSuggestDistance bounds how far a typo may be from a kind to be suggested.
const maxSuggestDistance = 2

// Kinds returns the recognized kinds in menu order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind resolves a user-supplied kind name, accepting aliases and case
// differences. Unknown names return an *UnknownKindError.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range kinds {
		if string(k) == name {
			return k, nil
		}
	}
	if k, ok := aliases[name]; ok {
		return k, nil
	}
	return "", &UnknownKindError{Kind: s, Suggestion: suggest(name)}
}

// Describe returns a one-line description for menus and `pagegen kinds`.
func (k Kind) Describe() string {
	switch k {
	case KindPage:
		return "page component rendering a markdown note"
	case KindNav:
		return "navigation manifest listing subpages under a topic"
	case KindStub:
		return "generic stub file"
	default:
		return ""
	}
}

// Extension returns the file extension implied by the kind. Stubs take the
// requested extension, falling back to DefaultStubExtension.
func (k Kind) Extension(stubExt string) string {
	switch k {
	case KindPage:
		return "tsx"
	case KindNav:
		return "ts"
	case KindStub:
		ext := strings.TrimPrefix(strings.TrimSpace(stubExt), ".")
		if ext == "" {
			return DefaultStubExtension
		}
		return ext
	default:
		return ""
	}
}

func suggest(name string) Kind {
	candidates := make([]string, 0, len(kinds)+len(aliases))
	for _, k := range kinds {
		candidates = append(candidates, string(k))
	}
	aliasNames := make([]string, 0, len(aliases))
	for a := range aliases {
		aliasNames = append(aliasNames, a)
	}
	sort.Strings(aliasNames)
	candidates = append(candidates, aliasNames...)

	best := Kind("")
	bestDist := maxSuggestDistance + 1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(name, c)
		if d >= bestDist {
			continue
		}
		best, bestDist = Kind(c), d
		if alias, ok := aliases[c]; ok {
			best = alias
		}
	}
	return best
}

func kindList() string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
