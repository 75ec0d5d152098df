// Package syntax parses generated source with tree-sitter and reports
// parse errors. Generated files are still written when the check fails; the
// findings surface as warnings so a bad component name or header is noticed
// before the consuming build trips on it.
package syntax

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// maxIssues caps how many problems one file reports.
const maxIssues = 10

// Issue is one parse problem, 1-based.
type Issue struct {
	Line    int
	Column  int
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%d:%d: %s", i.Line, i.Column, i.Message)
}

// Supported reports whether files with ext can be checked.
func Supported(ext string) bool {
	return language(ext) != nil
}

func language(ext string) *sitter.Language {
	switch strings.TrimPrefix(strings.ToLower(ext), ".") {
	case "tsx":
		return tsx.GetLanguage()
	case "ts":
		return typescript.GetLanguage()
	case "js", "jsx", "mjs":
		return javascript.GetLanguage()
	default:
		return nil
	}
}

// Check parses src as the language implied by ext. Unsupported extensions
// return no issues.
func Check(ctx context.Context, ext string, src []byte) ([]Issue, error) {
	lang := language(ext)
	if lang == nil {
		return nil, nil
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s source: %w", ext, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return nil, nil
	}

	var issues []Issue
	collect(root, src, &issues)
	if len(issues) == 0 {
		// HasError without a located node; report the whole file.
		issues = append(issues, Issue{Line: 1, Column: 1, Message: "syntax error"})
	}
	return issues, nil
}

// collect walks the tree and records ERROR and MISSING nodes. It does not
// descend into an ERROR node, so one bad region yields one issue.
func collect(n *sitter.Node, src []byte, issues *[]Issue) {
	if n == nil || len(*issues) >= maxIssues {
		return
	}

	pos := n.StartPoint()
	switch {
	case n.IsMissing():
		*issues = append(*issues, Issue{
			Line:    int(pos.Row) + 1,
			Column:  int(pos.Column) + 1,
			Message: fmt.Sprintf("missing %s", n.Type()),
		})
		return
	case n.Type() == "ERROR":
		*issues = append(*issues, Issue{
			Line:    int(pos.Row) + 1,
			Column:  int(pos.Column) + 1,
			Message: fmt.Sprintf("unexpected %q", snippet(n.Content(src))),
		})
		return
	}

	if !n.HasError() {
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		collect(n.Child(i), src, issues)
	}
}

func snippet(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}
