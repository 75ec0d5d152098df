package templates

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPage(t *testing.T) {
	out, err := Render(KindPage, Params{
		Name:   "Go_Basics",
		Folder: "/Notes/Go/",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "const Go_Basics = () => {")
	assert.Contains(t, out, `const markdownFilePath = "Notes/Go/Go_Basics.md";`)
	assert.Contains(t, out, `<Header text="Go Basics" />`)
	assert.True(t, strings.HasSuffix(out, "export default Go_Basics;\n"))
}

func TestRenderPageOverrides(t *testing.T) {
	out, err := Render(KindPage, Params{
		Name:              "Intro",
		Folder:            "ignored",
		HeaderOverride:    "Getting Started",
		ReferenceOverride: `\\Guides\Intro.md`,
	})
	require.NoError(t, err)

	assert.Contains(t, out, `const markdownFilePath = "Guides/Intro.md";`)
	assert.Contains(t, out, `<Header text="Getting Started" />`)
	assert.NotContains(t, out, "ignored")
}

func TestRenderNav(t *testing.T) {
	out, err := Render(KindNav, Params{
		Name:       "Go",
		Subpages:   []string{"Basics", "Concurrency"},
		ImportPath: `Pages\Go\`,
	})
	require.NoError(t, err)

	want := "import { Subpage } from '@/Navigation/CombinedNav/CombinedNavAndTypes/NavigationTypes';\n" +
		"\n" +
		"import Basics from '@/Pages/Go/Basics';\n" +
		"import Concurrency from '@/Pages/Go/Concurrency';\n" +
		"\n" +
		"const GoNav: Subpage = {\n" +
		"  name: 'Go',\n" +
		"  subpages: [\n" +
		"    Basics,\n" +
		"    Concurrency\n" +
		"  ]\n" +
		"};\n" +
		"\n" +
		"export default GoNav;\n"
	assert.Equal(t, want, out)
}

func TestRenderNavPreservesOrder(t *testing.T) {
	out, err := Render(KindNav, Params{
		Name:     "Go",
		Subpages: []string{"Concurrency", "Basics"},
	})
	require.NoError(t, err)

	first := strings.Index(out, "import Concurrency from '@/Concurrency';")
	second := strings.Index(out, "import Basics from '@/Basics';")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
	assert.Contains(t, out, "    Concurrency,\n    Basics\n")
}

func TestRenderNavRequiresSubpages(t *testing.T) {
	_, err := Render(KindNav, Params{Name: "Go"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one subpage")
}

func TestRenderStub(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		want string
	}{
		{"markdown default", Params{Name: "Go_Intro"}, "# Go Intro\n"},
		{"explicit md", Params{Name: "x", Extension: ".md"}, "# x\n"},
		{"code file", Params{Name: "helpers", Extension: "ts"}, "// helpers\n"},
		{"header override", Params{Name: "a", HeaderOverride: "Alpha"}, "# Alpha\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render(KindStub, tt.p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	p := Params{Name: "Page_One", Folder: "Notes/A"}
	a, err := Render(KindPage, p)
	require.NoError(t, err)
	b, err := Render(KindPage, p)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRenderUnknownKind(t *testing.T) {
	out, err := Render(Kind("pgae"), Params{Name: "x"})
	require.Error(t, err)
	assert.Empty(t, out)
	assert.True(t, errors.Is(err, ErrUnknownKind))

	var uk *UnknownKindError
	require.True(t, errors.As(err, &uk))
	assert.Equal(t, KindPage, uk.Suggestion)
	assert.Contains(t, err.Error(), `did you mean "page"`)
}

func TestRenderRequiresName(t *testing.T) {
	_, err := Render(KindPage, Params{Name: "  "})
	require.Error(t, err)
}

func TestRendererOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page.tmpl"),
		[]byte("{{.ComponentName}}|{{.HeaderText}}|{{.MarkdownPath}}\n"), 0644))

	r := NewRenderer(dir)
	out, err := r.Render(KindPage, Params{Name: "A_B", Folder: "Notes"})
	require.NoError(t, err)
	assert.Equal(t, "A_B|A B|Notes/A_B.md\n", out)

	// Kinds without an override fall back to the built-ins.
	out, err = r.Render(KindStub, Params{Name: "n"})
	require.NoError(t, err)
	assert.Equal(t, "# n\n", out)
}

func TestRendererOverrideParseError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stub.tmpl"), []byte("{{.Header"), 0644))

	_, err := NewRenderer(dir).Render(KindStub, Params{Name: "n"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing template stub.tmpl")
}
