package syntax

import (
	"context"
	"testing"

	"github.com/pagegen-labs/pagegen/internal/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRenderedPageIsClean(t *testing.T) {
	src, err := templates.Render(templates.KindPage, templates.Params{Name: "Go_Basics", Folder: "Go"})
	require.NoError(t, err)

	issues, err := Check(context.Background(), "tsx", []byte(src))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestCheckRenderedNavIsClean(t *testing.T) {
	src, err := templates.Render(templates.KindNav, templates.Params{
		Name:     "Go",
		Subpages: []string{"Basics", "Concurrency"},
	})
	require.NoError(t, err)

	issues, err := Check(context.Background(), "ts", []byte(src))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestCheckReportsBadComponentName(t *testing.T) {
	src, err := templates.Render(templates.KindPage, templates.Params{Name: "Go-Basics"})
	require.NoError(t, err)

	issues, err := Check(context.Background(), "tsx", []byte(src))
	require.NoError(t, err)
	require.NotEmpty(t, issues)
	assert.GreaterOrEqual(t, issues[0].Line, 1)
	assert.NotEmpty(t, issues[0].String())
}

func TestCheckUnsupportedExtension(t *testing.T) {
	issues, err := Check(context.Background(), "md", []byte("# }{ not code"))
	require.NoError(t, err)
	assert.Nil(t, issues)
	assert.False(t, Supported("md"))
	assert.True(t, Supported(".TSX"))
}
