package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveHeader(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Go_Basics", "Go Basics"},
		{"a__b_", "a  b "},
		{"NoUnderscores", "NoUnderscores"},
		{"_lead", " lead"},
		{"Mixed-Case_And.dots", "Mixed-Case And.dots"},
	}
	for _, tt := range tests {
		got := DeriveHeader(tt.in)
		assert.Equal(t, tt.want, got, "DeriveHeader(%q)", tt.in)
		// Only underscores change.
		require.Equal(t, len(tt.in), len(got))
		for i := range tt.in {
			if tt.in[i] == '_' {
				assert.Equal(t, byte(' '), got[i])
			} else {
				assert.Equal(t, tt.in[i], got[i])
			}
		}
	}
}

func TestDeriveReferencePath(t *testing.T) {
	tests := []struct {
		folder, name, want string
	}{
		{"Notes/Go", "Basics", "Notes/Go/Basics.md"},
		{"/Notes/Go/", "Basics", "Notes/Go/Basics.md"},
		{`\Notes\Go`, "Basics", "Notes/Go/Basics.md"},
		{"", "Basics", "Basics.md"},
		{"///", "Basics", "Basics.md"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveReferencePath(tt.folder, tt.name), "folder=%q", tt.folder)
	}
}

func TestNormalizeReferenceOverride(t *testing.T) {
	assert.Equal(t, "A/B.md", NormalizeReferenceOverride("/A/B.md"))
	assert.Equal(t, "A/B.md", NormalizeReferenceOverride(`\A\B.md`))
	assert.Equal(t, "", NormalizeReferenceOverride("   "))
}

func TestNormalizeImportPath(t *testing.T) {
	assert.Equal(t, "src/Pages/Go", NormalizeImportPath(`/src\Pages\Go\`))
}
