package navigator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0755))
	}
}

func TestOpen(t *testing.T) {
	tmp := t.TempDir()
	st, err := Open(tmp)
	require.NoError(t, err)
	assert.Equal(t, tmp, st.Dir())

	_, err = Open(filepath.Join(tmp, "missing"))
	assert.Error(t, err)

	file := filepath.Join(tmp, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	_, err = Open(file)
	assert.Error(t, err)
}

func TestUpAtRootIsNoop(t *testing.T) {
	st, err := Open(string(filepath.Separator))
	require.NoError(t, err)
	require.True(t, st.AtRoot())

	up := st.Up()
	assert.Equal(t, st.Dir(), up.Dir())
	assert.Equal(t, st.Dir(), up.Up().Dir())
}

func TestUp(t *testing.T) {
	tmp := t.TempDir()
	mkdirs(t, tmp, "a")
	st, err := Open(filepath.Join(tmp, "a"))
	require.NoError(t, err)
	assert.Equal(t, tmp, st.Up().Dir())
}

func TestDescend(t *testing.T) {
	tmp := t.TempDir()
	mkdirs(t, tmp, "a")
	st, _ := Open(tmp)

	next, err := st.Descend("a")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "a"), next.Dir())

	same, err := st.Descend("nope")
	assert.Error(t, err)
	assert.Equal(t, st.Dir(), same.Dir())
}

func TestCreateIsIdempotent(t *testing.T) {
	tmp := t.TempDir()
	st, _ := Open(tmp)

	a, err := st.Create("new")
	require.NoError(t, err)
	b, err := st.Create("new")
	require.NoError(t, err)
	assert.Equal(t, a.Dir(), b.Dir())
	assert.DirExists(t, filepath.Join(tmp, "new"))

	_, err = st.Create("  ")
	assert.Error(t, err)
}

func TestCreateMany(t *testing.T) {
	tmp := t.TempDir()
	st, _ := Open(tmp)

	created, err := st.CreateMany([]string{"x", "", "y", " "})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, created)
	assert.DirExists(t, filepath.Join(tmp, "x"))
	assert.DirExists(t, filepath.Join(tmp, "y"))
}

func TestEnterNested(t *testing.T) {
	tmp := t.TempDir()
	st, _ := Open(tmp)

	next, err := st.EnterNested(`a/b\c`)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "a", "b", "c"), next.Dir())
	assert.DirExists(t, next.Dir())

	_, err = st.EnterNested("")
	assert.Error(t, err)
}

func TestListSubdirs(t *testing.T) {
	tmp := t.TempDir()
	mkdirs(t, tmp, "zeta", "Alpha", "beta", ".git")
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "file.md"), []byte("x"), 0644))
	require.NoError(t, os.Symlink(filepath.Join(tmp, "beta"), filepath.Join(tmp, "link")))

	got, err := ListSubdirs(tmp)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "beta", "link", "zeta"}, got)
}

func TestListStems(t *testing.T) {
	tmp := t.TempDir()
	for _, f := range []string{"Concurrency.ts", "Basics.ts", "index.tsx", ".hidden.ts", "notes.md", ".ts"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmp, f), []byte("x"), 0644))
	}
	mkdirs(t, tmp, "dir.ts")

	got, err := ListStems(tmp, "ts")
	require.NoError(t, err)
	assert.Equal(t, []string{"Basics", "Concurrency"}, got)
}
