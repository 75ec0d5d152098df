//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/pagegen-labs/pagegen/internal/config"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // PAGEGEN_HOME, holds config.yaml
	ProjectDir string // project root with a Notes tree and a src tree
}

// setupTestEnv creates isolated temp directories, points the config at them
// and loads it. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
	}

	t.Setenv("PAGEGEN_HOME", env.HomeDir)
	t.Setenv("PAGEGEN_PROJECT_ROOT", env.ProjectDir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	config.Load()

	return env
}

// setupProject lays out a small site: markdown notes under Notes/ and
// existing page components under src/Pages/.
func setupProject(t *testing.T, projectDir string) {
	t.Helper()

	writeFile(t, filepath.Join(projectDir, "Notes", "Go", "basics.md"), "# Basics\n")
	writeFile(t, filepath.Join(projectDir, "Notes", "Go", "concurrency.md"), "# Concurrency\n")
	writeFile(t, filepath.Join(projectDir, "src", "Pages", "Go", "Basics.ts"), "export {};\n")
	writeFile(t, filepath.Join(projectDir, "src", "Pages", "Go", "Concurrency.ts"), "export {};\n")
	if err := os.MkdirAll(filepath.Join(projectDir, "src", "Navs"), 0755); err != nil {
		t.Fatal(err)
	}
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// script joins prompt answers into newline-terminated input.
func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
