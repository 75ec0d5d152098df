package plan

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestValidateFile_Valid(t *testing.T) {
	result, err := ValidateFile(testPath("valid-plan.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
		}
		t.Fatal("expected valid plan")
	}
}

func TestValidateFile_Invalid(t *testing.T) {
	invalidFiles := []struct {
		file string
		desc string
	}{
		{"invalid-missing-items.yaml", "missing items"},
		{"invalid-nav-no-subpages.yaml", "nav without subpages"},
		{"invalid-nav-mixed-case.yaml", "mixed-case nav kind without subpages"},
		{"invalid-bad-name.yaml", "names with separators or padding"},
		{"invalid-unknown-field.yaml", "unknown entry field"},
	}

	for _, tt := range invalidFiles {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Errorf("expected invalid for %s (%s), but got valid", tt.file, tt.desc)
			}
			if len(result.Issues) == 0 {
				t.Errorf("expected at least one issue for %s (%s)", tt.file, tt.desc)
			}
		})
	}
}

func TestValidate_CollectsAllIssues(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-bad-name.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	paths := map[string]bool{}
	for _, issue := range result.Issues {
		if issue.Message == "" {
			t.Errorf("issue at %s has empty message", issue.Path)
		}
		paths[issue.Path] = true
	}
	for _, want := range []string{"/items/0/files/0/name", "/items/0/files/1/name"} {
		if !paths[want] {
			t.Errorf("missing issue for %s, got %v", want, result.Issues)
		}
	}
}

func TestValidate_NavKindAnyCase(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-nav-mixed-case.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	paths := map[string]bool{}
	for _, issue := range result.Issues {
		paths[issue.Path] = true
	}
	for _, want := range []string{"/items/1", "/items/2"} {
		if !paths[want] {
			t.Errorf("missing subpages issue for %s, got %v", want, result.Issues)
		}
	}
	if paths["/items/0"] {
		t.Errorf("page entry should not need subpages, got %v", result.Issues)
	}
}

func TestValidateFile_InvalidYAML(t *testing.T) {
	if _, err := ValidateFile(testPath("invalid-not-yaml.yaml")); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	if _, err := ValidateFile(testPath("nonexistent.yaml")); err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(testPath("invalid-nav-no-subpages.yaml"))
	if !errors.Is(err, ErrInvalidPlan) {
		t.Fatalf("expected ErrInvalidPlan, got %v", err)
	}
	var ipe *InvalidPlanError
	if !errors.As(err, &ipe) || len(ipe.Issues) == 0 {
		t.Fatalf("expected issues in %v", err)
	}
	if !strings.Contains(err.Error(), "invalid-nav-no-subpages.yaml") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestLoad_UnsupportedVersion(t *testing.T) {
	_, err := Load(testPath("unsupported-version.yaml"))
	if err == nil || !strings.Contains(err.Error(), "unsupported plan version") {
		t.Fatalf("expected unsupported version error, got %v", err)
	}
}
