package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "pagegen" {
		t.Errorf("CLIName() = %q, want %q", got, "pagegen")
	}
	if got := HomeDir(); got != ".pagegen" {
		t.Errorf("HomeDir() = %q, want %q", got, ".pagegen")
	}
	if got := EnvPrefix(); got != "PAGEGEN" {
		t.Errorf("EnvPrefix() = %q, want %q", got, "PAGEGEN")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("home"); got != "PAGEGEN_HOME" {
		t.Errorf("EnvVar(home) = %q, want %q", got, "PAGEGEN_HOME")
	}
}
