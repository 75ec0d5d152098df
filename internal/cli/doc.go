// Package cli defines the Cobra command tree for the pagegen CLI. Each file
// registers one top-level command with the root command. Commands delegate
// to internal packages for the work and only handle flags, prompting and
// status output.
package cli
