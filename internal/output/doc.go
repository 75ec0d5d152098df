// Package output formats human-facing status lines (created files, warnings,
// errors) with lipgloss. Colors are dropped when the writer is not a terminal.
package output
