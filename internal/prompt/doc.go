// Package prompt abstracts terminal input for the wizard and the folder
// navigator. Line reads numbered answers from any io.Reader and is what tests
// and piped input use; TUI draws arrow-key menus with Bubble Tea when both
// ends are a terminal.
package prompt
