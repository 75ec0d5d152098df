// Package navigator implements the interactive folder picker. The cursor is
// an explicit State value: every move returns a new State, and the menu loop
// threads it through each iteration until the user confirms a folder.
//
// Creating folders is eager and idempotent (MkdirAll), so the path a
// Navigator returns always exists.
package navigator
