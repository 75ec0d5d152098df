package prompt

import (
	"context"
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrAborted is returned when the user cancels a prompt or input runs out.
var ErrAborted = errors.New("prompt aborted")

// Prompter asks the user questions. Select and MultiSelect return indexes
// into choices.
type Prompter interface {
	Select(ctx context.Context, message string, choices []string) (int, error)
	MultiSelect(ctx context.Context, message string, choices []string) ([]int, error)
	Input(ctx context.Context, message, defaultValue string) (string, error)
	Confirm(ctx context.Context, message string, defaultYes bool) (bool, error)

	// Notify reports a recoverable problem (bad folder name, missing
	// sentinel) before the caller asks again.
	Notify(message string)
}

// Modes accepted by ForTerminal.
const (
	ModeAuto  = "auto"
	ModeTUI   = "tui"
	ModePlain = "plain"
)

// ForTerminal picks a Prompter. In auto mode the TUI is used only when both
// in and out are terminals.
func ForTerminal(mode string, in io.Reader, out io.Writer) Prompter {
	switch mode {
	case ModePlain:
		return NewLine(in, out)
	case ModeTUI:
		return NewTUI(in, out)
	}
	if isTerminal(in) && isTerminal(out) {
		return NewTUI(in, out)
	}
	return NewLine(in, out)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
