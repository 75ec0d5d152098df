package prompt

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is a Prompter backed by short-lived Bubble Tea programs, one per
// question. Menus support arrow keys and type-to-filter.
type TUI struct {
	in  io.Reader
	out io.Writer
}

// NewTUI returns a TUI prompter.
func NewTUI(in io.Reader, out io.Writer) *TUI {
	return &TUI{in: in, out: out}
}

// Select runs a filterable single-choice menu.
func (t *TUI) Select(ctx context.Context, message string, choices []string) (int, error) {
	if len(choices) == 0 {
		return 0, fmt.Errorf("select %q: no choices", message)
	}
	final, err := t.run(ctx, newSelectModel(message, choices))
	if err != nil {
		return 0, err
	}
	m := final.(selectModel)
	if m.aborted {
		return 0, ErrAborted
	}
	return m.chosen, nil
}

// MultiSelect runs a checkbox menu; space toggles, enter confirms.
func (t *TUI) MultiSelect(ctx context.Context, message string, choices []string) ([]int, error) {
	if len(choices) == 0 {
		return nil, nil
	}
	final, err := t.run(ctx, newMultiModel(message, choices))
	if err != nil {
		return nil, err
	}
	m := final.(multiModel)
	if m.aborted {
		return nil, ErrAborted
	}
	return m.selected(), nil
}

// Input runs a single-line text field.
func (t *TUI) Input(ctx context.Context, message, defaultValue string) (string, error) {
	final, err := t.run(ctx, newInputModel(message, defaultValue))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.aborted {
		return "", ErrAborted
	}
	return m.value(), nil
}

// Confirm runs a y/n question.
func (t *TUI) Confirm(ctx context.Context, message string, defaultYes bool) (bool, error) {
	final, err := t.run(ctx, newConfirmModel(message, defaultYes))
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.aborted {
		return false, ErrAborted
	}
	return m.answer, nil
}

// Notify prints a warning line between prompts.
func (t *TUI) Notify(message string) {
	fmt.Fprintln(t.out, styleWarn.Render("! "+message))
}

func (t *TUI) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m,
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil, ErrAborted
	}
	if err != nil {
		return nil, fmt.Errorf("running prompt: %w", err)
	}
	return final, nil
}

// ─── select ────────────────────────────────────────────────────────

type selectModel struct {
	message string
	choices []string
	filter  textinput.Model
	visible []int // indexes into choices matching the filter
	cursor  int
	chosen  int
	done    bool
	aborted bool
}

func newSelectModel(message string, choices []string) selectModel {
	ti := textinput.New()
	ti.Prompt = "filter: "
	ti.Placeholder = "type to filter"
	ti.Focus()

	m := selectModel{
		message: message,
		choices: choices,
		filter:  ti,
		chosen:  -1,
	}
	m.refilter()
	return m
}

func (m selectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		m.done = true
		return m, tea.Quit
	case tea.KeyUp, tea.KeyShiftTab:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case tea.KeyDown, tea.KeyTab:
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil
	case tea.KeyEnter:
		if len(m.visible) == 0 {
			return m, nil
		}
		m.chosen = m.visible[m.cursor]
		m.done = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refilter()
	return m, cmd
}

func (m *selectModel) refilter() {
	q := strings.ToLower(m.filter.Value())
	m.visible = make([]int, 0, len(m.choices))
	for i, c := range m.choices {
		if q == "" || strings.Contains(strings.ToLower(c), q) {
			m.visible = append(m.visible, i)
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
}

func (m selectModel) View() string {
	if m.done {
		if m.aborted {
			return styleQuestion.Render(m.message) + " " + styleHelp.Render("(cancelled)") + "\n"
		}
		return styleQuestion.Render(m.message) + " " + styleAnswer.Render(m.choices[m.chosen]) + "\n"
	}

	var b strings.Builder
	b.WriteString(styleQuestion.Render(m.message) + "\n")
	b.WriteString(m.filter.View() + "\n")
	if len(m.visible) == 0 {
		b.WriteString(styleHelp.Render("  no matches") + "\n")
	}
	for i, idx := range m.visible {
		if i == m.cursor {
			b.WriteString(styleCursor.Render("> "+m.choices[idx]) + "\n")
		} else {
			b.WriteString("  " + m.choices[idx] + "\n")
		}
	}
	b.WriteString(styleHelp.Render("↑/↓ move • type to filter • enter select • esc cancel"))
	return b.String()
}

// ─── multi select ──────────────────────────────────────────────────

type multiModel struct {
	message string
	choices []string
	checked map[int]bool
	cursor  int
	done    bool
	aborted bool
}

func newMultiModel(message string, choices []string) multiModel {
	return multiModel{
		message: message,
		choices: choices,
		checked: make(map[int]bool),
	}
}

func (m multiModel) Init() tea.Cmd { return nil }

func (m multiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		m.done = true
		return m, tea.Quit
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case tea.KeySpace:
		m.checked[m.cursor] = !m.checked[m.cursor]
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case tea.KeyRunes:
		if string(key.Runes) == "a" {
			all := len(m.selected()) == len(m.choices)
			for i := range m.choices {
				m.checked[i] = !all
			}
		}
	}
	return m, nil
}

func (m multiModel) selected() []int {
	var idxs []int
	for i := range m.choices {
		if m.checked[i] {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

func (m multiModel) View() string {
	if m.done {
		if m.aborted {
			return styleQuestion.Render(m.message) + " " + styleHelp.Render("(cancelled)") + "\n"
		}
		names := make([]string, 0, len(m.checked))
		for _, i := range m.selected() {
			names = append(names, m.choices[i])
		}
		return styleQuestion.Render(m.message) + " " + styleAnswer.Render(strings.Join(names, ", ")) + "\n"
	}

	var b strings.Builder
	b.WriteString(styleQuestion.Render(m.message) + "\n")
	for i, c := range m.choices {
		box := "[ ]"
		if m.checked[i] {
			box = styleChecked.Render("[x]")
		}
		line := box + " " + c
		if i == m.cursor {
			b.WriteString(styleCursor.Render("> ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString(styleHelp.Render("space toggle • a all/none • enter confirm • esc cancel"))
	return b.String()
}

// ─── text input ────────────────────────────────────────────────────

type inputModel struct {
	message      string
	defaultValue string
	input        textinput.Model
	done         bool
	aborted      bool
}

func newInputModel(message, defaultValue string) inputModel {
	ti := textinput.New()
	ti.Placeholder = defaultValue
	ti.CharLimit = 512
	ti.Width = 60
	ti.Focus()
	return inputModel{message: message, defaultValue: defaultValue, input: ti}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) value() string {
	v := strings.TrimSpace(m.input.Value())
	if v == "" {
		return m.defaultValue
	}
	return v
}

func (m inputModel) View() string {
	if m.done {
		if m.aborted {
			return styleQuestion.Render(m.message) + " " + styleHelp.Render("(cancelled)") + "\n"
		}
		return styleQuestion.Render(m.message) + " " + styleAnswer.Render(m.value()) + "\n"
	}
	return styleQuestion.Render(m.message) + "\n" + m.input.View() + "\n" +
		styleHelp.Render("enter accept • esc cancel")
}

// ─── confirm ───────────────────────────────────────────────────────

type confirmModel struct {
	message string
	answer  bool
	done    bool
	aborted bool
}

func newConfirmModel(message string, defaultYes bool) confirmModel {
	return confirmModel{message: message, answer: defaultYes}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		m.done = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case tea.KeyRunes:
		switch strings.ToLower(string(key.Runes)) {
		case "y":
			m.answer = true
			m.done = true
			return m, tea.Quit
		case "n":
			m.answer = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		if m.aborted {
			return styleQuestion.Render(m.message) + " " + styleHelp.Render("(cancelled)") + "\n"
		}
		answer := "no"
		if m.answer {
			answer = "yes"
		}
		return styleQuestion.Render(m.message) + " " + styleAnswer.Render(answer) + "\n"
	}
	hint := "(y/N)"
	if m.answer {
		hint = "(Y/n)"
	}
	return styleQuestion.Render(m.message) + " " + styleHelp.Render(hint)
}
