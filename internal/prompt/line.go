package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Line is a Prompter that prints numbered menus and reads one answer per
// line. Invalid answers are reported and the question is asked again.
type Line struct {
	reader *bufio.Reader
	w      io.Writer

	once  sync.Once
	lines chan lineResult
}

type lineResult struct {
	text string
	err  error
}

// NewLine returns a Line prompter reading from r and writing to w.
func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{reader: bufio.NewReader(r), w: w}
}

// Select presents a numbered list and returns the chosen index. The answer
// may be the number or the exact text of a choice.
func (l *Line) Select(ctx context.Context, message string, choices []string) (int, error) {
	if len(choices) == 0 {
		return 0, fmt.Errorf("select %q: no choices", message)
	}

	for {
		fmt.Fprintf(l.w, "\n%s\n", message)
		for i, c := range choices {
			fmt.Fprintf(l.w, "  %d) %s\n", i+1, c)
		}
		fmt.Fprintf(l.w, "Enter number [1-%d]: ", len(choices))

		answer, err := l.readLine(ctx)
		if err != nil {
			return 0, err
		}

		if idx, ok := matchChoice(answer, choices); ok {
			return idx, nil
		}
		l.Notify(fmt.Sprintf("invalid selection %q: choose 1-%d", answer, len(choices)))
	}
}

// MultiSelect accepts numbers separated by commas or spaces. A blank answer
// selects nothing; "all" selects every choice.
func (l *Line) MultiSelect(ctx context.Context, message string, choices []string) ([]int, error) {
	if len(choices) == 0 {
		return nil, nil
	}

	for {
		fmt.Fprintf(l.w, "\n%s\n", message)
		for i, c := range choices {
			fmt.Fprintf(l.w, "  %d) %s\n", i+1, c)
		}
		fmt.Fprintf(l.w, "Enter numbers (e.g. 1,3), \"all\", or blank for none: ")

		answer, err := l.readLine(ctx)
		if err != nil {
			return nil, err
		}

		idxs, err := parseMulti(answer, len(choices))
		if err == nil {
			return idxs, nil
		}
		l.Notify(err.Error())
	}
}

// Input reads free text. A blank answer returns defaultValue.
func (l *Line) Input(ctx context.Context, message, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(l.w, "%s [%s]: ", message, defaultValue)
	} else {
		fmt.Fprintf(l.w, "%s: ", message)
	}

	answer, err := l.readLine(ctx)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// Confirm asks a yes/no question. A blank answer returns defaultYes.
func (l *Line) Confirm(ctx context.Context, message string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	for {
		fmt.Fprintf(l.w, "%s %s: ", message, hint)

		answer, err := l.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		l.Notify(fmt.Sprintf("please answer y or n, got %q", answer))
	}
}

// Notify prints a recoverable problem.
func (l *Line) Notify(message string) {
	fmt.Fprintf(l.w, "! %s\n", message)
}

// readLine returns the next trimmed line. A final line without a newline is
// still returned; running out of input or a cancelled context is ErrAborted.
func (l *Line) readLine(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		fmt.Fprintln(l.w)
		return "", ErrAborted
	}
	l.once.Do(l.startReader)

	select {
	case <-ctx.Done():
		fmt.Fprintln(l.w)
		return "", ErrAborted
	case r, ok := <-l.lines:
		if !ok {
			fmt.Fprintln(l.w)
			return "", ErrAborted
		}
		if r.err != nil {
			if errors.Is(r.err, io.EOF) && r.text != "" {
				return strings.TrimSpace(r.text), nil
			}
			if errors.Is(r.err, io.EOF) {
				fmt.Fprintln(l.w)
				return "", ErrAborted
			}
			return "", fmt.Errorf("reading input: %w", r.err)
		}
		return strings.TrimSpace(r.text), nil
	}
}

// startReader moves the blocking reads onto a goroutine so a prompt can
// return when its context ends. A line read after an abandoned prompt stays
// on the channel for the next one.
func (l *Line) startReader() {
	l.lines = make(chan lineResult)
	go func() {
		defer close(l.lines)
		for {
			text, err := l.reader.ReadString('\n')
			l.lines <- lineResult{text: text, err: err}
			if err != nil {
				return
			}
		}
	}()
}

func matchChoice(answer string, choices []string) (int, bool) {
	if num, err := strconv.Atoi(answer); err == nil {
		if num >= 1 && num <= len(choices) {
			return num - 1, true
		}
		return 0, false
	}
	for i, c := range choices {
		if answer != "" && answer == c {
			return i, true
		}
	}
	return 0, false
}

func parseMulti(answer string, n int) ([]int, error) {
	if answer == "" {
		return nil, nil
	}
	if strings.EqualFold(answer, "all") {
		idxs := make([]int, n)
		for i := range idxs {
			idxs[i] = i
		}
		return idxs, nil
	}

	fields := strings.FieldsFunc(answer, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	seen := make(map[int]bool, len(fields))
	var idxs []int
	for _, f := range fields {
		num, err := strconv.Atoi(f)
		if err != nil || num < 1 || num > n {
			return nil, fmt.Errorf("invalid selection %q: choose numbers 1-%d", f, n)
		}
		if !seen[num-1] {
			seen[num-1] = true
			idxs = append(idxs, num-1)
		}
	}
	sort.Ints(idxs)
	return idxs, nil
}
