package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"nodekey/internal/domain"
)

var (
	markStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	labelStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

// Terminal asks questions on out and reads answers from in.
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	fd     int
	hidden bool
}

// NewTerminal returns a prompter reading from f. Secrets are read without
// echo when f is a terminal.
func NewTerminal(f *os.File, out io.Writer) *Terminal {
	fd := int(f.Fd())
	return &Terminal{
		in:     bufio.NewReader(f),
		out:    out,
		fd:     fd,
		hidden: term.IsTerminal(fd),
	}
}

// NewLineReader returns a prompter that reads one answer per line from r.
func NewLineReader(r io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(r), out: out, fd: -1}
}

// PromptSecret asks for a hidden value; an empty answer returns def.
func (t *Terminal) PromptSecret(ctx context.Context, message, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	t.ask(message, def)

	var answer string
	if t.hidden {
		b, err := term.ReadPassword(t.fd)
		fmt.Fprintln(t.out)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", strings.ToLower(message), err)
		}
		answer = string(b)
	} else {
		line, err := t.readLine()
		if err != nil {
			return "", fmt.Errorf("read %s: %w", strings.ToLower(message), err)
		}
		answer = line
	}

	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// PromptConfirm asks a yes/no question; an empty answer returns def.
func (t *Terminal) PromptConfirm(ctx context.Context, message string, def bool) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		hint := "y/N"
		if def {
			hint = "Y/n"
		}
		t.ask(message, hint)

		line, err := t.readLine()
		if err != nil {
			return false, fmt.Errorf("read confirmation: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(t.out, hintStyle.Render("Please answer yes or no."))
	}
}

func (t *Terminal) ask(message, hint string) {
	q := markStyle.Render("?") + " " + labelStyle.Render(message)
	if hint != "" {
		q += " " + hintStyle.Render("("+hint+")")
	}
	fmt.Fprint(t.out, q+" ")
}

// readLine returns the next line without its terminator. EOF after a
// partial line is not an error.
func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Compile-time assertion that Terminal implements domain.Prompter.
var _ domain.Prompter = (*Terminal)(nil)
