// Package input reads interactive values such as secrets from the controlling terminal.
package input

import (
	"fmt"
	"io"
	"os"

	"github.com/napalu/argbind/errs"
	"golang.org/x/term"
)

// TerminalReader interface for reading secure input
type TerminalReader interface {
	ReadPassword(fd int) ([]byte, error)
	IsTerminal(fd int) bool
}

// DefaultTerminal implements real terminal operations
type DefaultTerminal struct{}

// ReadPassword reads a line from the terminal without echo
func (t *DefaultTerminal) ReadPassword(fd int) ([]byte, error) {
	return term.ReadPassword(fd)
}

// IsTerminal checks if fd is attached to a real terminal
func (t *DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// GetSecureString writes prompt to w and reads a value from stdin without echo.
// It fails with errs.ErrNotAttachedToTerminal when stdin is not a terminal and with
// errs.ErrEmptyInput when nothing was entered.
func GetSecureString(prompt string, w io.Writer, terminal TerminalReader) (string, error) {
	if terminal == nil {
		terminal = &DefaultTerminal{}
	}

	fd := int(os.Stdin.Fd())
	if !terminal.IsTerminal(fd) {
		return "", errs.ErrNotAttachedToTerminal.WithArgs("stdin")
	}

	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	bytes, err := terminal.ReadPassword(fd)
	_, _ = fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	if len(bytes) == 0 {
		return "", errs.ErrEmptyInput.WithArgs(prompt)
	}

	return string(bytes), nil
}
