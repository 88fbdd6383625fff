// Package prompt provides the interactive credential and confirmation
// providers used by the workflows. The workflows depend only on the
// Prompter interface, so tests can script answers without a terminal.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// Prompter supplies credentials and yes/no confirmations.
type Prompter interface {
	Username(ctx context.Context) (string, error)
	Password(ctx context.Context, username string) (string, error)
	Confirm(ctx context.Context, question string) (bool, error)
}

// ParseYesNo interprets a free-text confirmation answer. Only the first
// character counts, case-insensitively. ok is false for empty or
// unrecognized input, which callers should treat as "ask again".
func ParseYesNo(answer string) (yes, ok bool) {
	answer = strings.TrimSpace(strings.ToLower(answer))
	if answer == "" {
		return false, false
	}
	switch answer[0] {
	case 'y':
		return true, true
	case 'n':
		return false, true
	}
	return false, false
}

// Terminal implements Prompter on an interactive terminal.
type Terminal struct{}

// NewTerminal returns a terminal-backed Prompter, or an error when stdin
// is not a terminal (credentials must then come from flags or env).
func NewTerminal() (*Terminal, error) {
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil, errors.New("interactive prompting requires a terminal; pass credentials via flags or SCM_USERNAME/SCM_PASSWORD")
	}
	return &Terminal{}, nil
}

// Username prompts for the controller username.
func (t *Terminal) Username(ctx context.Context) (string, error) {
	var username string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("SCM username").
			Value(&username),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return "", fmt.Errorf("username prompt: %w", err)
	}
	return username, nil
}

// Password prompts for the controller password, entered twice and
// compared; a mismatch re-prompts.
func (t *Terminal) Password(ctx context.Context, username string) (string, error) {
	for {
		var password, verify string
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("SCM password for %s", username)).
				EchoMode(huh.EchoModePassword).
				Value(&password),
			huh.NewInput().
				Title("Retype password").
				EchoMode(huh.EchoModePassword).
				Value(&verify),
		))
		if err := form.RunWithContext(ctx); err != nil {
			return "", fmt.Errorf("password prompt: %w", err)
		}
		if password != "" && password == verify {
			return password, nil
		}
		fmt.Fprintln(os.Stderr, "Passwords do not match. Try again")
	}
}

// Confirm asks a free-text y/n question, re-prompting until the answer is
// recognizable.
func (t *Terminal) Confirm(ctx context.Context, question string) (bool, error) {
	for {
		var answer string
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title(question + " (y/n)").
				Value(&answer),
		))
		if err := form.RunWithContext(ctx); err != nil {
			return false, fmt.Errorf("confirmation prompt: %w", err)
		}
		if yes, ok := ParseYesNo(answer); ok {
			return yes, nil
		}
	}
}
