package common

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

// AwaitEnterFromTerminal shows the given prompt on stderr and blocks until
// the user hits Enter (or interrupts, which counts as confirmation too).
func AwaitEnterFromTerminal(prompt string) error {
	l, err := readline.NewEx(&readline.Config{
		Stdin:  os.Stdin,
		Stdout: os.Stderr,
	})
	if err != nil {
		return fmt.Errorf("could not read from terminal: %w", err)
	}
	defer func() {
		_ = l.Close()
	}()

	l.SetPrompt(prompt + " ")
	if _, err := l.Readline(); err != nil &&
		!errors.Is(err, io.EOF) &&
		!errors.Is(err, readline.ErrInterrupt) {
		return fmt.Errorf("could not read from terminal: %w", err)
	}
	return nil
}

// RequestSecretFromTerminal prompts (masked) until the target holds a
// non-empty value.
func RequestSecretFromTerminal(of *string, promptName string) error {
	l, err := readline.NewEx(&readline.Config{
		Stdin:  os.Stdin,
		Stdout: os.Stderr,
	})
	if err != nil {
		return fmt.Errorf("could not read from terminal for prompt %q: %w", promptName, err)
	}
	defer func() {
		_ = l.Close()
	}()

	prompt := fmt.Sprintf("Enter %s: ", promptName)
	l.SetMaskRune('*')
	for *of == "" {
		b, err := l.ReadPassword(prompt)
		if err != nil {
			return fmt.Errorf("could not read from terminal for prompt %q: %w", promptName, err)
		}
		*of = strings.TrimSpace(string(b))
	}
	return nil
}
