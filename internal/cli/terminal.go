package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/muesli/termenv"

	"github.com/thimc/aed/internal/config"
	"github.com/thimc/aed/internal/editor"
)

// lineReader reads editor input from an interactive terminal.
type lineReader struct {
	rl *readline.Instance
}

func newLineReader(cfg *config.Config, stdin *os.File, stdout, stderr io.Writer) (*lineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		Stdin:           stdin,
		Stdout:          stdout,
		Stderr:          stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	return &lineReader{rl: rl}, nil
}

func (r *lineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	ln, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", editor.ErrInterrupt
	}
	return ln, err
}

func (r *lineReader) Close() error {
	return r.rl.Close()
}

// errorStyle returns the renderer for verbose error messages, or nil when
// they should stay plain.
func errorStyle(cfg *config.Config, w io.Writer) func(...string) string {
	r := lipgloss.NewRenderer(w)
	switch cfg.Color {
	case config.ColorNever:
		return nil
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	default:
		if termenv.EnvNoColor() || !isTerminal(w) {
			return nil
		}
	}
	return r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Render
}
