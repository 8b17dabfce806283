package ui

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Run when stdin or stdout is not an
// interactive terminal.
var ErrNotTerminal = eris.New("not a terminal")

// Run starts the program on the alternate screen with mouse support and
// blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, m tea.Model, in io.Reader, out io.Writer) error {
	if !isTerminal(in) || !isTerminal(out) {
		return ErrNotTerminal
	}

	zerolog.Ctx(ctx).Debug().
		Bool("inline_images", imageCapable(envLookup)).
		Str("term", envLookup("TERM")).
		Msg("starting ui")

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return eris.Wrap(err, "run ui")
	}
	return nil
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
