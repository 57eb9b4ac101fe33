package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/tnguide/internal/catalog"
	"github.com/papapumpkin/tnguide/internal/session"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// Sender is the part of a Program that receives external messages.
// tea.Program.Send is goroutine-safe.
type Sender interface {
	Send(msg tea.Msg)
}

// NewProgram creates a BubbleTea program over s.
// The program uses the alternate screen buffer for a clean TUI experience.
func NewProgram(s *session.Session, opts Options, progOpts ...tea.ProgramOption) *Program {
	model := NewAppModel(s, opts)

	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	allOpts = append(allOpts, progOpts...)

	return tea.NewProgram(model, allOpts...)
}

// Run creates and runs a TUI program, blocking until it exits.
func Run(s *session.Session, opts Options) error {
	p := NewProgram(s, opts)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// WithOutput returns a program option that directs TUI output to the given writer.
// Useful for testing or redirecting output.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}

// WatchCatalog forwards catalog reloads to p until ctx is cancelled or
// reloads is closed. Run it in its own goroutine.
func WatchCatalog(ctx context.Context, p Sender, reloads <-chan catalog.Reload) {
	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-reloads:
			if !ok {
				return
			}
			p.Send(MsgCatalogReload{Catalog: r.Catalog, Err: r.Err})
		}
	}
}
