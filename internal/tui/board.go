package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/EgemenErin/Muscledia/internal/engine"
)

// Board bundles the engines the dashboard reads from and writes to.
type Board struct {
	Progression *engine.Progression
	League      *engine.League
	Raid        *engine.Raid
	Routines    *engine.Routines
	Clock       engine.Clock
}

func RunBoard(ctx context.Context, b Board, out io.Writer) error {
	m := newBoardModel(ctx, b)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
