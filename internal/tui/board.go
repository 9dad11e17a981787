package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jubams/ramadan-tracker/internal/engine"
	"github.com/jubams/ramadan-tracker/internal/i18n"
)

func RunBoard(ctx context.Context, tracker *engine.Tracker, lang i18n.Language, out io.Writer) error {
	m := newBoardModel(ctx, tracker, lang)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
