package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rudreshark/hangman-game-with-gui/internal/pick"
	"github.com/rudreshark/hangman-game-with-gui/internal/words"
)

// Options preselect the first round. With Start set the menus are skipped
// and play begins immediately.
type Options struct {
	Tier     words.Tier
	Category words.Category
	Start    bool
}

// Run blocks until the player quits or ctx is cancelled.
func Run(ctx context.Context, bank *words.Bank, src pick.Source, out io.Writer, opts Options) error {
	m := newModel(bank, src, opts)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
