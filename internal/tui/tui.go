// Package tui is a terminal front end for the memo API. It keeps a
// revalidate-on-mutation list cache so the visible list always reflects
// the server state after every create, update, or delete.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/memoday/memoday-backend/internal/client"
)

type TUI struct {
	api   *client.Client
	cache *client.ListCache
}

func New(api *client.Client) *TUI {
	return &TUI{api: api, cache: client.NewListCache(api)}
}

// Run blocks until the user quits or the program fails.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.api, t.cache)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
