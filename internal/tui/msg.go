package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/tnguide/internal/catalog"
	"github.com/papapumpkin/tnguide/internal/session"
)

// MsgDeferredOpen fires a deferred detail open after the cosmetic delay.
type MsgDeferredOpen struct {
	Token session.DeferredOpen
}

// MsgDismissNotice clears the notice with ID if it is still showing.
type MsgDismissNotice struct {
	ID string
}

// MsgCatalogReload delivers a reloaded catalog file from the watcher.
type MsgCatalogReload struct {
	Catalog *catalog.Catalog
	Err     error
}

// deferredOpenCmd schedules tok to fire after delay.
func deferredOpenCmd(tok session.DeferredOpen, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return MsgDeferredOpen{Token: tok}
	})
}

// dismissCmd schedules the dismissal of n after its TTL.
func dismissCmd(n session.Notice) tea.Cmd {
	return tea.Tick(n.TTL, func(time.Time) tea.Msg {
		return MsgDismissNotice{ID: n.ID}
	})
}
