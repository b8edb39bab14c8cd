package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zhubert/chatview/internal/ui"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd

	case ui.EndReachedMsg:
		return m, m.requestPage(m.pager.Snapshot().Page)

	case PageLoadedMsg:
		return m, m.handlePageLoaded(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd

	case ui.FlashTickMsg:
		m.footer.ClearFlash()
		return m, nil
	}

	// Cursor blink and other input plumbing belong to the composer.
	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit),
		key.Matches(msg, m.keys.QuitAlt) && !m.composer.Focused():
		m.shutdown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Focus):
		return m, m.toggleFocus()

	case key.Matches(msg, m.keys.Menu):
		m.trip.ToggleMenu()
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.Attach):
		m.composer.ToggleAttachments()
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.Close):
		m.trip.CloseMenu()
		m.composer.CloseAttachments()
		m.layout()
		return m, nil
	}

	var cmd tea.Cmd
	if m.composer.Focused() {
		m.composer, cmd = m.composer.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m *Model) handlePageLoaded(msg PageLoadedMsg) tea.Cmd {
	applied := m.pager.Complete(msg.Page, msg.Result, msg.Err)
	if m.quitting {
		return nil
	}
	m.sync()

	if msg.Err != nil {
		if !m.showErrors || errors.Is(msg.Err, context.Canceled) {
			return nil
		}
		m.footer.SetFlash(fmt.Sprintf("Couldn't load page %d", msg.Page))
		return ui.FlashTick()
	}

	// Keep filling until the history overflows the view. Failed pages are
	// not retried here; the next scroll to the end will ask again.
	if applied && m.list.AtEnd() {
		return m.requestPage(m.pager.Snapshot().Page)
	}
	return nil
}
