package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zhubert/chatview/internal/api"
	"github.com/zhubert/chatview/internal/pager"
	"github.com/zhubert/chatview/internal/ui"
)

// Options configures the chat screen.
type Options struct {
	// ReplyTo names the composer placeholder target.
	ReplyTo string
	// Markdown renders message bodies as markdown.
	Markdown bool
	// ShowErrors flashes failed page loads in the footer. Off, a failure
	// only removes the loading indicator.
	ShowErrors bool
	Logger     *slog.Logger
}

// Model is the top-level bubbletea model for the chat screen.
type Model struct {
	fetcher api.Fetcher
	pager   *pager.Pager
	logger  *slog.Logger

	header   *ui.Header
	trip     *ui.TripDetails
	list     *ui.MessageList
	composer *ui.Composer
	footer   *ui.Footer
	keys     ui.KeyMap

	showErrors bool

	width  int
	height int

	// ctx is cancelled when the screen goes away so in-flight requests stop.
	ctx    context.Context
	cancel context.CancelFunc

	// quitting signals the app should exit.
	quitting bool
}

// New creates the root app model. Nothing is fetched until Init.
func New(fetcher api.Fetcher, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ctx, cancel := context.WithCancel(context.Background())
	keys := ui.DefaultKeyMap()

	m := &Model{
		fetcher:    fetcher,
		pager:      pager.New(fetcher, logger),
		logger:     logger,
		header:     ui.NewHeader(),
		trip:       ui.NewTripDetails(),
		list:       ui.NewMessageList(ui.NewMarkdown(opts.Markdown)),
		composer:   ui.NewComposer(opts.ReplyTo),
		footer:     ui.NewFooter(keys),
		keys:       keys,
		showErrors: opts.ShowErrors,
		width:      80,
		height:     24,
		ctx:        ctx,
		cancel:     cancel,
	}
	m.layout()
	return m
}

// Init implements tea.Model. It requests the first page.
func (m *Model) Init() tea.Cmd {
	return m.requestPage(0)
}

// State returns the current pagination state.
func (m *Model) State() pager.State {
	return m.pager.Snapshot()
}

// requestPage claims the pager guard and starts fetching page. It returns
// nil when the guard refuses the request.
func (m *Model) requestPage(page int) tea.Cmd {
	if !m.pager.Begin(page) {
		return nil
	}
	m.logger.Debug("requesting chat page", "page", page)
	spin := m.list.SetLoading(true)
	return tea.Batch(spin, fetchPage(m.ctx, m.fetcher, page))
}

// sync pushes pager state into the view components.
func (m *Model) sync() {
	s := m.pager.Snapshot()
	m.list.SetMessages(s.Messages)
	m.list.SetLoading(s.Loading)
	m.list.SetExhausted(s.Exhausted)
	m.footer.SetStatus(historyStatus(s))
	if s.HasTrip {
		m.header.SetName(s.Trip.Name)
		m.trip.SetTrip(s.Trip)
	}
}

func historyStatus(s pager.State) string {
	switch {
	case len(s.Messages) == 1:
		return "1 message"
	case s.Exhausted:
		return fmt.Sprintf("%d messages · all loaded", len(s.Messages))
	default:
		return fmt.Sprintf("%d messages", len(s.Messages))
	}
}

// layout sizes components for the terminal and open menus.
func (m *Model) layout() {
	chrome := ui.ChromeHeight
	if menu := m.trip.MenuView(m.width); menu != "" {
		chrome += lipgloss.Height(menu)
	}
	m.composer.SetWidth(m.width)
	if bar := m.composer.AttachmentView(); bar != "" {
		chrome += lipgloss.Height(bar)
	}

	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height, chrome)
	m.list.SetSize(m.width, ctx.ContentHeight)
}

// shutdown stops fetching. Results still in flight are discarded.
func (m *Model) shutdown() {
	m.quitting = true
	m.cancel()
	m.pager.Close()
	m.logger.Info("chat screen closed", "page", m.pager.Snapshot().Page)
}

// toggleFocus moves keyboard focus between the list and the composer.
func (m *Model) toggleFocus() tea.Cmd {
	if m.composer.Focused() {
		m.composer.Blur()
		m.list.Focus()
		return nil
	}
	m.list.Blur()
	return m.composer.Focus()
}
