package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zhubert/chatview/internal/chat"
)

// EndReachedMsg signals that the list was scrolled to the end of the
// available history, which is the visual top of the inverted list.
type EndReachedMsg struct{}

func endReached() tea.Msg { return EndReachedMsg{} }

// MessageList shows accumulated messages inverted: the first message sits
// at the bottom and later ones stack upward.
type MessageList struct {
	viewport viewport.Model
	spinner  spinner.Model
	md       *Markdown

	rows      []Row
	rendered  map[string]string
	cacheW    int
	loading   bool
	exhausted bool
	focused   bool
}

// NewMessageList creates an empty list.
func NewMessageList(md *Markdown) *MessageList {
	vp := viewport.New(80, 10)
	vp.MouseWheelEnabled = true

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(ColorPrimary)),
	)

	return &MessageList{
		viewport: vp,
		spinner:  sp,
		md:       md,
		rendered: make(map[string]string),
		focused:  true,
	}
}

// SetSize updates the list dimensions, keeping the view anchored to the
// bottom edge.
func (l *MessageList) SetSize(width, height int) {
	if height < 1 {
		height = 1
	}
	if width != l.cacheW {
		l.rendered = make(map[string]string)
		l.cacheW = width
	}
	fromBottom := l.distanceFromBottom()
	l.viewport.Width = width
	l.viewport.Height = height
	l.refresh(fromBottom)
}

// SetMessages replaces the rows shown. Rows added above the current view
// do not move what the user is looking at.
func (l *MessageList) SetMessages(msgs []chat.Message) {
	fromBottom := l.distanceFromBottom()
	if len(msgs) < len(l.rows) {
		l.rendered = make(map[string]string)
	}
	l.rows = BuildRows(msgs)
	l.refresh(fromBottom)
}

// SetLoading shows or hides the loading indicator at the end of the list.
// It returns the spinner tick command when the indicator appears.
func (l *MessageList) SetLoading(on bool) tea.Cmd {
	was := l.loading
	atTop := l.viewport.AtTop()
	l.loading = on
	l.refresh(l.distanceFromBottom())
	if !on || was {
		return nil
	}
	// The indicator is added above the content; keep it in view when the
	// user is already looking at the top edge.
	if atTop {
		l.viewport.SetYOffset(0)
	}
	return l.spinner.Tick
}

// SetExhausted marks that no older history exists.
func (l *MessageList) SetExhausted(on bool) {
	l.exhausted = on
	l.refresh(l.distanceFromBottom())
}

// Focus routes keyboard scrolling to the list.
func (l *MessageList) Focus() { l.focused = true }

// Blur stops keyboard scrolling.
func (l *MessageList) Blur() { l.focused = false }

// Focused reports whether the list has keyboard focus.
func (l *MessageList) Focused() bool { return l.focused }

// Rows returns the rows in list order.
func (l *MessageList) Rows() []Row {
	return l.rows
}

// AtEnd reports whether the end of the history is visible, either because
// the view is scrolled to the top or the content does not fill it.
func (l *MessageList) AtEnd() bool {
	return l.viewport.AtTop()
}

// Update handles scrolling and spinner ticks. Scrolling onto the end of the
// list returns a command producing EndReachedMsg.
func (l *MessageList) Update(msg tea.Msg) (*MessageList, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !l.loading {
			return l, nil
		}
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		l.refresh(l.distanceFromBottom())
		return l, cmd

	case tea.KeyMsg:
		if !l.focused {
			return l, nil
		}
		var cmd tea.Cmd
		l.viewport, cmd = l.viewport.Update(msg)
		cmds = append(cmds, cmd)
		if isScrollUp(msg.String()) {
			cmds = append(cmds, l.checkEnd())
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		l.viewport, cmd = l.viewport.Update(msg)
		cmds = append(cmds, cmd)
		if msg.Button == tea.MouseButtonWheelUp {
			cmds = append(cmds, l.checkEnd())
		}
	}

	return l, tea.Batch(cmds...)
}

func (l *MessageList) checkEnd() tea.Cmd {
	if l.loading || l.exhausted || !l.AtEnd() {
		return nil
	}
	return endReached
}

func isScrollUp(key string) bool {
	switch key {
	case "up", "k", "pgup", "b", "u", "ctrl+u", "home":
		return true
	}
	return false
}

// View renders the visible part of the list.
func (l *MessageList) View() string {
	return l.viewport.View()
}

func (l *MessageList) distanceFromBottom() int {
	d := l.viewport.TotalLineCount() - l.viewport.YOffset - l.viewport.Height
	if d < 0 {
		return 0
	}
	return d
}

// Content renders the whole inverted list, top line first.
func (l *MessageList) Content() string {
	width := l.viewport.Width
	var parts []string

	switch {
	case l.loading:
		parts = append(parts, lipgloss.PlaceHorizontal(width, lipgloss.Center,
			l.spinner.View()+DimStyle.Render(" Loading earlier messages")))
	case l.exhausted && len(l.rows) > 0:
		parts = append(parts, lipgloss.PlaceHorizontal(width, lipgloss.Center,
			DimStyle.Render("· start of conversation ·")))
	}

	for i := len(l.rows) - 1; i >= 0; i-- {
		row := l.rows[i]
		out, ok := l.rendered[row.Key]
		if !ok {
			out = RenderRow(row, width, l.md)
			l.rendered[row.Key] = out
		}
		parts = append(parts, out)
	}

	if len(parts) == 0 {
		return ""
	}

	content := strings.Join(parts, "\n\n")

	// Bottom-anchor short content like a chat.
	if lines := lipgloss.Height(content); lines < l.viewport.Height {
		content = strings.Repeat("\n", l.viewport.Height-lines) + content
	}
	return content
}

func (l *MessageList) refresh(fromBottom int) {
	l.viewport.SetContent(l.Content())
	offset := l.viewport.TotalLineCount() - l.viewport.Height - fromBottom
	if offset < 0 {
		offset = 0
	}
	l.viewport.SetYOffset(offset)
}
