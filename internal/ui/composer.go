package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AttachmentActions are the buttons of the attachment menu. They do nothing.
var AttachmentActions = []string{"📷 Camera", "🎥 Video", "📄 Document"}

const composerInputHeight = 2

// Composer is the reply box. Its send and attach controls are visual only:
// nothing typed here is sent or stored.
type Composer struct {
	input      textarea.Model
	attachOpen bool
	width      int
}

// NewComposer creates a composer addressed to replyTo.
func NewComposer(replyTo string) *Composer {
	ti := textarea.New()
	ti.Placeholder = "Reply to @" + replyTo
	ti.ShowLineNumbers = false
	ti.CharLimit = 0
	ti.Prompt = " "
	ti.SetHeight(composerInputHeight)

	return &Composer{input: ti}
}

// SetWidth sizes the input to leave room for the controls.
func (c *Composer) SetWidth(width int) {
	c.width = width
	w := width - lipgloss.Width(c.controls()) - 1
	if w < 10 {
		w = 10
	}
	c.input.SetWidth(w)
}

// Focus gives keyboard focus to the input.
func (c *Composer) Focus() tea.Cmd {
	return c.input.Focus()
}

// Blur removes keyboard focus.
func (c *Composer) Blur() {
	c.input.Blur()
}

// Focused reports whether the input has keyboard focus.
func (c *Composer) Focused() bool {
	return c.input.Focused()
}

// Value returns the current draft.
func (c *Composer) Value() string {
	return c.input.Value()
}

// Placeholder returns the prompt shown in an empty input.
func (c *Composer) Placeholder() string {
	return c.input.Placeholder
}

// ToggleAttachments opens or closes the attachment menu.
func (c *Composer) ToggleAttachments() {
	c.attachOpen = !c.attachOpen
}

// CloseAttachments closes the attachment menu.
func (c *Composer) CloseAttachments() {
	c.attachOpen = false
}

// AttachmentsOpen reports whether the attachment menu is visible.
func (c *Composer) AttachmentsOpen() bool {
	return c.attachOpen
}

// Update forwards input events to the textarea.
func (c *Composer) Update(msg tea.Msg) (*Composer, tea.Cmd) {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *Composer) controls() string {
	attach := DimStyle.Render("📎")
	if c.attachOpen {
		attach = FocusedStyle.Render("📎")
	}
	return attach + "  " + DimStyle.Render("➤") + " "
}

// View renders ComposerHeight lines.
func (c *Composer) View() string {
	row := lipgloss.JoinHorizontal(lipgloss.Top, c.input.View(), " ", c.controls())
	return rule(c.width) + "\n" + row
}

// AttachmentView renders the attachment buttons, or "" when closed.
func (c *Composer) AttachmentView() string {
	if !c.attachOpen {
		return ""
	}
	buttons := make([]string, 0, len(AttachmentActions)*2)
	for i, a := range AttachmentActions {
		if i > 0 {
			buttons = append(buttons, " ")
		}
		buttons = append(buttons, ActionButtonStyle.Render(a))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
	return lipgloss.PlaceHorizontal(c.width, lipgloss.Right, bar)
}
