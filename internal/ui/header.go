package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zhubert/chatview/internal/chat"
)

// Fixed chrome heights in lines.
const (
	HeaderHeight   = 2
	TripHeight     = 3
	ComposerHeight = 3
	FooterHeight   = 1
	ChromeHeight   = HeaderHeight + TripHeight + ComposerHeight + FooterHeight
)

// Header renders the top bar: back arrow, chat name and edit icon.
type Header struct {
	name string
}

// NewHeader creates a header with no chat name yet.
func NewHeader() *Header {
	return &Header{}
}

// SetName sets the raw chat name as received from the endpoint.
func (h *Header) SetName(name string) {
	h.name = name
}

// Title returns the cleaned chat name shown in the header.
func (h *Header) Title() string {
	return chat.RemoveNo(h.name)
}

// View renders the header as a string of HeaderHeight lines.
func (h *Header) View(width int) string {
	left := HeaderStyle.Render("← " + h.Title())
	right := DimStyle.Render("✎")
	return spread(left, right, width) + "\n" + rule(width)
}

// spread places left and right at the edges of a line of the given width.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func rule(width int) string {
	if width < 1 {
		width = 1
	}
	return RuleStyle.Render(strings.Repeat("─", width))
}
