package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const flashDuration = 3 * time.Second

// FlashTickMsg clears the footer flash.
type FlashTickMsg struct{}

// FlashTick returns a command that clears the flash after a delay.
func FlashTick() tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return FlashTickMsg{}
	})
}

// Footer is the bottom line: key help on the left and history status on
// the right. An error flash replaces the help until cleared.
type Footer struct {
	keys   KeyMap
	flash  string
	status string
}

// NewFooter creates a footer listing the given bindings.
func NewFooter(keys KeyMap) *Footer {
	return &Footer{keys: keys}
}

// SetFlash shows an error message in place of the key help.
func (f *Footer) SetFlash(msg string) {
	f.flash = msg
}

// ClearFlash restores the key help.
func (f *Footer) ClearFlash() {
	f.flash = ""
}

// Flash returns the unstyled flash message, empty when none is shown.
func (f *Footer) Flash() string {
	return f.flash
}

// SetStatus sets the right-hand status text.
func (f *Footer) SetStatus(s string) {
	f.status = s
}

func (f *Footer) left() string {
	if f.flash != "" {
		return ErrorStyle.Render("✗ " + f.flash)
	}

	parts := make([]string, 0, len(f.keys.ShortHelp()))
	for _, b := range f.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, DimStyle.Render(h.Key)+FooterStyle.Render(" "+h.Desc))
	}
	return strings.Join(parts, "  ")
}

// View renders the footer as a single line no wider than width.
func (f *Footer) View(width int) string {
	content := f.left()
	if f.status != "" {
		content = spread(content, DimStyle.Render(f.status), width)
	}

	content = lipgloss.NewStyle().MaxWidth(width).Render(content)
	if pad := width - lipgloss.Width(content); pad > 0 {
		content += strings.Repeat(" ", pad)
	}
	return content
}
