package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zhubert/chatview/internal/chat"
)

// MenuItems are the entries of the trip options menu. Selecting one does
// nothing.
var MenuItems = []string{"Members", "Share Number", "Report"}

var menuIcons = map[string]string{
	"Members":      "👥",
	"Share Number": "☎",
	"Report":       "⚑",
}

// TripDetails renders the trip origin/destination block and the options
// menu toggled from it.
type TripDetails struct {
	trip     chat.Trip
	menuOpen bool
}

// NewTripDetails creates an empty trip block.
func NewTripDetails() *TripDetails {
	return &TripDetails{}
}

// SetTrip sets the trip metadata.
func (t *TripDetails) SetTrip(trip chat.Trip) {
	t.trip = trip
}

// ToggleMenu opens or closes the options menu.
func (t *TripDetails) ToggleMenu() {
	t.menuOpen = !t.menuOpen
}

// CloseMenu closes the options menu.
func (t *TripDetails) CloseMenu() {
	t.menuOpen = false
}

// MenuOpen reports whether the options menu is visible.
func (t *TripDetails) MenuOpen() bool {
	return t.menuOpen
}

// View renders TripHeight lines.
func (t *TripDetails) View(width int) string {
	avatar := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(ColorPrimary).
		Render(" ⛟ ")

	from := TripLabelStyle.Render("From ") + TripValueStyle.Render(t.trip.From)
	to := TripLabelStyle.Render("To ") + TripValueStyle.Render(t.trip.To)
	text := lipgloss.JoinVertical(lipgloss.Left, from, to)

	left := lipgloss.JoinHorizontal(lipgloss.Top, avatar, " ", text)
	more := DimStyle.Render("⋮")
	if t.menuOpen {
		more = FocusedStyle.Render("⋮")
	}

	lines := strings.Split(left, "\n")
	lines[0] = spread(lines[0], more, width)
	return strings.Join(lines, "\n") + "\n" + rule(width)
}

// MenuView renders the options menu right-aligned, or "" when closed.
func (t *TripDetails) MenuView(width int) string {
	if !t.menuOpen {
		return ""
	}

	itemWidth := 0
	for _, item := range MenuItems {
		if w := lipgloss.Width(menuIcons[item] + " " + item); w > itemWidth {
			itemWidth = w
		}
	}

	var parts []string
	for i, item := range MenuItems {
		if i > 0 {
			parts = append(parts, RuleStyle.Render(strings.Repeat("─", itemWidth)))
		}
		parts = append(parts, menuIcons[item]+" "+item)
	}

	box := MenuStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, box)
}
