package app

import "github.com/charmbracelet/lipgloss"

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye.\n"
	}

	parts := []string{
		m.header.View(m.width),
		m.trip.View(m.width),
	}
	if menu := m.trip.MenuView(m.width); menu != "" {
		parts = append(parts, menu)
	}
	parts = append(parts, m.list.View())
	if bar := m.composer.AttachmentView(); bar != "" {
		parts = append(parts, bar)
	}
	parts = append(parts, m.composer.View(), m.footer.View(m.width))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
