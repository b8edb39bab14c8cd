package ui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorPrimary    = lipgloss.Color("#7C3AED")
	ColorDim        = lipgloss.Color("#6B7280")
	ColorText       = lipgloss.Color("#E5E7EB")
	ColorBorder     = lipgloss.Color("#374151")
	ColorError      = lipgloss.Color("#EF4444")
	ColorSuccess    = lipgloss.Color("#10B981")
	ColorSelfBubble = lipgloss.Color("#1C63D5")
	ColorPeerBubble = lipgloss.Color("#2D3748")
	ColorAction     = lipgloss.Color("#008000")
)

// avatarColors is indexed by a hash of the sender's image URI.
var avatarColors = []lipgloss.Color{
	"#F59E0B", "#06B6D4", "#EC4899", "#84CC16", "#8B5CF6", "#F97316",
}

// Styles.
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorDim)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorDim)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	RuleStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	TripLabelStyle = lipgloss.NewStyle().
			Foreground(ColorDim)

	TripValueStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	SelfBubbleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorSelfBubble).
			Padding(0, 1)

	PeerBubbleStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorPeerBubble).
			Padding(0, 1)

	TimeStyle = lipgloss.NewStyle().
			Foreground(ColorDim).
			Italic(true)

	MenuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ActionButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(ColorAction).
				Padding(0, 1)

	FocusedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
)
