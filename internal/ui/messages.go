package ui

import (
	"hash/fnv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zhubert/chatview/internal/chat"
)

// Row is the display form of one message.
type Row struct {
	Key      string
	Self     bool
	Avatar   string
	Verified bool
	Align    lipgloss.Position
	Body     string
	Time     string
	image    string
}

// BuildRows maps messages to rows without reordering them. Keys combine the
// message id with its position since ids repeat across pages.
func BuildRows(msgs []chat.Message) []Row {
	rows := make([]Row, len(msgs))
	for i, m := range msgs {
		r := Row{
			Key:  chat.RowKey(m.ID, i),
			Self: m.Sender.Self,
			Body: m.Message,
			Time: m.Time,
		}
		if m.Sender.Self {
			r.Align = lipgloss.Right
		} else {
			r.Align = lipgloss.Left
			r.Avatar = initials(m.Sender.UserID)
			r.Verified = m.Sender.IsKYCVerified
			r.image = m.Sender.Image
		}
		rows[i] = r
	}
	return rows
}

// initials returns up to two upper-case letters or digits from an id.
func initials(id string) string {
	var b strings.Builder
	n := 0
	for _, r := range id {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
			if n++; n == 2 {
				break
			}
		}
	}
	if n == 0 {
		return "?"
	}
	return b.String()
}

func avatarColor(image string) lipgloss.Color {
	h := fnv.New32a()
	_, _ = h.Write([]byte(image))
	return avatarColors[h.Sum32()%uint32(len(avatarColors))]
}

// bubbleWidth is the widest a bubble may be for a list of the given width.
func bubbleWidth(width int) int {
	w := width * 7 / 10
	if w < 12 {
		w = 12
	}
	return w
}

// RenderRow renders one row at the given list width. Self rows sit on the
// right with no avatar; other rows sit on the left behind an avatar badge.
func RenderRow(row Row, width int, md *Markdown) string {
	inner := bubbleWidth(width) - 2
	body := md.Render(row.Body, inner)

	var bubble string
	if row.Self {
		bubble = SelfBubbleStyle.Render(body)
	} else {
		bubble = PeerBubbleStyle.Render(body)
	}

	block := bubble
	if row.Time != "" {
		block = lipgloss.JoinVertical(row.Align, bubble, TimeStyle.Render(row.Time))
	}

	if !row.Self {
		badge := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#111827")).
			Background(avatarColor(row.image)).
			Bold(true).
			Render(" " + row.Avatar + " ")
		if row.Verified {
			badge += SuccessStyle.Render("✓")
		} else {
			badge += " "
		}
		block = lipgloss.JoinHorizontal(lipgloss.Top, badge, " ", block)
	}

	return lipgloss.PlaceHorizontal(width, row.Align, block)
}

// Markdown renders message bodies. A nil or disabled Markdown word-wraps
// plain text.
type Markdown struct {
	render func(text string, width int) (string, error)
}

// Render formats text to fit within width columns.
func (m *Markdown) Render(text string, width int) string {
	if width < 1 {
		width = 1
	}
	if m != nil && m.render != nil {
		if out, err := m.render(text, width); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return wordwrap.String(text, width)
}
