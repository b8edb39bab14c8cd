package ui

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// NewMarkdown returns a body renderer. When enabled, bodies go through
// glamour; otherwise they are word-wrapped plain text.
func NewMarkdown(enabled bool) *Markdown {
	if !enabled {
		return &Markdown{}
	}

	var (
		mu        sync.Mutex
		renderers = make(map[int]*glamour.TermRenderer)
	)
	return &Markdown{
		render: func(text string, width int) (string, error) {
			mu.Lock()
			defer mu.Unlock()

			r, ok := renderers[width]
			if !ok {
				var err error
				r, err = glamour.NewTermRenderer(
					glamour.WithStandardStyle("dark"),
					glamour.WithWordWrap(width),
				)
				if err != nil {
					return "", err
				}
				renderers[width] = r
			}
			return r.Render(text)
		},
	}
}
