package ui

import "sync"

// ViewContext holds terminal sizing information used by all components.
type ViewContext struct {
	TerminalWidth  int
	TerminalHeight int
	ContentHeight  int

	mu sync.Mutex
}

var (
	viewContext *ViewContext
	ctxOnce     sync.Once
)

// GetViewContext returns the singleton ViewContext.
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		viewContext = &ViewContext{TerminalWidth: 80, TerminalHeight: 24}
		viewContext.ContentHeight = contentHeight(24, 0)
	})
	return viewContext
}

// UpdateTerminalSize records the terminal size and derives the height left
// for the message list once chrome lines are taken out.
func (v *ViewContext) UpdateTerminalSize(width, height, chrome int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.ContentHeight = contentHeight(height, chrome)
}

func contentHeight(height, chrome int) int {
	if chrome <= 0 {
		chrome = ChromeHeight
	}
	h := height - chrome
	if h < 1 {
		h = 1
	}
	return h
}
