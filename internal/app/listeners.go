package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zhubert/chatview/internal/api"
)

// fetchPage returns a command that requests one page off the update loop
// and reports the outcome as a PageLoadedMsg.
func fetchPage(ctx context.Context, fetcher api.Fetcher, page int) tea.Cmd {
	return func() tea.Msg {
		result, err := fetcher.FetchPage(ctx, page)
		return PageLoadedMsg{Page: page, Result: result, Err: err}
	}
}
