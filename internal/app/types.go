package app

import "github.com/zhubert/chatview/internal/chat"

// PageLoadedMsg carries the outcome of one page request.
type PageLoadedMsg struct {
	Page   int
	Result *chat.Page
	Err    error
}
