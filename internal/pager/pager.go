// Package pager accumulates chat history one page at a time.
//
// Each page is reversed before it is appended so the accumulated list can be
// rendered inverted: index 0 is the newest message and sits at the bottom of
// the screen, later indexes scroll upward into older history.
//
// A single loading flag guards against overlapping requests. A call made
// while a request is in flight is dropped, not queued. Pages are applied in
// strictly increasing order because the counter only advances after a
// successful append.
package pager

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/zhubert/chatview/internal/api"
	"github.com/zhubert/chatview/internal/chat"
)

// State is a read-only snapshot of the pagination state.
type State struct {
	// Page is the next page index to request.
	Page int
	// Loading is true while a request is in flight.
	Loading bool
	// Exhausted is set once the endpoint returns an empty page.
	Exhausted bool
	// Messages is the accumulated, display-ordered history.
	Messages []chat.Message
	// Trip is the metadata of the first successful page.
	Trip    chat.Trip
	HasTrip bool
}

// Pager owns the pagination state. All mutation goes through Begin and
// Complete (or Fetch, which wraps both).
type Pager struct {
	fetcher api.Fetcher
	logger  *slog.Logger

	mu     sync.Mutex
	state  State
	closed bool
}

// New creates a pager at page 0 with no messages.
func New(fetcher api.Fetcher, logger *slog.Logger) *Pager {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pager{fetcher: fetcher, logger: logger}
}

// Begin claims the loading guard for a request of the given page. It
// returns false, changing nothing, when a request is already in flight or
// no further requests should be made.
func (p *Pager) Begin(page int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state.Loading || p.state.Exhausted || p.closed {
		p.logger.Debug("page request dropped",
			"page", page,
			"loading", p.state.Loading,
			"exhausted", p.state.Exhausted,
			"closed", p.closed,
		)
		return false
	}
	p.state.Loading = true
	return true
}

// Complete applies the outcome of a request started with Begin and always
// releases the loading guard. A failed page is logged and skipped without
// advancing the page counter. It reports whether the page was appended.
func (p *Pager) Complete(page int, result *chat.Page, err error) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state.Loading = false

	if p.closed {
		p.logger.Debug("discarding page after close", "page", page)
		return false
	}
	if err != nil {
		p.logger.Error("fetching chat page", "page", page, "error", err)
		return false
	}
	if result == nil {
		p.logger.Error("fetching chat page", "page", page, "error", "nil page")
		return false
	}

	if !p.state.HasTrip {
		p.state.Trip = result.Trip()
		p.state.HasTrip = true
	}
	p.state.Messages = append(p.state.Messages, result.Reversed()...)
	p.state.Page = page + 1
	if len(result.Chats) == 0 {
		p.state.Exhausted = true
	}

	p.logger.Info("chat page applied",
		"page", page,
		"received", len(result.Chats),
		"total", len(p.state.Messages),
		"exhausted", p.state.Exhausted,
	)
	return true
}

// Fetch requests the given page and applies it. It is a no-op returning nil
// when the guard is held. Errors are logged and absorbed into the state; the
// error is also returned so synchronous callers can stop early.
func (p *Pager) Fetch(ctx context.Context, page int) error {
	if !p.Begin(page) {
		return nil
	}
	result, err := p.fetcher.FetchPage(ctx, page)
	p.Complete(page, result, err)
	return err
}

// FetchNext requests the page index currently held in the state.
func (p *Pager) FetchNext(ctx context.Context) error {
	return p.Fetch(ctx, p.Snapshot().Page)
}

// Close stops the pager. Requests in flight may still finish but their
// results are discarded.
func (p *Pager) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}

// Snapshot returns a copy of the current state.
func (p *Pager) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.state
	s.Messages = append([]chat.Message(nil), p.state.Messages...)
	return s
}
