package pager

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zhubert/chatview/internal/api"
	"github.com/zhubert/chatview/internal/chat"
	"github.com/zhubert/chatview/internal/mockserver"
)

// fakeFetcher serves canned pages and errors keyed by page index.
type fakeFetcher struct {
	mu     sync.Mutex
	pages  map[int]*chat.Page
	errs   map[int]error
	calls  []int
	block  chan struct{}
	called chan int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		pages: make(map[int]*chat.Page),
		errs:  make(map[int]error),
	}
}

func (f *fakeFetcher) FetchPage(ctx context.Context, page int) (*chat.Page, error) {
	f.mu.Lock()
	f.calls = append(f.calls, page)
	block, called := f.block, f.called
	f.mu.Unlock()

	if called != nil {
		called <- page
	}
	if block != nil {
		<-block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errs[page]; err != nil {
		return nil, err
	}
	if p, ok := f.pages[page]; ok {
		return p, nil
	}
	return &chat.Page{Chats: []chat.Message{}}, nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func makePage(prefix string, n int) *chat.Page {
	p := &chat.Page{Name: "No. 7 Trip", From: "A", To: "B", Status: "success"}
	for i := 0; i < n; i++ {
		p.Chats = append(p.Chats, chat.Message{
			ID:     fmt.Sprintf("%s%d", prefix, i),
			Sender: chat.Sender{UserID: "u", Self: i%2 == 0},
		})
	}
	return p
}

func ids(msgs []chat.Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.ID
	}
	return out
}

func TestPager_InitialState(t *testing.T) {
	t.Parallel()

	s := New(newFakeFetcher(), nil).Snapshot()
	require.Equal(t, 0, s.Page)
	require.False(t, s.Loading)
	require.False(t, s.Exhausted)
	require.Empty(t, s.Messages)
}

func TestPager_EndToEnd(t *testing.T) {
	t.Parallel()

	f := newFakeFetcher()
	f.pages[0] = makePage("a", 5)
	f.pages[1] = makePage("b", 3)
	p := New(f, nil)
	ctx := context.Background()

	require.NoError(t, p.Fetch(ctx, 0))
	s := p.Snapshot()
	require.Len(t, s.Messages, 5)
	require.Equal(t, 1, s.Page)
	require.False(t, s.Loading)
	require.Equal(t, []string{"a4", "a3", "a2", "a1", "a0"}, ids(s.Messages))

	// End of list reached: request the page captured from state.
	require.NoError(t, p.Fetch(ctx, s.Page))
	s = p.Snapshot()
	require.Len(t, s.Messages, 8)
	require.Equal(t, 2, s.Page)
	require.False(t, s.Loading)
	require.Equal(t,
		[]string{"a4", "a3", "a2", "a1", "a0", "b2", "b1", "b0"},
		ids(s.Messages),
	)

	require.True(t, s.HasTrip)
	require.Equal(t, "No. 7 Trip", s.Trip.Name)
}

func TestPager_SumOfPages(t *testing.T) {
	t.Parallel()

	sizes := []int{4, 1, 7, 2, 9}
	f := newFakeFetcher()
	want := 0
	for i, n := range sizes {
		f.pages[i] = makePage(fmt.Sprintf("p%d-", i), n)
		want += n
	}

	p := New(f, nil)
	for range sizes {
		require.NoError(t, p.FetchNext(context.Background()))
	}

	s := p.Snapshot()
	require.Len(t, s.Messages, want)
	require.Equal(t, len(sizes), s.Page)

	// Each page segment is the reverse of what the endpoint returned.
	offset := 0
	for i, n := range sizes {
		seg := s.Messages[offset : offset+n]
		require.Equal(t, ids(f.pages[i].Reversed()), ids(seg), "page %d", i)
		offset += n
	}
}

func TestPager_FailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	f := newFakeFetcher()
	f.pages[0] = makePage("a", 5)
	errNetwork := errors.New("network down")
	f.errs[1] = errNetwork
	p := New(f, nil)
	ctx := context.Background()

	require.NoError(t, p.Fetch(ctx, 0))

	err := p.Fetch(ctx, 1)
	require.ErrorIs(t, err, errNetwork)

	s := p.Snapshot()
	require.Len(t, s.Messages, 5)
	require.Equal(t, 1, s.Page)
	require.False(t, s.Loading)

	// A later trigger re-requests the same page.
	delete(f.errs, 1)
	f.pages[1] = makePage("b", 2)
	require.NoError(t, p.FetchNext(ctx))
	require.Len(t, p.Snapshot().Messages, 7)
	require.Equal(t, []int{0, 1, 1}, f.calls)
}

func TestPager_GuardDropsOverlappingRequests(t *testing.T) {
	t.Parallel()

	f := newFakeFetcher()
	f.pages[0] = makePage("a", 3)
	f.block = make(chan struct{})
	f.called = make(chan int, 1)
	p := New(f, nil)

	done := make(chan error, 1)
	go func() { done <- p.Fetch(context.Background(), 0) }()

	select {
	case <-f.called:
	case <-time.After(2 * time.Second):
		t.Fatal("fetch never started")
	}

	before := p.Snapshot()
	require.True(t, before.Loading)

	// Triggers while loading are no-ops.
	require.False(t, p.Begin(0))
	require.NoError(t, p.Fetch(context.Background(), 0))
	require.NoError(t, p.Fetch(context.Background(), 1))

	during := p.Snapshot()
	require.Equal(t, before.Page, during.Page)
	require.Equal(t, before.Messages, during.Messages)

	close(f.block)
	require.NoError(t, <-done)
	require.Equal(t, 1, f.callCount())
	require.Equal(t, 1, p.Snapshot().Page)
}

func TestPager_BeginComplete(t *testing.T) {
	t.Parallel()

	p := New(newFakeFetcher(), nil)

	require.True(t, p.Begin(0))
	require.True(t, p.Snapshot().Loading)
	require.False(t, p.Begin(0))

	require.True(t, p.Complete(0, makePage("x", 2), nil))
	require.False(t, p.Snapshot().Loading)

	require.True(t, p.Begin(1))
	require.False(t, p.Complete(1, nil, errors.New("boom")))
	require.False(t, p.Snapshot().Loading)

	require.True(t, p.Begin(1))
	require.False(t, p.Complete(1, nil, nil))
	s := p.Snapshot()
	require.False(t, s.Loading)
	require.Equal(t, 1, s.Page)
}

func TestPager_EmptyPageExhausts(t *testing.T) {
	t.Parallel()

	f := newFakeFetcher()
	f.pages[0] = makePage("a", 2)
	p := New(f, nil)
	ctx := context.Background()

	require.NoError(t, p.FetchNext(ctx))
	require.NoError(t, p.FetchNext(ctx)) // page 1 is empty
	s := p.Snapshot()
	require.True(t, s.Exhausted)
	require.Equal(t, 2, s.Page)
	require.Len(t, s.Messages, 2)

	require.False(t, p.Begin(s.Page))
	require.NoError(t, p.FetchNext(ctx))
	require.Equal(t, 2, f.callCount())
}

func TestPager_CloseDiscardsLateResults(t *testing.T) {
	t.Parallel()

	p := New(newFakeFetcher(), nil)
	require.True(t, p.Begin(0))
	p.Close()

	require.False(t, p.Complete(0, makePage("a", 4), nil))
	s := p.Snapshot()
	require.Empty(t, s.Messages)
	require.False(t, s.Loading)
	require.False(t, p.Begin(0))
}

func TestPager_SnapshotIsACopy(t *testing.T) {
	t.Parallel()

	p := New(newFakeFetcher(), nil)
	require.True(t, p.Begin(0))
	p.Complete(0, makePage("a", 2), nil)

	s := p.Snapshot()
	s.Messages[0].ID = "mutated"
	require.Equal(t, "a1", p.Snapshot().Messages[0].ID)
}

func TestPager_AgainstMockServer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(mockserver.New(*mockserver.Generate(23), 10, nil).Router())
	defer srv.Close()

	p := New(api.New(srv.URL, time.Second, nil), nil)
	ctx := context.Background()
	for i := 0; i < 10 && !p.Snapshot().Exhausted; i++ {
		require.NoError(t, p.FetchNext(ctx))
	}

	s := p.Snapshot()
	require.True(t, s.Exhausted)
	require.Len(t, s.Messages, 23)
	require.Equal(t, 4, s.Page)
	// Newest first: the last generated message leads the list.
	require.Equal(t, "msg-22", s.Messages[0].ID)
	require.Equal(t, "msg-0", s.Messages[22].ID)
	require.Equal(t, "Trip No. 66", s.Trip.Name)
}
