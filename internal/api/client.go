// Package api talks to the remote chat history endpoint.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zhubert/chatview/internal/chat"
	"github.com/zhubert/chatview/internal/version"
)

const (
	// ChatPath is the endpoint path for paged chat history.
	ChatPath = "/assignment/chat"

	// DefaultTimeout bounds a single page request.
	DefaultTimeout = 30 * time.Second

	maxBodySize = 4 * 1024 * 1024
)

var (
	// ErrStatus is returned when the endpoint answers with a non-200 status.
	ErrStatus = errors.New("unexpected status")
	// ErrMalformedPage is returned when the body has no chats array.
	ErrMalformedPage = errors.New("malformed chat page")
)

// Fetcher loads one page of chat history.
type Fetcher interface {
	FetchPage(ctx context.Context, page int) (*chat.Page, error)
}

// Client fetches chat pages over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// New creates a client for the given base URL, e.g. https://qa.corider.in.
// A zero timeout selects DefaultTimeout.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// PageURL returns the request URL for the given page index.
func (c *Client) PageURL(page int) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	return c.baseURL + ChatPath + "?" + q.Encode()
}

// wirePage mirrors chat.Page but keeps chats nullable so a missing array
// can be told apart from an empty one.
type wirePage struct {
	Chats   *[]chat.Message `json:"chats"`
	From    string          `json:"from"`
	To      string          `json:"to"`
	Name    string          `json:"name"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
}

// FetchPage requests a single page of chat history.
func (c *Client) FetchPage(ctx context.Context, page int) (*chat.Page, error) {
	if page < 0 {
		return nil, fmt.Errorf("invalid page %d", page)
	}

	reqID := uuid.NewString()
	target := c.PageURL(page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "chatview/"+version.Version)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page %d: %w", page, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("chat page response",
		"request_id", reqID,
		"page", page,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching page %d: %w: %s", page, ErrStatus, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading page %d: %w", page, err)
	}

	var wp wirePage
	if err := json.Unmarshal(body, &wp); err != nil {
		return nil, fmt.Errorf("decoding page %d: %w", page, err)
	}
	if wp.Chats == nil {
		return nil, fmt.Errorf("decoding page %d: %w: missing chats", page, ErrMalformedPage)
	}

	return &chat.Page{
		Chats:   *wp.Chats,
		From:    wp.From,
		To:      wp.To,
		Name:    wp.Name,
		Status:  wp.Status,
		Message: wp.Message,
	}, nil
}
