// Package mockserver serves fixture chat history in the remote endpoint's
// wire format so the client can be run and tested offline.
package mockserver

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zhubert/chatview/internal/api"
	"github.com/zhubert/chatview/internal/chat"
)

// DefaultPerPage is the number of messages served per page.
const DefaultPerPage = 10

// Server splits a full chat history into pages. Page 0 holds the newest
// messages; each page keeps chronological order internally.
type Server struct {
	history chat.Page
	perPage int
	failing map[int]bool
	logger  *slog.Logger
}

// New creates a server for the given history. Messages in history.Chats
// are expected oldest first.
func New(history chat.Page, perPage int, logger *slog.Logger) *Server {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{
		history: history,
		perPage: perPage,
		failing: make(map[int]bool),
		logger:  logger,
	}
}

// FailPage makes requests for the given page answer with 500.
func (s *Server) FailPage(page int) {
	s.failing[page] = true
}

// PageCount returns the number of non-empty pages.
func (s *Server) PageCount() int {
	n := len(s.history.Chats)
	return (n + s.perPage - 1) / s.perPage
}

// Page returns page n. Pages past the end are empty.
func (s *Server) Page(n int) chat.Page {
	p := chat.Page{
		Chats:  []chat.Message{},
		From:   s.history.From,
		To:     s.history.To,
		Name:   s.history.Name,
		Status: s.history.Status,
	}

	total := len(s.history.Chats)
	end := total - n*s.perPage
	if n < 0 || end <= 0 {
		return p
	}
	start := end - s.perPage
	if start < 0 {
		start = 0
	}
	p.Chats = append(p.Chats, s.history.Chats[start:end]...)
	return p
}

// Router returns the HTTP handler exposing the chat endpoint.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.logRequests)
	r.Get(api.ChatPath, s.handleChat)
	return r
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		raw = "0"
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		respondError(w, http.StatusBadRequest, fmt.Errorf("invalid page %q", raw))
		return
	}
	if s.failing[n] {
		respondError(w, http.StatusInternalServerError, fmt.Errorf("page %d unavailable", n))
		return
	}
	respondJSON(w, s.Page(n))
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("mock request",
			"method", r.Method,
			"url", r.URL.String(),
			"request_id", r.Header.Get("X-Request-Id"),
			"elapsed", time.Since(start),
		)
	})
}

func respondJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(struct {
		Error  string `json:"error"`
		Status int    `json:"status"`
	}{Error: err.Error(), Status: status})
}

// LoadFixture reads a full history from a JSON file in the endpoint's
// page format.
func LoadFixture(path string) (*chat.Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}

	var p chat.Page
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &p, nil
}
