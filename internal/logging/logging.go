// Package logging writes structured logs to a file. The terminal belongs to
// the chat screen, so nothing is logged to stdout or stderr.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the log file inside the log directory.
const FileName = "debug.log"

// Options controls where records go and which are kept.
type Options struct {
	// Dir holds the log file. Empty selects ~/.chatview.
	Dir string
	// Level is the minimum level written. Nil means debug.
	Level slog.Leveler
	// Command, when set, is attached to every record.
	Command string
}

// Setup creates a JSON logger writing to Dir/debug.log.
// It returns the logger, a cleanup function that closes the file, and any error.
// The file is truncated so it only holds the current run.
func Setup(opts Options) (*slog.Logger, func() error, error) {
	dir := opts.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".chatview")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	level := opts.Level
	if level == nil {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	if opts.Command != "" {
		logger = logger.With("command", opts.Command)
	}

	return logger, f.Close, nil
}

// ParseLevel accepts debug, info, warn or error in any case.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("parsing log level %q: %w", s, err)
	}
	return l, nil
}
