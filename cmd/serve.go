package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/zhubert/chatview/internal/chat"
	"github.com/zhubert/chatview/internal/mockserver"
)

var (
	serveAddr     string
	serveFixture  string
	serveMessages int
	servePerPage  int
	serveFail     []int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve fixture chat history over HTTP",
	Long: `Run a local stand-in for the chat endpoint. History comes from --fixture
(a JSON file in the endpoint's page format, oldest message first) or is
generated. Point the client at it with --endpoint http://localhost:8080.`,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&serveAddr, "addr", ":8080", "listen address")
	f.StringVar(&serveFixture, "fixture", "", "fixture file with the full history")
	f.IntVar(&serveMessages, "messages", 45, "number of generated messages when no fixture is given")
	f.IntVar(&servePerPage, "per-page", mockserver.DefaultPerPage, "messages per page")
	f.IntSliceVar(&serveFail, "fail-page", nil, "page indexes that answer with 500")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, cleanup, err := setupLogging(cfg, "serve")
	if err != nil {
		return err
	}
	defer cleanup()

	var history *chat.Page
	if serveFixture != "" {
		history, err = mockserver.LoadFixture(serveFixture)
		if err != nil {
			return err
		}
	} else {
		history = mockserver.Generate(serveMessages)
	}

	s := mockserver.New(*history, servePerPage, logger)
	for _, p := range serveFail {
		s.FailPage(p)
	}

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info("mock endpoint listening", "addr", serveAddr, "pages", s.PageCount())
	fmt.Fprintf(cmd.OutOrStdout(), "Serving %d messages in %d pages on %s\n",
		len(history.Chats), s.PageCount(), serveAddr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
