package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/chatview/internal/api"
	"github.com/zhubert/chatview/internal/chat"
	"github.com/zhubert/chatview/internal/pager"
	"github.com/zhubert/chatview/internal/ui"
)

var (
	dumpPages  int
	dumpWidth  int
	dumpStyled bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print chat history without the interactive screen",
	Long: `Fetch up to --pages pages of chat history and print them oldest at the
top, newest at the bottom, the way the chat screen shows them.`,
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().IntVar(&dumpPages, "pages", 1, "maximum number of pages to fetch")
	dumpCmd.Flags().IntVar(&dumpWidth, "width", 80, "line width for --styled output")
	dumpCmd.Flags().BoolVar(&dumpStyled, "styled", false, "render chat bubbles instead of plain lines")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	if dumpPages < 1 {
		return fmt.Errorf("--pages must be at least 1, got %d", dumpPages)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, cleanup, err := setupLogging(cfg, "dump")
	if err != nil {
		return err
	}
	defer cleanup()

	p := pager.New(api.New(cfg.Endpoint, cfg.Timeout, logger), logger)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	for i := 0; i < dumpPages && !p.Snapshot().Exhausted; i++ {
		if err := p.FetchNext(ctx); err != nil {
			return fmt.Errorf("loading history: %w", err)
		}
	}

	var md *ui.Markdown
	if dumpStyled {
		md = ui.NewMarkdown(cfg.Markdown)
	}
	return writeHistory(cmd.OutOrStdout(), p.Snapshot(), md, dumpWidth)
}

// writeHistory prints state inverted: the last accumulated message first.
// A nil md prints plain lines.
func writeHistory(w io.Writer, s pager.State, md *ui.Markdown, width int) error {
	var b strings.Builder

	name := chat.RemoveNo(s.Trip.Name)
	fmt.Fprintf(&b, "%s\nFrom %s\nTo %s\n", name, s.Trip.From, s.Trip.To)
	fmt.Fprintln(&b, strings.Repeat("─", 40))

	rows := ui.BuildRows(s.Messages)
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		if md != nil {
			fmt.Fprintln(&b, ui.RenderRow(row, width, md))
			continue
		}
		who := "you"
		if !row.Self {
			who = s.Messages[i].Sender.UserID
		}
		fmt.Fprintf(&b, "[%s] %s: %s\n", row.Time, who, row.Body)
	}

	fmt.Fprintf(&b, "\n%d messages, %d pages", len(s.Messages), s.Page)
	if s.Exhausted {
		b.WriteString(", end of history")
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
