package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zhubert/chatview/internal/api"
	"github.com/zhubert/chatview/internal/app"
	"github.com/zhubert/chatview/internal/config"
	"github.com/zhubert/chatview/internal/logging"
	"github.com/zhubert/chatview/internal/version"
)

var (
	flagEndpoint string
	flagConfig   string
	flagTimeout  time.Duration
	flagMarkdown bool
)

var rootCmd = &cobra.Command{
	Use:     "chatview",
	Short:   "Browse a trip group chat in the terminal",
	Version: version.Version,
	RunE:    runTUI,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagEndpoint, "endpoint", "", "chat endpoint base URL (default "+config.DefaultEndpoint+")")
	pf.StringVar(&flagConfig, "config", "", "path to a config file loaded after the default locations")
	pf.DurationVar(&flagTimeout, "timeout", 0, "request timeout per page")
	pf.BoolVar(&flagMarkdown, "markdown", false, "render message bodies as markdown")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves settings from files, then flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Load(workDir)
	if err != nil {
		return nil, err
	}
	if flagConfig != "" {
		if err := cfg.LoadFile(flagConfig); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Endpoint = flagEndpoint
	}
	if flags.Changed("timeout") {
		if flagTimeout <= 0 {
			return nil, fmt.Errorf("timeout must be positive, got %s", flagTimeout)
		}
		cfg.Timeout = flagTimeout
	}
	if flags.Changed("markdown") {
		cfg.Markdown = flagMarkdown
	}
	return cfg, nil
}

// setupLogging opens the log file at the configured level, tagging records
// with the command name.
func setupLogging(cfg *config.Config, command string) (*slog.Logger, func(), error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	logger, closeLog, err := logging.Setup(logging.Options{Level: level, Command: command})
	if err != nil {
		return nil, nil, fmt.Errorf("setting up logging: %w", err)
	}
	return logger, func() {
		if cerr := closeLog(); cerr != nil {
			fmt.Fprintf(os.Stderr, "closing log file: %v\n", cerr)
		}
	}, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, cleanup, err := setupLogging(cfg, "tui")
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Info("starting chatview",
		"endpoint", cfg.Endpoint,
		"timeout", cfg.Timeout,
		"version", version.Version,
	)

	client := api.New(cfg.Endpoint, cfg.Timeout, logger)
	m := app.New(client, app.Options{
		ReplyTo:    cfg.ReplyTo,
		Markdown:   cfg.Markdown,
		ShowErrors: cfg.ShowErrors,
		Logger:     logger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
