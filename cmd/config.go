package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zhubert/chatview/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage chatview settings",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the current settings to .chatview/config.yaml",
	Long: `Resolve settings from the default locations and flags, then write them
to .chatview/config.yaml in the current directory as a starting point.`,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path, err := writeConfig(workDir, cfg, configForce)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// writeConfig saves cfg under dir unless a settings file is already there.
func writeConfig(dir string, cfg *config.Config, force bool) (string, error) {
	path := config.Path(dir)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := cfg.Save(dir); err != nil {
		return "", err
	}
	return path, nil
}
