// Package config loads chatview settings from YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zhubert/chatview/internal/logging"
)

const (
	// DirName is the per-user and per-project settings directory.
	DirName = ".chatview"
	// FileName is the settings file inside DirName.
	FileName = "config.yaml"

	DefaultEndpoint = "https://qa.corider.in"
	DefaultTimeout  = 30 * time.Second
	DefaultReplyTo  = "Rohit Yadav"
	DefaultLogLevel = "debug"
)

// Config holds the resolved settings.
type Config struct {
	Endpoint string
	Timeout  time.Duration
	ReplyTo  string
	Markdown bool
	LogLevel string
	// ShowErrors flashes failed page loads. Failures are silent by default.
	ShowErrors bool
}

// file is the on-disk shape. Timeout is kept as a string so users can
// write "10s".
type file struct {
	Endpoint string `yaml:"endpoint"`
	Timeout  string `yaml:"timeout"`
	ReplyTo  string `yaml:"reply_to"`
	Markdown *bool  `yaml:"markdown"`
	LogLevel string `yaml:"log_level"`

	ShowErrors *bool `yaml:"show_errors"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Endpoint: DefaultEndpoint,
		Timeout:  DefaultTimeout,
		ReplyTo:  DefaultReplyTo,
		LogLevel: DefaultLogLevel,
	}
}

// LoadFile merges the YAML file at path over c. Fields absent from the file
// keep their current value.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if f.Endpoint != "" {
		c.Endpoint = f.Endpoint
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("parsing timeout %q: %w", f.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", d)
		}
		c.Timeout = d
	}
	if f.ReplyTo != "" {
		c.ReplyTo = f.ReplyTo
	}
	if f.Markdown != nil {
		c.Markdown = *f.Markdown
	}
	if f.ShowErrors != nil {
		c.ShowErrors = *f.ShowErrors
	}
	if f.LogLevel != "" {
		if _, err := logging.ParseLevel(f.LogLevel); err != nil {
			return err
		}
		c.LogLevel = f.LogLevel
	}
	return nil
}

// loadIfExists is LoadFile that treats a missing file as empty.
func (c *Config) loadIfExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return c.LoadFile(path)
}

// Load resolves settings from defaults, then ~/.chatview/config.yaml, then
// .chatview/config.yaml in workDir. Later sources win.
func Load(workDir string) (*Config, error) {
	c := Default()

	if home, err := os.UserHomeDir(); err == nil {
		if err := c.loadIfExists(filepath.Join(home, DirName, FileName)); err != nil {
			return nil, fmt.Errorf("loading global config: %w", err)
		}
	}

	if workDir != "" {
		if err := c.loadIfExists(filepath.Join(workDir, DirName, FileName)); err != nil {
			return nil, fmt.Errorf("loading project config: %w", err)
		}
	}

	return c, nil
}

// Path returns the settings file location under dir.
func Path(dir string) string {
	return filepath.Join(dir, DirName, FileName)
}

// Save writes c to .chatview/config.yaml in dir.
func (c *Config) Save(dir string) error {
	cfgDir := filepath.Join(dir, DirName)
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return fmt.Errorf("creating %s directory: %w", DirName, err)
	}

	markdown, showErrors := c.Markdown, c.ShowErrors
	data, err := yaml.Marshal(&file{
		Endpoint:   c.Endpoint,
		Timeout:    c.Timeout.String(),
		ReplyTo:    c.ReplyTo,
		Markdown:   &markdown,
		LogLevel:   c.LogLevel,
		ShowErrors: &showErrors,
	})
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
