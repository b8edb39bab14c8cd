package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	cfgDir := filepath.Join(dir, DirName)
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(cfgDir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	c := Default()
	if c.Endpoint != DefaultEndpoint {
		t.Errorf("Endpoint = %q, want %q", c.Endpoint, DefaultEndpoint)
	}
	if c.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %s, want %s", c.Timeout, DefaultTimeout)
	}
	if c.ReplyTo != DefaultReplyTo {
		t.Errorf("ReplyTo = %q, want %q", c.ReplyTo, DefaultReplyTo)
	}
	if c.Markdown {
		t.Error("Markdown should default to false")
	}
	if c.ShowErrors {
		t.Error("ShowErrors should default to false")
	}
	if c.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", c.LogLevel, DefaultLogLevel)
	}
}

func TestConfig_LoadFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    Config
		wantErr bool
	}{
		{
			name: "all fields",
			body: "endpoint: http://localhost:8080\ntimeout: 5s\nreply_to: Meera\nmarkdown: true\nlog_level: warn\nshow_errors: true\n",
			want: Config{Endpoint: "http://localhost:8080", Timeout: 5 * time.Second, ReplyTo: "Meera", Markdown: true, LogLevel: "warn", ShowErrors: true},
		},
		{
			name: "partial keeps defaults",
			body: "timeout: 2m\n",
			want: Config{Endpoint: DefaultEndpoint, Timeout: 2 * time.Minute, ReplyTo: DefaultReplyTo, LogLevel: DefaultLogLevel},
		},
		{
			name: "empty file",
			body: "",
			want: *Default(),
		},
		{
			name:    "bad duration",
			body:    "timeout: soon\n",
			wantErr: true,
		},
		{
			name:    "negative duration",
			body:    "timeout: -1s\n",
			wantErr: true,
		},
		{
			name:    "unknown log level",
			body:    "log_level: chatty\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			body:    "endpoint: [unclosed\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeConfig(t, t.TempDir(), tt.body)

			c := Default()
			err := c.LoadFile(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFile() error: %v", err)
			}
			if *c != tt.want {
				t.Errorf("LoadFile() = %+v, want %+v", *c, tt.want)
			}
		})
	}
}

func TestConfig_LoadFileMissing(t *testing.T) {
	t.Parallel()

	c := Default()
	if err := c.LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	// Cannot run in parallel: modifies HOME.
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, "endpoint: http://global\nreply_to: Global\n")

	work := t.TempDir()
	writeConfig(t, work, "endpoint: http://project\n")

	c, err := Load(work)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Endpoint != "http://project" {
		t.Errorf("Endpoint = %q, want project value", c.Endpoint)
	}
	if c.ReplyTo != "Global" {
		t.Errorf("ReplyTo = %q, want global value", c.ReplyTo)
	}
}

func TestLoad_NoFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *c != *Default() {
		t.Errorf("Load() = %+v, want defaults", *c)
	}
}

func TestLoad_MalformedProject(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	work := t.TempDir()
	writeConfig(t, work, "timeout: nope\n")

	if _, err := Load(work); err == nil {
		t.Error("expected error for malformed project config")
	}
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	c := &Config{Endpoint: "http://x", Timeout: 7 * time.Second, ReplyTo: "Ana", Markdown: true, LogLevel: "error", ShowErrors: true}
	if err := c.Save(dir); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got := Default()
	if err := got.LoadFile(Path(dir)); err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if *got != *c {
		t.Errorf("round trip = %+v, want %+v", *got, *c)
	}
}
