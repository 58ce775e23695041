package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BaseURL != "https://taboodi.com/api/" {
		t.Errorf("unexpected default base url %q", cfg.BaseURL)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("unexpected default timeout %v", cfg.HTTPTimeout)
	}
	if cfg.DataDir == "" || cfg.LogFile == "" {
		t.Error("expected data dir and log file defaults")
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WORKMANAGEMENT_DATA_DIR", dir)
	t.Setenv("WORKMANAGEMENT_API_BASE_URL", "http://localhost:9000/api/")
	t.Setenv("WORKMANAGEMENT_HTTP_TIMEOUT", "3s")
	t.Setenv("WORKMANAGEMENT_LOG_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "http://localhost:9000/api/" {
		t.Errorf("expected env base url, got %q", cfg.BaseURL)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Errorf("expected env timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.DataDir != dir {
		t.Errorf("expected env data dir, got %q", cfg.DataDir)
	}
	if cfg.DatabasePath() != filepath.Join(dir, "client.db") {
		t.Errorf("unexpected database path %q", cfg.DatabasePath())
	}
}

func TestInvalidTimeoutRejected(t *testing.T) {
	t.Setenv("WORKMANAGEMENT_DATA_DIR", t.TempDir())
	t.Setenv("WORKMANAGEMENT_HTTP_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an unparseable timeout")
	}
}

func TestYamlFileOverridesDefaultsAndEnvWins(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WORKMANAGEMENT_DATA_DIR", dir)
	t.Setenv("WORKMANAGEMENT_API_BASE_URL", "")
	t.Setenv("WORKMANAGEMENT_HTTP_TIMEOUT", "")
	t.Setenv("WORKMANAGEMENT_LOG_FILE", "")

	yaml := "base_url: http://file.example/api/\nhttp_timeout: 7s\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "http://file.example/api/" {
		t.Errorf("expected file base url, got %q", cfg.BaseURL)
	}
	if cfg.HTTPTimeout != 7*time.Second {
		t.Errorf("expected file timeout, got %v", cfg.HTTPTimeout)
	}

	t.Setenv("WORKMANAGEMENT_API_BASE_URL", "http://env.example/api/")
	cfg, err = Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "http://env.example/api/" {
		t.Errorf("env must override the file, got %q", cfg.BaseURL)
	}
}

func TestLogFileFollowsFileDataDir(t *testing.T) {
	dir := t.TempDir()
	otherDir := t.TempDir()
	t.Setenv("WORKMANAGEMENT_DATA_DIR", dir)
	t.Setenv("WORKMANAGEMENT_API_BASE_URL", "")
	t.Setenv("WORKMANAGEMENT_HTTP_TIMEOUT", "")
	t.Setenv("WORKMANAGEMENT_LOG_FILE", "")

	yaml := "data_dir: " + otherDir + "\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	// The data dir from the file moved, so the derived log path moves too.
	// But the env data dir wins over the file, and the log path follows it.
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataDir != dir {
		t.Errorf("env data dir must win over the file, got %q", cfg.DataDir)
	}
	if cfg.LogFile != filepath.Join(dir, "logs", "client.log") {
		t.Errorf("expected the log file under the final data dir, got %q", cfg.LogFile)
	}

	t.Setenv("WORKMANAGEMENT_DATA_DIR", "")
	t.Setenv("HOME", dir)
	// With no env data dir the file's data_dir stands; look for the config
	// file under the default dir this time.
	if err := os.MkdirAll(filepath.Join(dir, ".workmanagement"), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".workmanagement", "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataDir != otherDir {
		t.Fatalf("expected the file data dir, got %q", cfg.DataDir)
	}
	if cfg.LogFile != filepath.Join(otherDir, "logs", "client.log") {
		t.Errorf("expected the log file to follow the file data dir, got %q", cfg.LogFile)
	}
}

func TestExplicitLogFileIsKept(t *testing.T) {
	dir := t.TempDir()
	otherDir := t.TempDir()
	t.Setenv("WORKMANAGEMENT_DATA_DIR", dir)
	t.Setenv("WORKMANAGEMENT_API_BASE_URL", "")
	t.Setenv("WORKMANAGEMENT_HTTP_TIMEOUT", "")
	t.Setenv("WORKMANAGEMENT_LOG_FILE", "")

	yaml := "data_dir: " + otherDir + "\nlog_file: /var/log/wm.log\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogFile != "/var/log/wm.log" {
		t.Errorf("an explicit log_file must not be recomputed, got %q", cfg.LogFile)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
}
