package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the single source of truth for client settings. Every module
// reads the base URL from here; nothing hardcodes a host.
type Config struct {
	BaseURL     string
	DataDir     string
	HTTPTimeout time.Duration
	LogFile     string
}

// fileConfig is the yaml shape; durations are strings there.
type fileConfig struct {
	BaseURL     string `yaml:"base_url"`
	DataDir     string `yaml:"data_dir"`
	HTTPTimeout string `yaml:"http_timeout"`
	LogFile     string `yaml:"log_file"`
}

const defaultBaseURL = "https://taboodi.com/api/"

func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dataDir := filepath.Join(home, ".workmanagement")
	return &Config{
		BaseURL:     defaultBaseURL,
		DataDir:     dataDir,
		HTTPTimeout: 10 * time.Second,
		LogFile:     filepath.Join(dataDir, "logs", "client.log"),
	}
}

// Load builds the config from defaults, then the yaml file under the data
// dir, then the environment. Environment wins. The log file follows the
// final data dir unless the file or the environment names one explicitly.
func Load() (*Config, error) {
	// Ignore a missing .env; it is optional in installed setups.
	_ = godotenv.Load()

	cfg := DefaultConfig()
	logFileSet := false

	if dir := os.Getenv("WORKMANAGEMENT_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}

	fc, err := readFile(filepath.Join(cfg.DataDir, "config.yaml"))
	if err != nil {
		return nil, err
	}
	if fc != nil {
		if fc.BaseURL != "" {
			cfg.BaseURL = fc.BaseURL
		}
		if fc.DataDir != "" {
			cfg.DataDir = fc.DataDir
		}
		if fc.LogFile != "" {
			cfg.LogFile = fc.LogFile
			logFileSet = true
		}
		if fc.HTTPTimeout != "" {
			d, err := time.ParseDuration(fc.HTTPTimeout)
			if err != nil {
				return nil, fmt.Errorf("parse http_timeout in config file: %w", err)
			}
			cfg.HTTPTimeout = d
		}
	}

	if v := os.Getenv("WORKMANAGEMENT_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("WORKMANAGEMENT_API_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("WORKMANAGEMENT_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parse WORKMANAGEMENT_HTTP_TIMEOUT: %w", err)
		}
		cfg.HTTPTimeout = d
	}
	if v := os.Getenv("WORKMANAGEMENT_LOG_FILE"); v != "" {
		cfg.LogFile = v
		logFileSet = true
	}
	if !logFileSet {
		cfg.LogFile = filepath.Join(cfg.DataDir, "logs", "client.log")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 10 * time.Second
	}

	return cfg, nil
}

func readFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &fc, nil
}

// WriteDefault writes a starter config file, creating its directory.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	def := DefaultConfig()
	data, err := yaml.Marshal(fileConfig{
		BaseURL:     def.BaseURL,
		DataDir:     def.DataDir,
		HTTPTimeout: def.HTTPTimeout.String(),
		LogFile:     def.LogFile,
	})
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

// DatabasePath is the sqlite file holding session and cache state.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "client.db")
}
