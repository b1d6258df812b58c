package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	ConfigFileName = "config.yml"
	AppDirName     = "quickdl"

	// DefaultPort is the HTTP listen port when nothing else is configured.
	DefaultPort = 5000

	// DefaultDownloadDir is relative to the working directory, matching
	// what the frontend links to.
	DefaultDownloadDir = "downloads"

	// DefaultYtdlpPath resolves yt-dlp through PATH.
	DefaultYtdlpPath = "yt-dlp"
)

// ConfigDir returns the standard config directory for quickdl.
// Windows: %APPDATA%\quickdl\
// macOS/Linux: ~/.config/quickdl/
func ConfigDir() (string, error) {
	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, AppDirName), nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppDirName), nil
}

// ConfigPath returns the path to the config file.
// e.g., ~/.config/quickdl/config.yml
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

type Config struct {
	// Directory downloaded files are written to
	DownloadDir string `yaml:"download_dir,omitempty"`

	// Path to the yt-dlp binary (default: resolved via PATH)
	YtdlpPath string `yaml:"ytdlp_path,omitempty"`

	// ExtractTimeoutSec bounds each extractor call in seconds.
	// 0 means unbounded: the call runs until yt-dlp finishes.
	ExtractTimeoutSec int `yaml:"extract_timeout,omitempty"`

	// RetentionHours controls how long downloaded files are kept before
	// the background sweeper removes them. 0 disables cleanup entirely.
	RetentionHours int `yaml:"retention_hours,omitempty"`

	// Server configuration for `quickdl serve`
	Server ServerConfig `yaml:"server,omitempty"`
}

// ServerConfig holds HTTP server settings for `quickdl serve`
type ServerConfig struct {
	// Port is the HTTP listen port (default: 5000)
	Port int `yaml:"port,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		DownloadDir: DefaultDownloadDir,
		YtdlpPath:   DefaultYtdlpPath,
		Server: ServerConfig{
			Port: DefaultPort,
		},
	}
}

// Exists checks if config file exists
func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the config from ~/.config/quickdl/config.yml
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config to ~/.config/quickdl/config.yml
func Save(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	configPath, err := ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Add a header comment
	header := "# quickdl configuration file\n# Run 'quickdl init' to regenerate with defaults\n\n"
	content := header + string(data)

	return os.WriteFile(configPath, []byte(content), 0644)
}

// SavePath returns the path where config will be saved
func SavePath() string {
	if path, err := ConfigPath(); err == nil {
		return path
	}
	return ConfigFileName
}

// Init creates a new config.yml with default values
func Init() error {
	if Exists() {
		path, _ := ConfigPath()
		return fmt.Errorf("%s already exists", path)
	}
	return Save(DefaultConfig())
}

// LoadOrDefault loads config if it exists, otherwise returns defaults.
// Loaded configs are backfilled so callers never see zero values for
// fields that have defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return DefaultConfig()
	}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.DownloadDir == "" {
		cfg.DownloadDir = DefaultDownloadDir
	}
	if cfg.YtdlpPath == "" {
		cfg.YtdlpPath = DefaultYtdlpPath
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
}
