package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"PrologFront/internal/logger"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable holding an explicit config path.
const EnvVar = "PROLOGFRONT_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Server  ServerConfig  `toml:"server"`
	Output  OutputConfig  `toml:"output"`
	TUI     TUIConfig     `toml:"tui"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogDir   string `toml:"log_dir"`
	LogLevel string `toml:"log_level"`
}

// ServerConfig holds the analysis server settings
type ServerConfig struct {
	Host         string   `toml:"host"`
	Port         int      `toml:"port"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
}

// OutputConfig holds defaults for the parse and check commands
type OutputConfig struct {
	Format  string `toml:"format"`
	Tree    string `toml:"tree"`
	Verbose bool   `toml:"verbose"`
}

// TUIConfig holds terminal UI settings. An empty Remote runs an embedded
// server.
type TUIConfig struct {
	Remote string `toml:"remote"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadDefault loads the file named by PROLOGFRONT_CONFIG, or the first of
// the default locations that exists. Without any file the defaults are
// returned.
func LoadDefault() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

func defaultPaths() []string {
	paths := []string{"./prologfront.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "prologfront", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogDir == "" {
		c.General.LogDir = "logs"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}

	if c.Server.Host == "" {
		c.Server.Host = "localhost"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout.Duration == 0 {
		c.Server.ReadTimeout.Duration = 10 * time.Second
	}
	if c.Server.WriteTimeout.Duration == 0 {
		c.Server.WriteTimeout.Duration = 30 * time.Second
	}

	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Output.Tree == "" {
		c.Output.Tree = "pretty"
	}
}

func (c *Config) expandEnvVars() {
	c.General.LogDir = os.ExpandEnv(c.General.LogDir)
	c.TUI.Remote = os.ExpandEnv(c.TUI.Remote)
}

// Validate checks values the defaults cannot repair.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.General.LogLevel); err != nil {
		return err
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	switch strings.ToLower(c.Output.Format) {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	switch c.Output.Tree {
	case "pretty", "bracket":
	default:
		return fmt.Errorf("unknown tree style %q", c.Output.Tree)
	}
	return nil
}

// LogLevel returns the parsed general log level, INFO when invalid.
func (c *Config) LogLevel() logger.LogLevel {
	level, err := logger.ParseLevel(c.General.LogLevel)
	if err != nil {
		return logger.INFO
	}
	return level
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
