package environment

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/programme-lv/gradebook/internal/logging"
	"github.com/programme-lv/gradebook/internal/xdg"
)

const (
	AppName        = "gradebook"
	ConfigFileName = "config.toml"
)

type Config struct {
	LogLevel    string `toml:"log_level"`
	NoColor     bool   `toml:"no_color"`
	Parallelism int    `toml:"parallelism"`
}

func Default() Config {
	return Config{
		LogLevel:    "warn",
		NoColor:     false,
		Parallelism: 4,
	}
}

// fileConfig distinguishes unset keys from zero values.
type fileConfig struct {
	LogLevel    *string `toml:"log_level"`
	NoColor     *bool   `toml:"no_color"`
	Parallelism *int    `toml:"parallelism"`
}

// ReadConfig layers, in increasing priority: defaults, the TOML config file
// and the environment (including a .env file in the working directory).
// An empty path means the XDG config location, which may be absent.
func ReadConfig(path string) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := Default()

	if path == "" {
		path, _ = xdg.New().FindConfig(AppName, ConfigFileName)
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	if fc.NoColor != nil {
		c.NoColor = *fc.NoColor
	}
	if fc.Parallelism != nil {
		c.Parallelism = *fc.Parallelism
	}
	return nil
}

func (c *Config) loadEnv() error {
	if v, ok := os.LookupEnv("GRADEBOOK_LOG_LEVEL"); ok {
		c.LogLevel = v
	}

	// https://no-color.org: any non-empty value disables color
	if v := os.Getenv("NO_COLOR"); v != "" {
		c.NoColor = true
	}
	if v, ok := os.LookupEnv("GRADEBOOK_NO_COLOR"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid GRADEBOOK_NO_COLOR %q: %w", v, err)
		}
		c.NoColor = b
	}

	if v, ok := os.LookupEnv("GRADEBOOK_PARALLELISM"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid GRADEBOOK_PARALLELISM %q: %w", v, err)
		}
		c.Parallelism = n
	}
	return nil
}

func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("invalid configuration: parallelism must be at least 1, got %d", c.Parallelism)
	}
	return nil
}

// Level returns the parsed log level. Call Validate first.
func (c *Config) Level() slog.Level {
	lvl, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return lvl
}
