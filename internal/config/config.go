package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey is returned when no Gemini credential is configured.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

type Config struct {
	Server struct {
		Port           int      `yaml:"port"`
		StaticDir      string   `yaml:"staticDir"`
		MaxUploadMB    int      `yaml:"maxUploadMB"`
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"server"`

	Gemini struct {
		APIKey         string `yaml:"apiKey"`
		Model          string `yaml:"model"`
		BaseURL        string `yaml:"baseURL"`
		TimeoutSeconds int    `yaml:"timeoutSeconds"`
	} `yaml:"gemini"`

	Display struct {
		Timezone string `yaml:"timezone"`
	} `yaml:"display"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Default returns a config with every optional field filled in.
func Default() *Config {
	var c Config
	c.Server.Port = 3000
	c.Server.StaticDir = "public"
	c.Server.MaxUploadMB = 20
	c.Server.AllowedOrigins = []string{"*"}
	c.Gemini.Model = "gemini-1.5-flash"
	c.Gemini.TimeoutSeconds = 120
	c.Display.Timezone = "Local"
	c.Log.Level = "info"
	return &c
}

// Load baca file config.yaml (optional), lalu override dari environment.
// A missing file is not an error; a missing API key is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, err
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := getenv("GEMINI_MODEL"); v != "" {
		c.Gemini.Model = v
	}
	if v := getenv("GEMINI_BASE_URL"); v != "" {
		c.Gemini.BaseURL = v
	}
	if v := getenv("STATIC_DIR"); v != "" {
		c.Server.StaticDir = v
	}
	if v := getenv("TIMEZONE"); v != "" {
		c.Display.Timezone = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := getenv("MAX_UPLOAD_MB"); v != "" {
		mb, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid MAX_UPLOAD_MB %q: %w", v, err)
		}
		c.Server.MaxUploadMB = mb
	}
	return nil
}

// Validate checks the required credential and value ranges.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Gemini.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("invalid max upload size %d MB", c.Server.MaxUploadMB)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string { return fmt.Sprintf(":%d", c.Server.Port) }

// MaxUploadBytes converts the configured upload limit to bytes.
func (c *Config) MaxUploadBytes() int64 { return int64(c.Server.MaxUploadMB) << 20 }

// UpstreamTimeout is the HTTP timeout for calls to the AI provider.
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.Gemini.TimeoutSeconds) * time.Second
}

// Location resolves the display time zone; "" and "Local" mean time.Local.
func (c *Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Display.Timezone)
	if tz == "" || strings.EqualFold(tz, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}
	return loc, nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
