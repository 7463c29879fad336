package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by LoadHostConfig.
const (
	EnvConfigPath = "IMAGE_URL_MCP_CONFIG"
	EnvBaseURL    = "IMAGE_URL_MCP_BASE_URL"
	EnvOrigin     = "IMAGE_URL_MCP_ORIGIN"
	EnvProject    = "IMAGE_URL_MCP_PROJECT"
	EnvFormat     = "IMAGE_URL_MCP_FORMAT"
)

// envFiles are tried in order; variables already present in the process
// environment are never overwritten.
var envFiles = []string{".env", ".env.local"}

// HostConfig is the MCP server's configuration.
type HostConfig struct {
	// BaseURL is passed to Configure at startup.
	BaseURL string `yaml:"base_url"`

	// Origin is the page origin offered as the last-resort base URL when
	// neither a per-call nor a configured base URL is available.
	Origin string `yaml:"origin"`

	// Project is the default project slug for tool calls that omit one.
	Project string `yaml:"project"`

	// Format is the default output format for tool calls that omit one.
	Format string `yaml:"format"`

	// DeviceBreakpoints overrides the default device widths when non-empty.
	DeviceBreakpoints []int `yaml:"device_breakpoints"`

	// ImageBreakpoints overrides the default icon widths when non-empty.
	ImageBreakpoints []int `yaml:"image_breakpoints"`
}

// LoadHostConfig builds a HostConfig from .env files in the working
// directory, the YAML file at path (skipped when path is empty), and the
// IMAGE_URL_MCP_* environment variables. Later sources win.
func LoadHostConfig(path string) (*HostConfig, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, err
	}

	hc := &HostConfig{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, hc); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnv(hc)

	if err := hc.Validate(); err != nil {
		return nil, err
	}
	return hc, nil
}

// Validate checks the format and breakpoint settings.
func (hc *HostConfig) Validate() error {
	switch hc.Format {
	case "", "webp", "png":
	default:
		return fmt.Errorf("invalid format %q: supported formats are webp and png", hc.Format)
	}
	for _, bp := range hc.DeviceBreakpoints {
		if bp <= 0 {
			return fmt.Errorf("device breakpoint %d must be a positive width", bp)
		}
	}
	for _, bp := range hc.ImageBreakpoints {
		if bp <= 0 {
			return fmt.Errorf("image breakpoint %d must be a positive width", bp)
		}
	}
	return nil
}

// Library returns the library configuration described by hc.
func (hc *HostConfig) Library() Config {
	return Config{BaseURL: hc.BaseURL}
}

// OriginProvider returns a function reporting hc.Origin, or nil when no
// origin is configured.
func (hc *HostConfig) OriginProvider() func() (string, bool) {
	if hc.Origin == "" {
		return nil
	}
	origin := hc.Origin
	return func() (string, bool) {
		return origin, true
	}
}

func loadEnvFiles() error {
	for _, name := range envFiles {
		err := godotenv.Load(name)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return fmt.Errorf("failed to load %s: %w", name, err)
	}
	return nil
}

func applyEnv(hc *HostConfig) {
	if v := os.Getenv(EnvBaseURL); v != "" {
		hc.BaseURL = v
	}
	if v := os.Getenv(EnvOrigin); v != "" {
		hc.Origin = v
	}
	if v := os.Getenv(EnvProject); v != "" {
		hc.Project = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		hc.Format = v
	}
}
