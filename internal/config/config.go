// Package config holds the explorer-web configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is used when neither a flag nor the runtime file names the backend.
const DefaultBaseURL = "http://localhost:8000"

// Config is filled from command line flags and the environment.
type Config struct {
	Addr            string        `long:"addr" env:"EXPLORER_ADDR" description:"http listen addr" default:":9000"`
	APIBaseURL      string        `long:"api-base-url" env:"EXPLORER_API_BASE_URL" description:"explorer backend base url"`
	RuntimeConfig   string        `long:"runtime-config" env:"EXPLORER_RUNTIME_CONFIG" description:"path to runtime yaml config"`
	HTTPTimeout     time.Duration `long:"http-timeout" env:"EXPLORER_HTTP_TIMEOUT" description:"backend request timeout" default:"10s"`
	RateLimit       int           `long:"rate-limit" env:"EXPLORER_RATE_LIMIT" description:"backend requests per second, 0 disables" default:"0"`
	RefreshInterval time.Duration `long:"refresh-interval" env:"EXPLORER_REFRESH_INTERVAL" description:"network info refresh interval" default:"30s"`
	Locale          string        `long:"locale" env:"EXPLORER_LOCALE" description:"BCP 47 locale for formatted values" default:"pt-BR"`
	Timezone        string        `long:"timezone" env:"EXPLORER_TIMEZONE" description:"IANA timezone for formatted dates" default:"UTC"`
	CORSOrigins     []string      `long:"cors-origin" env:"EXPLORER_CORS_ORIGINS" env-delim:"," description:"allowed CORS origin, repeatable"`
}

// RuntimeConfig is the optional YAML file deployed next to the binary.
type RuntimeConfig struct {
	APIBaseURL string `yaml:"api_base_url"`
}

// Parse reads flags from args (without the program name) and the environment.
func Parse(args []string) (Config, error) {
	var cfg Config
	if _, err := flags.NewParser(&cfg, flags.HelpFlag).ParseArgs(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	return cfg, nil
}

// LoadRuntime reads the runtime file. An empty path or a missing file yields
// an empty RuntimeConfig; a malformed file is an error.
func LoadRuntime(path string) (RuntimeConfig, error) {
	var rc RuntimeConfig
	if path == "" {
		return rc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return rc, nil
		}
		return rc, fmt.Errorf("read runtime config: %w", err)
	}
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return RuntimeConfig{}, fmt.Errorf("parse runtime config: %w", err)
	}
	return rc, nil
}

// ResolveBaseURL picks the explicit value, then the runtime file, then
// DefaultBaseURL, and trims trailing slashes.
func ResolveBaseURL(explicit string, runtime RuntimeConfig) string {
	base := DefaultBaseURL
	switch {
	case strings.TrimSpace(explicit) != "":
		base = strings.TrimSpace(explicit)
	case strings.TrimSpace(runtime.APIBaseURL) != "":
		base = strings.TrimSpace(runtime.APIBaseURL)
	}
	return strings.TrimRight(base, "/")
}

// Location loads the configured timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
