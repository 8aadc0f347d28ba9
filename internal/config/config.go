package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Mode string

const (
	ModeMock   Mode = "mock"
	ModeLive   Mode = "live"
	ModeHybrid Mode = "hybrid"
)

type ProviderConfig struct {
	Enabled  bool              `yaml:"enabled"`
	Priority int               `yaml:"priority"`
	EnvKeys  map[string]string `yaml:"envKeys,omitempty"`
}

// Rates are the heuristic fallback rates used by the budget estimator when
// no real price data is available. DefaultHotelRate applies per night,
// DefaultTransportRate per person, MiscBufferRate per night per person
// (covers food and incidental activities).
type Rates struct {
	DefaultHotelRate     int `yaml:"defaultHotelRate"`
	DefaultTransportRate int `yaml:"defaultTransportRate"`
	MiscBufferRate       int `yaml:"miscBufferRate"`
}

type Config struct {
	Mode       Mode                      `yaml:"mode"`
	PlannerURL string                    `yaml:"plannerUrl,omitempty"`
	Providers  map[string]ProviderConfig `yaml:"providers"`
	Rates      Rates                     `yaml:"rates"`

	// AllowStaleResults disables the request sequence guard in the plan
	// orchestrator: overlapping generations race and the last response to
	// settle wins, matching the original client behavior.
	AllowStaleResults bool `yaml:"allowStaleResults"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode: ModeMock,
		Providers: map[string]ProviderConfig{
			"mock_planner": {Enabled: true, Priority: 100},
			"planner_http": {Enabled: true, Priority: 50, EnvKeys: map[string]string{"endpoint": "PLANNER_URL"}},
		},
		Rates: Rates{
			DefaultHotelRate:     150,
			DefaultTransportRate: 300,
			MiscBufferRate:       100,
		},
	}
}

func Load() *Config {
	cfg := DefaultConfig()

	if path := configPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	if envMode := os.Getenv("TRIP_MODE"); envMode != "" {
		switch strings.ToLower(envMode) {
		case "mock":
			cfg.Mode = ModeMock
		case "live":
			cfg.Mode = ModeLive
		case "hybrid":
			cfg.Mode = ModeHybrid
		}
	}

	if url := os.Getenv("PLANNER_URL"); url != "" {
		cfg.PlannerURL = url
	}

	if cfg.Rates.DefaultHotelRate <= 0 {
		cfg.Rates.DefaultHotelRate = 150
	}
	if cfg.Rates.DefaultTransportRate <= 0 {
		cfg.Rates.DefaultTransportRate = 300
	}
	if cfg.Rates.MiscBufferRate <= 0 {
		cfg.Rates.MiscBufferRate = 100
	}

	return cfg
}

func (c *Config) WithMode(mode string) *Config {
	if mode == "" {
		return c
	}
	switch strings.ToLower(mode) {
	case "mock":
		c.Mode = ModeMock
	case "live":
		c.Mode = ModeLive
	case "hybrid":
		c.Mode = ModeHybrid
	}
	return c
}

func (c *Config) ProviderHasCredentials(name string) bool {
	pc, ok := c.Providers[name]
	if !ok {
		return false
	}
	for _, envKey := range pc.EnvKeys {
		if os.Getenv(envKey) == "" {
			return false
		}
	}
	return true
}

func (c *Config) MissingCredentials(name string) []string {
	pc, ok := c.Providers[name]
	if !ok {
		return nil
	}
	var missing []string
	for label, envKey := range pc.EnvKeys {
		if os.Getenv(envKey) == "" {
			missing = append(missing, fmt.Sprintf("%s (%s)", label, envKey))
		}
	}
	return missing
}

func configPath() string {
	if p := os.Getenv("TRIP_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(home, ".config", "wanderbot", "trip.yaml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}
