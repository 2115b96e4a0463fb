// Package config loads server configuration from a YAML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Listen is the address the HTTP server binds to.
	Listen string `yaml:"listen"`
	// DataDir is where the CLI session store keeps its files.
	DataDir string `yaml:"data_dir"`
	// DemoMode seeds the store with sample data and lets any password
	// log in.
	DemoMode bool `yaml:"demo_mode"`
	// JWTSecret signs API tokens. Required outside demo mode.
	JWTSecret string `yaml:"jwt_secret"`
	// AssistantSeed fixes the project generator's randomness. Zero
	// means seed from the clock.
	AssistantSeed int64 `yaml:"assistant_seed"`
	// AllowedOrigins is the CORS allowlist. Empty means allow all.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func Default() Config {
	return Config{
		Listen:   ":8080",
		DemoMode: true,
	}
}

// Load reads path when it is non-empty, then applies PLANORA_* env
// overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PLANORA_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("PLANORA_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("PLANORA_DEMO_MODE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.DemoMode = b
		}
	}
	if v := os.Getenv("PLANORA_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("PLANORA_ALLOWED_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		cfg.AllowedOrigins = cfg.AllowedOrigins[:0]
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, p)
			}
		}
	}
}

func (c Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("config: listen address is required")
	}
	if !c.DemoMode && c.JWTSecret == "" {
		return fmt.Errorf("config: jwt_secret is required outside demo mode")
	}
	return nil
}
