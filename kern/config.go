// Copyright 2025 veckern Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package kern

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config controls kernel selection policy. Precedence, highest first:
// environment variables (VECKERN_*), config file, built-in defaults.
//
// Example veckern.yaml:
//
//	acceleration:
//	  enabled: true
//	  preferred_tier: auto
type Config struct {
	Acceleration struct {
		// Enabled gates all accelerated tiers. False pins the scalar
		// baseline regardless of detection.
		Enabled bool `yaml:"enabled"`

		// PreferredTier is a variant hint tag ("avx2", "neon", ...) or
		// "auto". Applied as the default hint for every operation.
		PreferredTier string `yaml:"preferred_tier"`
	} `yaml:"acceleration"`
}

// DefaultConfig returns the built-in defaults: acceleration enabled,
// auto tier selection.
func DefaultConfig() Config {
	var c Config
	c.Acceleration.Enabled = true
	c.Acceleration.PreferredTier = "auto"
	return c
}

// LoadConfig reads a YAML config file and applies environment
// overrides (VECKERN_NO_SIMD, VECKERN_TIER). A missing file is not an
// error; defaults are used.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return c, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(&c)
	return c, nil
}

// FindConfigFile searches the standard locations for a veckern config
// file and returns the first one that exists, or "" when none is found.
// Search order:
//  1. VECKERN_CONFIG environment variable (explicit override)
//  2. Current working directory (veckern.yaml)
//  3. Same directory as the binary (veckern.yaml)
//  4. ~/.config/veckern/veckern.yaml (XDG user config)
//
// An empty result is fine to pass straight to LoadConfig; it then
// applies defaults and environment overrides only.
func FindConfigFile() string {
	var candidates []string

	if p := os.Getenv("VECKERN_CONFIG"); p != "" {
		candidates = append(candidates, p)
	}

	candidates = append(candidates, "veckern.yaml")

	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), "veckern.yaml"))
	}

	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "veckern", "veckern.yaml"))
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func applyEnv(c *Config) {
	if noSimdEnv() {
		c.Acceleration.Enabled = false
	}
	if tier := os.Getenv("VECKERN_TIER"); tier != "" {
		c.Acceleration.PreferredTier = tier
	}
}

var (
	configMu  sync.RWMutex
	activeCfg = DefaultConfig()
)

// Configure installs the selection policy. Intended to be called once
// at startup; safe to call concurrently with kernel invocations, which
// pick up the new policy on their next dispatch.
func Configure(c Config) {
	configMu.Lock()
	activeCfg = c
	configMu.Unlock()
}

// preferredHint resolves the configured policy to a variant hint tag.
// Disabled acceleration pins the baseline; "auto" (or anything
// unparseable) yields the empty hint, i.e. auto-selection.
func preferredHint() string {
	configMu.RLock()
	cfg := activeCfg
	configMu.RUnlock()

	if !cfg.Acceleration.Enabled {
		return TierScalar.String()
	}
	if _, ok := ParseTier(cfg.Acceleration.PreferredTier); ok {
		return cfg.Acceleration.PreferredTier
	}
	return ""
}
