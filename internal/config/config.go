// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config resolves cmd/weaken's defaults from a weaken.yaml file,
// environment variables, and flags, in that increasing order of
// precedence, via github.com/spf13/viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Default values for the keys this package resolves. BoundMin and
// BoundGrowth mirror original_source/src/iterative_weaken.py's BOUND_MIN
// and its 1.5x bound-growth factor for internal/iterate's outer loop.
const (
	DefaultLogLevel    = "info"
	DefaultBoundMin    = 30
	DefaultBoundGrowth = 1.5
)

// Config holds cmd/weaken's resolved settings. Zero value is not valid;
// construct with Load.
type Config struct {
	v *viper.Viper
}

// Load builds a Config by searching, in order, for weaken.yaml in the
// current directory, $XDG_CONFIG_HOME/weaken, and $HOME/.weaken,
// stopping at the first one found. A missing file is not an error: the
// defaults below stand in its place. Environment variables prefixed
// WEAKEN_ take precedence over the file; flags bound to the returned
// Config via BindFlag take precedence over those.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("weaken")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "weaken"))
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(homeDir, ".weaken"))
	}

	v.SetEnvPrefix("WEAKEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log-level", DefaultLogLevel)
	v.SetDefault("bound-min", DefaultBoundMin)
	v.SetDefault("bound-growth", DefaultBoundGrowth)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("config: reading weaken.yaml: %w", err)
		}
	}

	return &Config{v: v}, nil
}

// BindFlag ties a cobra/pflag flag to key, so that an explicitly-set
// flag value outranks the file and environment.
func (c *Config) BindFlag(key string, flag *pflag.Flag) error {
	return c.v.BindPFlag(key, flag)
}

// LogLevel returns the configured zap level name ("debug", "info",
// "warn", or "error").
func (c *Config) LogLevel() string {
	return c.v.GetString("log-level")
}

// BoundMin returns the minimum starting bound internal/iterate uses
// when a subformula's interval is unbounded.
func (c *Config) BoundMin() int {
	return c.v.GetInt("bound-min")
}

// BoundGrowth returns the multiplier internal/iterate applies to a
// witnessed interval's upper bound to size the next iteration's
// exploration window.
func (c *Config) BoundGrowth() float64 {
	return c.v.GetFloat64("bound-growth")
}

// ConfigFileUsed returns the path of the weaken.yaml file that was
// loaded, or "" if none was found.
func (c *Config) ConfigFileUsed() string {
	return c.v.ConfigFileUsed()
}
