// Package config resolves battle settings from defaults, an optional
// config file and MANCALA_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Bowls  int    `mapstructure:"bowls"`
	Stones int    `mapstructure:"stones"`
	Depth  int    `mapstructure:"depth"`
	Red    string `mapstructure:"red"`
	Blue   string `mapstructure:"blue"`
}

// Load reads the configuration. cfgPath may be empty, in which case only
// defaults and environment variables apply.
func Load(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("bowls", 6)
	v.SetDefault("stones", 4)
	v.SetDefault("depth", 5)
	v.SetDefault("red", "user")
	v.SetDefault("blue", "alphabeta")

	v.SetEnvPrefix("mancala")
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Bowls < 1 {
		return errors.New("config: bowls must be at least 1")
	}
	if c.Stones < 1 {
		return errors.New("config: stones must be at least 1")
	}
	if c.Depth < 0 {
		return errors.New("config: depth must not be negative")
	}
	return nil
}
