package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/philipp01105/unifiedlog/core"
	"github.com/philipp01105/unifiedlog/logger"
)

const envPrefix = "UNIFIEDLOG"

type config struct {
	Subsystem string `mapstructure:"subsystem"`
	Category  string `mapstructure:"category"`
	Level     string `mapstructure:"level"`
	Format    string `mapstructure:"format"`
	Echo      bool   `mapstructure:"echo"`
}

func registerFlags(flags *pflag.FlagSet) {
	flags.String("subsystem", "com.example.unifiedlog", "os_log subsystem")
	flags.String("category", "demo", "os_log category")
	flags.String("level", "trace", "minimum level: trace, debug, info, warn, error, critical, none")
	flags.String("format", "text", "echo format: text or json")
	flags.Bool("echo", false, "also write every entry to stdout")
}

// loadConfig merges flags with UNIFIEDLOG_* environment variables.
// Explicitly set flags win over the environment.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet) (*config, error) {
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *config) validate() error {
	if c.Category == "" {
		return fmt.Errorf("category must not be empty")
	}
	if _, ok := logger.LookupLevel(c.Level); !ok {
		return fmt.Errorf("unknown level %q", c.Level)
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q (want text or json)", c.Format)
	}
	return nil
}

func (c *config) level() core.Level {
	level, _ := logger.LookupLevel(c.Level)
	return level
}
