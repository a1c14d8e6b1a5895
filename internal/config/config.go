// Package config handles configuration loading and defaults.
//
// Sources in priority order: defaults, a taskloop.toml or .taskloop.toml
// in the working directory, the TASKLOOP_FILE environment variable,
// then CLI flags.
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the persisted file name when nothing overrides it.
const DefaultFile = "todos.csv"

// Config holds the full configuration for taskloop.
type Config struct {
	File     string `toml:"file"`
	Plain    bool   `toml:"plain"`
	DebugLog string `toml:"debug_log"`
}

// Load resolves configuration from all sources and parses args with fs.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{File: DefaultFile}

	for _, name := range []string{"taskloop.toml", ".taskloop.toml"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if _, err := toml.DecodeFile(name, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", name, err)
		}
		break
	}

	if v := os.Getenv("TASKLOOP_FILE"); v != "" {
		cfg.File = v
	}

	fs.StringVar(&cfg.File, "f", cfg.File, "todo file path")
	fs.BoolVar(&cfg.Plain, "plain", cfg.Plain, "force the plain line interface")
	fs.StringVar(&cfg.DebugLog, "debug-log", cfg.DebugLog, "write a debug log to this file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.File == "" {
		return nil, fmt.Errorf("todo file path is empty")
	}
	return cfg, nil
}
