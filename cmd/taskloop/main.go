package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/taskloop/internal/cli"
	"github.com/idilsaglam/taskloop/internal/config"
)

func main() {
	// Root flags are owned by the config layer so file and toml
	// settings share one resolution order.
	fs := flag.NewFlagSet("taskloop", flag.ContinueOnError)
	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	code := cli.Run(fs.Args(), cli.Options{
		File:     cfg.File,
		Plain:    cfg.Plain,
		DebugLog: cfg.DebugLog,
	})
	os.Exit(code)
}
