package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/taskloop/internal/model"
	"github.com/idilsaglam/taskloop/internal/store/linestore"
	"github.com/idilsaglam/taskloop/internal/ui"
)

// Options tune runtime behavior from config and root flags.
type Options struct {
	File     string // todo file path
	Plain    bool   // force the plain line loop even on a TTY
	DebugLog string // debug log path, empty disables
}

// Run starts a session and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) > 0 {
		switch args[0] {
		case "help", "-h", "--help":
			PrintHelp()
			return 0
		}
		ui.Fail("unknown argument: " + args[0])
		fmt.Fprintln(os.Stderr)
		PrintHelp()
		return 2
	}

	logger, closeLog, err := newLogger(opt.DebugLog)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer closeLog()

	up := model.Updater{File: opt.File}
	store := linestore.FileStore{}

	if !opt.Plain && ui.IsTTY(os.Stdout) {
		if err := RunTUI(up, store, logger); err != nil {
			ui.Fail("tui: " + err.Error())
			return 1
		}
		return 0
	}

	loop := &Loop{Term: NewStdioTerminal(), Store: store, Update: up, Log: logger}
	loop.Run()
	return 0
}

func PrintHelp() {
	fmt.Printf(`taskloop - a tiny interactive todo list

Usage:
  taskloop [flags]

Flags:
  -f <path>          Todo file (default todos.csv)
  -plain             Plain line interface, no TUI
  -debug-log <path>  Write a debug log

Commands (typed at the prompt):
  a <name>    add a new todo
  d <n>       delete the todo at 1-based position <n>
  c <n>       mark the todo at 1-based position <n> as completed
  s           save todos to file
  q           quit
`)
}

// newLogger opens the debug log when configured. Stdout belongs to the
// rendered UI, so debug output always goes to a file.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
