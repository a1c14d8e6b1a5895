// Package cli owns the interactive front ends: the plain line loop and
// the Bubble Tea program. Both drive the same pure core in
// internal/model; this package is the only place that blocks on I/O.
package cli

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/taskloop/internal/model"
	"github.com/idilsaglam/taskloop/internal/store/linestore"
	"github.com/idilsaglam/taskloop/internal/ui"
)

// Terminal is the line-oriented collaborator: write a fragment, write a
// full line, block for one line of input.
type Terminal interface {
	WriteString(s string) error
	WriteLine(s string) error
	ReadLine() (string, error)
}

// Store is the file collaborator. Whole-file reads and writes only.
type Store interface {
	ReadFile(name string) (string, error)
	WriteFile(name, data string) error
}

// Loop runs the synchronous update cycle: interpret the pending
// command, feed the resulting message through Update, repeat. One
// command is outstanding at a time.
type Loop struct {
	Term   Terminal
	Store  Store
	Update model.Updater
	Log    *log.Logger // nil disables debug logging
}

// Run drives the loop from the initial (empty listing, fetch) pair
// until a quit message shows up. Quit is recognized on the message
// value and never passed through Update.
func (l *Loop) Run() {
	var state model.State = model.Listing{}
	var cmd model.Cmd = model.Fetch{File: l.Update.File}
	for {
		msg := l.Interpret(state, cmd)
		if _, done := msg.(model.QuitMsg); done {
			return
		}
		state, cmd = l.Update.Update(msg, state)
		if l.Log != nil {
			l.Log.Debug("transition",
				"msg", fmt.Sprintf("%T", msg),
				"items", len(state.Items()),
				"cmd", fmt.Sprintf("%T", cmd))
		}
	}
}

// Interpret performs exactly one command and converts its outcome into
// the next message. File effects go through the store; the nil command
// renders the current state and blocks for one line of input.
func (l *Loop) Interpret(state model.State, cmd model.Cmd) model.Msg {
	switch c := cmd.(type) {
	case model.Persist:
		return persist(l.Store, c)
	case model.Fetch:
		return fetch(l.Store, c)
	}

	switch st := state.(type) {
	case model.Failed:
		l.Term.WriteLine(ui.ErrorLine(st.Message))
	case model.Listing:
		for _, ln := range ui.ListLines(st.List) {
			l.Term.WriteLine(ln)
		}
		for _, ln := range ui.UsageLines() {
			l.Term.WriteLine(ln)
		}
		if st.Status != "" {
			l.Term.WriteLine(ui.StatusLine(st.Status))
		}
	}

	l.Term.WriteString("> ")
	line, err := l.Term.ReadLine()
	if err != nil {
		// Closed stdin ends the session the same way "q" does.
		return model.QuitMsg{}
	}
	return Parse(line)
}

// persist and fetch fold I/O failures into messages, never thrown
// errors; the transition turns them into a visible status. Shared with
// the Bubble Tea front end.

func persist(store Store, c model.Persist) model.Msg {
	return model.SavedMsg{Err: store.WriteFile(c.File, linestore.Encode(c.Items))}
}

func fetch(store Store, c model.Fetch) model.Msg {
	text, err := store.ReadFile(c.File)
	if err != nil {
		return model.LoadedMsg{Err: err}
	}
	items, err := linestore.Decode(text)
	if err != nil {
		return model.LoadedMsg{Err: err}
	}
	return model.LoadedMsg{Items: items}
}
