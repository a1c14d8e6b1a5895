package model

// Msg is something that happened: a parsed line of input or the outcome
// of an I/O effect. Update consumes exactly one Msg per step. The set is
// closed; each variant is a small value type, bubbletea style.
type Msg interface {
	msg()
}

// LoadedMsg carries the result of a Fetch. Err != nil means the read or
// the decode failed; Items is only meaningful when Err is nil.
type LoadedMsg struct {
	Items []Todo
	Err   error
}

// AddMsg appends a new active entry.
type AddMsg struct {
	Name string
}

// DeleteMsg removes the entry at a zero-based position.
type DeleteMsg struct {
	Index int
}

// CompleteMsg marks the entry at a zero-based position as done.
type CompleteMsg struct {
	Index int
}

// InvalidInputMsg is the parser's fallback for anything it cannot read.
type InvalidInputMsg struct{}

// SaveMsg asks for the current list to be persisted.
type SaveMsg struct{}

// SavedMsg carries the result of a Persist.
type SavedMsg struct {
	Err error
}

// QuitMsg ends the session. The drivers stop on it by inspecting the
// message value; it never reaches Update.
type QuitMsg struct{}

func (LoadedMsg) msg()       {}
func (AddMsg) msg()          {}
func (DeleteMsg) msg()       {}
func (CompleteMsg) msg()     {}
func (InvalidInputMsg) msg() {}
func (SaveMsg) msg()         {}
func (SavedMsg) msg()        {}
func (QuitMsg) msg()         {}

// Cmd describes one side effect still to be performed. A nil Cmd is the
// no-op, same convention as tea.Cmd.
type Cmd interface {
	cmd()
}

// Persist writes the given list to File.
type Persist struct {
	File  string
	Items []Todo
}

// Fetch reads and decodes File.
type Fetch struct {
	File string
}

func (Persist) cmd() {}
func (Fetch) cmd()   {}
