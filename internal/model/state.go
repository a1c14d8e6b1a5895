package model

// State is what the application knows between two inputs. Both variants
// carry the authoritative list; Failed additionally carries a sticky
// error string that stays on screen until the next input.
type State interface {
	// Items returns the current list regardless of variant.
	Items() []Todo
	state()
}

// Listing is the normal screen: the list plus an optional one-shot
// status line. An empty Status means no status line.
type Listing struct {
	List   []Todo
	Status string
}

// Failed is the error screen. The list survives the failure.
type Failed struct {
	Message string
	List    []Todo
}

func (s Listing) Items() []Todo { return s.List }
func (s Failed) Items() []Todo  { return s.List }

func (Listing) state() {}
func (Failed) state()  {}
