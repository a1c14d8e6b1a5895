package model

// Updater holds the one piece of configuration the transition needs: the
// file name a SaveMsg should persist to.
type Updater struct {
	File string
}

// Update is the pure transition: one Msg and one State in, the next
// State and at most one Cmd out. It is total; combinations it does not
// match fall through to (state unchanged, nil). It never performs I/O.
//
// Listing and Failed behave identically as source states: a Failed
// state's message is dropped and its carried list used.
func (u Updater) Update(msg Msg, s State) (State, Cmd) {
	items := s.Items()

	switch m := msg.(type) {
	case LoadedMsg:
		if m.Err != nil {
			// Keep whatever list was already held (normally empty on
			// the first load) instead of discarding it.
			return Listing{List: items, Status: "could not load todos from file. " + m.Err.Error()}, nil
		}
		return Listing{List: m.Items, Status: "successfully loaded todos from file"}, nil

	case AddMsg:
		next := make([]Todo, 0, len(items)+1)
		next = append(next, items...)
		next = append(next, Active{Name: m.Name})
		return Listing{List: next, Status: "item added"}, nil

	case DeleteMsg:
		return Listing{List: removeAt(items, m.Index), Status: "item deleted"}, nil

	case CompleteMsg:
		return Listing{List: completeAt(items, m.Index), Status: "marked as completed"}, nil

	case InvalidInputMsg:
		return Failed{Message: "invalid input", List: items}, nil

	case SaveMsg:
		return s, Persist{File: u.File, Items: items}

	case SavedMsg:
		if m.Err != nil {
			return Failed{Message: m.Err.Error(), List: items}, nil
		}
		return Listing{List: items, Status: "saved successfully"}, nil
	}

	return s, nil
}

// removeAt returns the list without the element at index i. An index out
// of range returns the list unchanged.
func removeAt(items []Todo, i int) []Todo {
	if i < 0 || i >= len(items) {
		return items
	}
	next := make([]Todo, 0, len(items)-1)
	next = append(next, items[:i]...)
	next = append(next, items[i+1:]...)
	return next
}

// completeAt returns the list with the element at index i completed.
// Out-of-range indexes and already completed entries leave the list
// unchanged.
func completeAt(items []Todo, i int) []Todo {
	if i < 0 || i >= len(items) {
		return items
	}
	a, ok := items[i].(Active)
	if !ok {
		return items
	}
	next := make([]Todo, len(items))
	copy(next, items)
	next[i] = Completed{Name: a.Name}
	return next
}
