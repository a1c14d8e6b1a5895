package model

// Todo is the domain model for a single entry. It is a closed sum:
// an entry is either still active or already completed, and marking it
// done replaces the value rather than mutating it.
type Todo interface {
	todo()
}

// Active is an entry that has not been completed yet.
type Active struct {
	Name string
}

// Completed is an entry that has been marked done.
type Completed struct {
	Name string
}

func (Active) todo()    {}
func (Completed) todo() {}
