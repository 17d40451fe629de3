package repository

import "github.com/taskdeck/backend/domain"

// ActionHistory is the chronological, last-in-first-out record of
// reversible operations. Entries are pushed only after the matching
// store mutation succeeded and popped exactly once by undo.
type ActionHistory interface {
	Push(action domain.Action)

	// Pop removes and returns the most recent action; ok is false when
	// the history is empty.
	Pop() (domain.Action, bool)

	Depth() int
}
