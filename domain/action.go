package domain

// ActionType classifies a reversible mutation of the task store.
type ActionType string

const (
	ActionAdd      ActionType = "add"
	ActionComplete ActionType = "complete"
	ActionRemove   ActionType = "remove"
)

// Action records exactly the information needed to invert one store
// mutation. It is created at the moment the mutation succeeds and is
// immutable afterwards; undo consumes it exactly once.
//
// Description and WasCompleted are only meaningful for ActionRemove;
// WasCompleted additionally carries the prior state for ActionComplete.
type Action struct {
	Type         ActionType `json:"type"`
	TaskID       int64      `json:"task_id"`
	Description  string     `json:"description,omitempty"`
	WasCompleted bool       `json:"was_completed"`
}

// UndoReceipt describes what an undo actually reverted, for reporting
// back to the caller.
type UndoReceipt struct {
	Undone       ActionType `json:"undone"`
	TaskID       int64      `json:"task_id"`
	Description  string     `json:"description,omitempty"`
	WasCompleted bool       `json:"was_completed"`
}
