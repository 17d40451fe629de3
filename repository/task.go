package repository

import (
	"context"

	"github.com/taskdeck/backend/domain"
)

// Stats is a point-in-time summary of the store, used by the health
// monitor and the stats reporter.
type Stats struct {
	Total     int
	Completed int
	NextID    int64
}

// TaskRepository owns all task data. Implementations must preserve
// insertion order, keep ids unique, and leave state untouched when an
// operation reports a failure.
type TaskRepository interface {
	// Append creates a task with a freshly issued id and returns it.
	Append(ctx context.Context, description string) (*domain.Task, error)

	// List returns all tasks in insertion order. An empty store yields
	// an empty slice, not an error.
	List(ctx context.Context) ([]domain.Task, error)

	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Complete marks the task done and returns its prior completed
	// state. Fails with domain.ErrTaskNotFound or
	// domain.ErrTaskAlreadyCompleted, in which case nothing changes.
	Complete(ctx context.Context, id int64) (bool, error)

	// Remove unlinks the task and returns its snapshot so the caller
	// can record it for undo. Relative order of the remaining tasks is
	// preserved.
	Remove(ctx context.Context, id int64) (*domain.Task, error)

	// Reinsert appends a task carrying a caller-supplied id at the tail.
	// Only the undo path may call it; the id counter is advanced past
	// the reinserted id when necessary.
	Reinsert(ctx context.Context, task domain.Task) error

	// SetCompleted writes the completed flag directly, bypassing the
	// Complete validation. Only the undo path may call it.
	SetCompleted(ctx context.Context, id int64, completed bool) error

	Stats(ctx context.Context) (Stats, error)
}
