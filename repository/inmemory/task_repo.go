package inmemory

import (
	"context"
	"sync"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
)

type taskRepository struct {
	mu     sync.RWMutex
	tasks  []domain.Task
	nextID int64
}

// NewTaskRepository returns the in-memory implementation of
// TaskRepository. Tasks live in an ordered slice; all access serializes
// behind a single mutex so interleaved add/complete/remove/undo always
// observe a consistent snapshot.
func NewTaskRepository() repository.TaskRepository {
	return &taskRepository{nextID: 1}
}

func (r *taskRepository) Append(ctx context.Context, description string) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	task := domain.Task{
		ID:          r.nextID,
		Description: description,
		Completed:   false,
	}
	r.nextID++
	r.tasks = append(r.tasks, task)

	return &task, nil
}

func (r *taskRepository) List(ctx context.Context) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		task := r.tasks[i]
		return &task, nil
	}
	return nil, domain.ErrTaskNotFound
}

func (r *taskRepository) Complete(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, domain.ErrTaskNotFound
	}
	if r.tasks[i].Completed {
		return true, domain.ErrTaskAlreadyCompleted
	}

	prev := r.tasks[i].Completed
	r.tasks[i].Completed = true
	return prev, nil
}

func (r *taskRepository) Remove(ctx context.Context, id int64) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrTaskNotFound
	}

	removed := r.tasks[i]
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return &removed, nil
}

func (r *taskRepository) Reinsert(ctx context.Context, task domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = append(r.tasks, task)

	// The id counter must always exceed every id ever issued, including
	// ids reintroduced here.
	if task.ID >= r.nextID {
		r.nextID = task.ID + 1
	}
	return nil
}

func (r *taskRepository) SetCompleted(ctx context.Context, id int64, completed bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrTaskNotFound
	}
	r.tasks[i].Completed = completed
	return nil
}

func (r *taskRepository) Stats(ctx context.Context) (repository.Stats, error) {
	if err := ctx.Err(); err != nil {
		return repository.Stats{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := repository.Stats{
		Total:  len(r.tasks),
		NextID: r.nextID,
	}
	for _, t := range r.tasks {
		if t.Completed {
			stats.Completed++
		}
	}
	return stats, nil
}

// indexOf returns the slice position of the task with the given id, or
// -1. Callers must hold the lock.
func (r *taskRepository) indexOf(id int64) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
