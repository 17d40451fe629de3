package task

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
)

// UseCase drives the task store and the action history together. Every
// mutating call records its inverse in the history only after the store
// reported success, so undo always has a valid entry to replay.
type UseCase struct {
	tasks   repository.TaskRepository
	history repository.ActionHistory
	logger  *zap.Logger
}

func New(tasks repository.TaskRepository, history repository.ActionHistory, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:   tasks,
		history: history,
		logger:  logger,
	}
}

func (uc *UseCase) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return uc.tasks.List(ctx)
}

func (uc *UseCase) AddTask(ctx context.Context, description string) (*domain.Task, error) {
	if description == "" {
		return nil, domain.ErrInvalidPayload
	}

	created, err := uc.tasks.Append(ctx, description)
	if err != nil {
		return nil, err
	}

	// Record the id the store actually issued, never a recomputed one.
	uc.history.Push(domain.Action{
		Type:   domain.ActionAdd,
		TaskID: created.ID,
	})

	uc.logger.Info("task added", zap.Int64("task_id", created.ID))
	return created, nil
}

func (uc *UseCase) CompleteTask(ctx context.Context, id int64) (*domain.Task, error) {
	prev, err := uc.tasks.Complete(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.history.Push(domain.Action{
		Type:         domain.ActionComplete,
		TaskID:       id,
		WasCompleted: prev,
	})

	uc.logger.Info("task completed", zap.Int64("task_id", id))
	return uc.tasks.GetByID(ctx, id)
}

func (uc *UseCase) RemoveTask(ctx context.Context, id int64) (*domain.Task, error) {
	removed, err := uc.tasks.Remove(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.history.Push(domain.Action{
		Type:         domain.ActionRemove,
		TaskID:       removed.ID,
		Description:  removed.Description,
		WasCompleted: removed.Completed,
	})

	uc.logger.Info("task removed", zap.Int64("task_id", id))
	return removed, nil
}

// Undo pops the most recent action and replays its inverse against the
// store. The popped action is consumed whether or not its target still
// exists; a vanished target is reported as domain.ErrUndoTargetMissing
// and the interaction continues.
func (uc *UseCase) Undo(ctx context.Context) (*domain.UndoReceipt, error) {
	action, ok := uc.history.Pop()
	if !ok {
		return nil, domain.ErrNothingToUndo
	}

	receipt := &domain.UndoReceipt{
		Undone:       action.Type,
		TaskID:       action.TaskID,
		Description:  action.Description,
		WasCompleted: action.WasCompleted,
	}

	switch action.Type {
	case domain.ActionAdd:
		if _, err := uc.tasks.Remove(ctx, action.TaskID); err != nil {
			if err == domain.ErrTaskNotFound {
				uc.logger.Warn("undo target missing", zap.Int64("task_id", action.TaskID), zap.String("action", string(action.Type)))
				return nil, domain.ErrUndoTargetMissing
			}
			return nil, err
		}

	case domain.ActionComplete:
		// Write the flag directly: Complete only ever moves false to
		// true, but undo must be able to revert it.
		if err := uc.tasks.SetCompleted(ctx, action.TaskID, action.WasCompleted); err != nil {
			if err == domain.ErrTaskNotFound {
				uc.logger.Warn("undo target missing", zap.Int64("task_id", action.TaskID), zap.String("action", string(action.Type)))
				return nil, domain.ErrUndoTargetMissing
			}
			return nil, err
		}

	case domain.ActionRemove:
		// The original id comes back with the task: identity survives a
		// remove/undo round-trip. Reinsertion is at the tail, not the
		// original position.
		if err := uc.tasks.Reinsert(ctx, domain.Task{
			ID:          action.TaskID,
			Description: action.Description,
			Completed:   action.WasCompleted,
		}); err != nil {
			return nil, err
		}

	default:
		uc.logger.Error("unknown action type in history", zap.String("action", string(action.Type)))
		return nil, domain.NewError(domain.ErrCodeInternal, "unknown action type")
	}

	uc.logger.Info("action undone",
		zap.String("action", string(action.Type)),
		zap.Int64("task_id", action.TaskID))
	return receipt, nil
}

// HistoryDepth reports how many actions can still be undone.
func (uc *UseCase) HistoryDepth() int {
	return uc.history.Depth()
}
