package inmemory

import (
	"sync"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
)

type actionHistory struct {
	mu       sync.Mutex
	actions  []domain.Action
	maxDepth int
}

// NewActionHistory returns an in-memory LIFO history. maxDepth bounds
// how many entries are retained; when the bound is exceeded the oldest
// entry is dropped. A maxDepth of zero or less means unbounded.
func NewActionHistory(maxDepth int) repository.ActionHistory {
	return &actionHistory{maxDepth: maxDepth}
}

func (h *actionHistory) Push(action domain.Action) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.actions = append(h.actions, action)
	if h.maxDepth > 0 && len(h.actions) > h.maxDepth {
		h.actions = h.actions[len(h.actions)-h.maxDepth:]
	}
}

func (h *actionHistory) Pop() (domain.Action, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.actions) == 0 {
		return domain.Action{}, false
	}
	last := h.actions[len(h.actions)-1]
	h.actions = h.actions[:len(h.actions)-1]
	return last, true
}

func (h *actionHistory) Depth() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.actions)
}
