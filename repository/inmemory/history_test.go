package inmemory

import (
	"testing"

	"github.com/taskdeck/backend/domain"
)

func TestHistoryLIFO(t *testing.T) {
	h := NewActionHistory(0)

	h.Push(domain.Action{Type: domain.ActionAdd, TaskID: 1})
	h.Push(domain.Action{Type: domain.ActionComplete, TaskID: 1})
	h.Push(domain.Action{Type: domain.ActionRemove, TaskID: 1, Description: "a"})

	if h.Depth() != 3 {
		t.Fatalf("expected depth 3, got %d", h.Depth())
	}

	wantTypes := []domain.ActionType{domain.ActionRemove, domain.ActionComplete, domain.ActionAdd}
	for _, want := range wantTypes {
		action, ok := h.Pop()
		if !ok {
			t.Fatal("expected an action")
		}
		if action.Type != want {
			t.Errorf("expected %s, got %s", want, action.Type)
		}
	}
}

func TestHistoryPopEmpty(t *testing.T) {
	h := NewActionHistory(0)

	if _, ok := h.Pop(); ok {
		t.Error("pop on empty history should report not ok")
	}
	if h.Depth() != 0 {
		t.Errorf("expected depth 0, got %d", h.Depth())
	}
}

func TestHistoryMaxDepthDropsOldest(t *testing.T) {
	h := NewActionHistory(2)

	h.Push(domain.Action{Type: domain.ActionAdd, TaskID: 1})
	h.Push(domain.Action{Type: domain.ActionAdd, TaskID: 2})
	h.Push(domain.Action{Type: domain.ActionAdd, TaskID: 3})

	if h.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", h.Depth())
	}

	action, _ := h.Pop()
	if action.TaskID != 3 {
		t.Errorf("expected most recent entry first, got task %d", action.TaskID)
	}
	action, _ = h.Pop()
	if action.TaskID != 2 {
		t.Errorf("oldest entry should have been dropped, got task %d", action.TaskID)
	}
}
