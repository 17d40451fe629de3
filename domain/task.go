package domain

// Task represents a single entry in the task list.
type Task struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Completed
}
