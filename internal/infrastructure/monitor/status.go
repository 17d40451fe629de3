package monitor

import "time"

// Status is the sampled view of the store exposed through /health.
type Status struct {
	Tasks        int       `json:"tasks"`
	Completed    int       `json:"completed"`
	HistoryDepth int       `json:"history_depth"`
	LastCheck    time.Time `json:"last_check"`
}
