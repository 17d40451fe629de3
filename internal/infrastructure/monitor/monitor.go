package monitor

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/taskdeck/backend/repository"
)

// Monitor periodically samples the task store and action history so the
// health endpoint and the stats reporter read a cached snapshot instead
// of hitting the store on every request.
type Monitor struct {
	tasks   repository.TaskRepository
	history repository.ActionHistory

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	logger   *zap.Logger
}

func New(tasks repository.TaskRepository, history repository.ActionHistory, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		tasks:    tasks,
		history:  history,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.refresh()
	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	stats, err := m.tasks.Stats(ctx)
	if err != nil {
		m.logger.Warn("store stats check failed", zap.Error(err))
		return
	}

	status := Status{
		Tasks:        stats.Total,
		Completed:    stats.Completed,
		HistoryDepth: m.history.Depth(),
		LastCheck:    time.Now(),
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}
