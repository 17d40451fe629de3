package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.AppName != "taskdeck" {
		t.Errorf("unexpected app name %q", cfg.AppName)
	}
	if cfg.History.MaxDepth != 0 {
		t.Errorf("history should be unbounded by default, got %d", cfg.History.MaxDepth)
	}
	if cfg.Stats.Interval != time.Minute {
		t.Errorf("unexpected stats interval %v", cfg.Stats.Interval)
	}
	if cfg.Address() != "0.0.0.0:8080" {
		t.Errorf("unexpected address %q", cfg.Address())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("HISTORY_MAX_DEPTH", "25")
	t.Setenv("SERVER_READ_TIMEOUT", "30s")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "20")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTP.Port != "9090" {
		t.Errorf("unexpected port %q", cfg.HTTP.Port)
	}
	if cfg.History.MaxDepth != 25 {
		t.Errorf("unexpected max depth %d", cfg.History.MaxDepth)
	}
	if cfg.HTTP.ReadTimeout != 30*time.Second {
		t.Errorf("unexpected read timeout %v", cfg.HTTP.ReadTimeout)
	}
	// Bare integers are interpreted as seconds.
	if cfg.Context.ShutdownTimeout != 20*time.Second {
		t.Errorf("unexpected shutdown timeout %v", cfg.Context.ShutdownTimeout)
	}
}
