package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chzyer/readline"

	"github.com/taskdeck/backend/internal/config"
	"github.com/taskdeck/backend/internal/shell"
	"github.com/taskdeck/backend/pkg/logger"
	"github.com/taskdeck/backend/repository/inmemory"
	taskUC "github.com/taskdeck/backend/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	// The interactive session keeps structured logs out of the terminal
	// unless the operator raises the level explicitly.
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "error"
	}
	zapLogger, err := logger.New(level, "console")
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	taskRepo := inmemory.NewTaskRepository()
	history := inmemory.NewActionHistory(cfg.History.MaxDepth)
	taskUseCase := taskUC.New(taskRepo, history, zapLogger)

	sh := shell.New(taskUseCase, os.Stdout)

	rl, err := readline.New("task> ")
	if err != nil {
		log.Fatalf("readline error: %v", err)
	}
	defer rl.Close()

	fmt.Println("Task manager. Type 'help' for available commands.")

	ctx := context.Background()
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Println("Bye.")
			}
			return
		}

		if sh.Execute(ctx, line) {
			return
		}
	}
}
