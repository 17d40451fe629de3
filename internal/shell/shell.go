package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/taskdeck/backend/domain"
	taskUC "github.com/taskdeck/backend/usecase/task"
)

// Shell interprets one command line at a time and drives the task use
// case with already-validated arguments. All core failures are printed
// and the interaction continues; only quit ends the loop.
type Shell struct {
	uc  *taskUC.UseCase
	out io.Writer
}

func New(uc *taskUC.UseCase, out io.Writer) *Shell {
	return &Shell{uc: uc, out: out}
}

// Execute runs a single command line. It returns true when the user
// asked to quit.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	parts := strings.Fields(line)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "add":
		s.add(ctx, strings.TrimSpace(strings.TrimPrefix(line, parts[0])))
	case "list", "ls":
		s.list(ctx)
	case "done", "complete":
		s.complete(ctx, args)
	case "rm", "remove":
		s.remove(ctx, args)
	case "undo":
		s.undo(ctx)
	case "help":
		s.printHelp()
	case "quit", "exit":
		fmt.Fprintln(s.out, "Bye.")
		return true
	default:
		fmt.Fprintf(s.out, "Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}

	return false
}

func (s *Shell) add(ctx context.Context, description string) {
	if description == "" {
		fmt.Fprintln(s.out, "Usage: add <description>")
		return
	}

	created, err := s.uc.AddTask(ctx, description)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Added task %d: %s\n", created.ID, created.Description)
}

func (s *Shell) list(ctx context.Context) {
	tasks, err := s.uc.ListTasks(ctx)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if len(tasks) == 0 {
		fmt.Fprintln(s.out, "No tasks.")
		return
	}
	for _, t := range tasks {
		status := "[ ]"
		if t.Completed {
			status = "[x]"
		}
		fmt.Fprintf(s.out, "%s %d. %s\n", status, t.ID, t.Description)
	}
}

func (s *Shell) complete(ctx context.Context, args []string) {
	id, ok := s.parseID(args, "done")
	if !ok {
		return
	}

	completed, err := s.uc.CompleteTask(ctx, id)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Completed task %d: %s\n", completed.ID, completed.Description)
}

func (s *Shell) remove(ctx context.Context, args []string) {
	id, ok := s.parseID(args, "rm")
	if !ok {
		return
	}

	removed, err := s.uc.RemoveTask(ctx, id)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Removed task %d: %s\n", removed.ID, removed.Description)
}

func (s *Shell) undo(ctx context.Context) {
	receipt, err := s.uc.Undo(ctx)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNothingToUndo):
			fmt.Fprintln(s.out, "Nothing to undo.")
		case errors.Is(err, domain.ErrUndoTargetMissing):
			fmt.Fprintln(s.out, "Could not undo: the task no longer exists.")
		default:
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
		return
	}

	switch receipt.Undone {
	case domain.ActionAdd:
		fmt.Fprintf(s.out, "Undone: removed task %d (originally added).\n", receipt.TaskID)
	case domain.ActionComplete:
		state := "pending"
		if receipt.WasCompleted {
			state = "completed"
		}
		fmt.Fprintf(s.out, "Undone: task %d reverted to %s.\n", receipt.TaskID, state)
	case domain.ActionRemove:
		fmt.Fprintf(s.out, "Undone: task %d (%q) restored.\n", receipt.TaskID, receipt.Description)
	}
}

func (s *Shell) parseID(args []string, usage string) (int64, bool) {
	if len(args) != 1 {
		fmt.Fprintf(s.out, "Usage: %s <id>\n", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(s.out, "Invalid task id: %s\n", args[0])
		return 0, false
	}
	return id, true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `Available commands:
  add <description>  - Add a task
  list               - List all tasks
  done <id>          - Mark a task as completed
  rm <id>            - Remove a task
  undo               - Undo the last add, done or rm
  help               - Show this help message
  quit               - Exit`)
}
