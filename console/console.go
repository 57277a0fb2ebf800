package console

// Command loop: presents a numbered menu, collects parameters through
// free-text prompts, and maps each action 1:1 to a store operation.

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/taskforge-dev/taskforge/config"
	"github.com/taskforge-dev/taskforge/store"
)

const (
	actionAdd      = "add"
	actionView     = "view"
	actionUpdate   = "update"
	actionComplete = "complete"
	actionDelete   = "delete"
	actionFilter   = "filter"
	actionSave     = "save"
	actionExit     = "exit"
)

// Console drives the interactive command loop over a task store.
type Console struct {
	store         store.Store
	out           io.Writer
	confirmDelete bool
}

// New creates a Console over the given store.
func New(st store.Store, cfg *config.Config) *Console {
	return &Console{
		store:         st,
		out:           os.Stdout,
		confirmDelete: cfg.Console.ConfirmDelete,
	}
}

// Run executes the command loop until the operator exits or interrupts.
// Every operation recovers locally; the only way out is the exit action or
// an interrupt, both of which leave the final save to the caller.
func (c *Console) Run() error {
	c.printf("Welcome to TaskForge — Console Task Manager\n")

	for {
		choice, err := c.menu()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				c.printf("Interrupted — saving and exiting.\n")
				return nil
			}
			return fmt.Errorf("reading command: %w", err)
		}

		done, err := c.dispatch(choice)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				c.printf("Interrupted — saving and exiting.\n")
				return nil
			}
			// Recoverable problem: surface it and keep the loop alive.
			c.printf("Error: %v\n", err)
			slog.Error("command failed", "command", choice, "error", err)
			continue
		}
		if done {
			return nil
		}
	}
}

// dispatch runs one menu action. Returns done=true for exit.
func (c *Console) dispatch(choice string) (bool, error) {
	switch choice {
	case actionAdd:
		return false, c.addTask()
	case actionView:
		return false, c.viewTasks()
	case actionUpdate:
		return false, c.updateTask()
	case actionComplete:
		return false, c.markComplete()
	case actionDelete:
		return false, c.deleteTask()
	case actionFilter:
		return false, c.filterTasks()
	case actionSave:
		return false, c.saveNow()
	case actionExit:
		if err := c.store.Save(); err != nil {
			c.printf("Warning: %v\n", err)
		}
		c.printf("Goodbye — tasks saved.\n")
		return true, nil
	default:
		c.printf("Unknown command.\n")
		return false, nil
	}
}

func (c *Console) menu() (string, error) {
	var choice string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("TaskForge").
				Options(
					huh.NewOption("1. Add task", actionAdd),
					huh.NewOption("2. View tasks", actionView),
					huh.NewOption("3. Update task", actionUpdate),
					huh.NewOption("4. Mark task complete", actionComplete),
					huh.NewOption("5. Delete task", actionDelete),
					huh.NewOption("6. Filter tasks", actionFilter),
					huh.NewOption("7. Save now", actionSave),
					huh.NewOption("8. Exit", actionExit),
				).
				Value(&choice),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

func (c *Console) saveNow() error {
	if err := c.store.Save(); err != nil {
		c.printf("Failed to save tasks: %v\n", err)
		return nil
	}
	c.printf("Saved.\n")
	return nil
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
