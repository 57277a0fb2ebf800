package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/taskforge-dev/taskforge/console"
	"github.com/taskforge-dev/taskforge/store"
)

// Run drives the console loop and performs the final save when it returns,
// whether the operator exited or interrupted.
func Run(cons *console.Console, st store.Store) error {
	runErr := cons.Run()

	if err := st.Save(); err != nil {
		slog.Warn("final save failed", "error", err)
		_, _ = fmt.Fprintln(os.Stderr, "warning: final save failed:", err)
	}

	if runErr != nil {
		return fmt.Errorf("run console: %w", runErr)
	}
	return nil
}

// SetupSignalHandler installs an interrupt handler that saves the store
// best-effort before terminating. The prompt library reports interrupts
// arriving during a form itself; this covers signals landing in between.
func SetupSignalHandler(st store.Store) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-ch
		slog.Info("signal received, saving and exiting", "signal", sig)
		if err := st.Save(); err != nil {
			slog.Warn("save on signal failed", "error", err)
		}
		os.Exit(0)
	}()
}
