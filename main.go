package main

import (
	"fmt"
	"os"

	"github.com/taskforge-dev/taskforge/config"
	"github.com/taskforge-dev/taskforge/internal/app"
	"github.com/taskforge-dev/taskforge/internal/bootstrap"
)

// main runs the application bootstrap and starts the console loop.
func main() {
	// Handle version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("taskforge version %s\ncommit: %s\nbuilt: %s\n",
			config.Version, config.GitCommit, config.BuildDate)
		os.Exit(0)
	}

	// Initialize paths early - this must succeed for the application to function
	if err := config.InitPaths(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	result, err := bootstrap.Bootstrap()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	// A load problem is a diagnostic, not a failure: the store starts empty.
	if warning := result.Store.LoadWarning(); warning != "" {
		_, _ = fmt.Fprintln(os.Stderr, "warning:", warning)
	}

	app.SetupSignalHandler(result.Store)

	if err := app.Run(result.Console, result.Store); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
