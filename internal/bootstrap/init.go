package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/taskforge-dev/taskforge/config"
	"github.com/taskforge-dev/taskforge/console"
	"github.com/taskforge-dev/taskforge/store/forgestore"
)

// BootstrapResult contains all initialized application components.
type BootstrapResult struct {
	Cfg      *config.Config
	LogLevel slog.Level
	Store    *forgestore.ForgeStore
	Console  *console.Console
}

// Bootstrap orchestrates the complete application initialization sequence.
func Bootstrap() (*BootstrapResult, error) {
	// Phase 1: Directories
	if err := config.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	// Phase 2: Configuration and logging
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	logLevel := InitLogging(cfg)

	// Phase 3: Store initialization. Load problems are non-fatal; the
	// warning is surfaced by the caller.
	st := forgestore.New(config.DataFilePath(cfg))

	// Phase 4: Console
	cons := console.New(st, cfg)

	slog.Debug("bootstrap complete", "data_file", st.Path(), "log_level", logLevel)

	return &BootstrapResult{
		Cfg:      cfg,
		LogLevel: logLevel,
		Store:    st,
		Console:  cons,
	}, nil
}
