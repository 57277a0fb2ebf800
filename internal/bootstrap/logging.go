package bootstrap

import (
	"io"
	"log/slog"
	"os"

	"github.com/taskforge-dev/taskforge/config"
)

// InitLogging configures the default slog logger from configuration.
// Log lines go to a file under the user cache directory so they never
// interleave with interactive prompts; when the file cannot be opened,
// logging is discarded rather than polluting the console.
func InitLogging(cfg *config.Config) slog.Level {
	level := parseLevel(cfg.Logging.Level)

	var w io.Writer = io.Discard
	//nolint:gosec // G302/G304: 0644 log file at a path we control
	if f, err := os.OpenFile(config.GetLogFile(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
		w = f
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return level
}

func parseLevel(text string) slog.Level {
	switch text {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
