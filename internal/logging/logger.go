package logging

import (
	"log/slog"
	"os"
)

// Setup installs the global slog logger: JSON records on stdout, info level.
// Request-scoped fields (method, path, status) come from the fiber logger
// middleware instead.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
