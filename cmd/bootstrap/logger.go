package bootstrap

import (
	"log/slog"
	"os"

	"go.uber.org/fx"
)

// LoggerModule provides a plain JSON logger for wirings that do not go
// through the request-logging middleware (e2e graphs, one-off tools).
var LoggerModule = fx.Module("logger",
	fx.Provide(NewLogger),
)

func NewLogger() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn})
	return slog.New(handler).With(slog.String("service", "stayhub"))
}
