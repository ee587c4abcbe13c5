package logger

import (
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"murojaat/internal/app/client/config"
)

// New создаёт логгер под окружение: local - цветной вывод, dev и prod - JSON
func New(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog()
	case config.EnvDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

// Discard - логгер для тестов и тихого режима
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

func setupPrettySlog() *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	return slog.New(opts.NewPrettyHandler(os.Stderr))
}

// WithLevel - как New, но уровень JSON-логгера задаётся явно (log_level из конфигурации)
func WithLevel(env, level string) *slog.Logger {
	if env == config.EnvLocal || level == "" {
		return New(env)
	}
	return slog.New(
		slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: ParseLevel(level)}),
	)
}

// ParseLevel разбирает debug/info/warn/error, неизвестное значение даёт info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
