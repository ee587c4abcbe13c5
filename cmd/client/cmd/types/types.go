package types

import (
	"context"
	"errors"

	"murojaat/internal/app/client"
)

type contextKey string

// ClientAppKey - ключ, под которым корневая команда кладёт *client.App в контекст
const ClientAppKey contextKey = "app"

// OutputKey - ключ формата вывода по умолчанию (--json)
const OutputKey contextKey = "output"

var ErrNoApp = errors.New("приложение не инициализировано")

// AppFrom достаёт приложение из контекста команды
func AppFrom(ctx context.Context) (*client.App, error) {
	app, ok := ctx.Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, ErrNoApp
	}
	return app, nil
}

// FormatFrom возвращает формат из флага команды, а если он пуст - глобальный
func FormatFrom(ctx context.Context, flag string) string {
	if flag != "" {
		return flag
	}
	if f, ok := ctx.Value(OutputKey).(string); ok && f != "" {
		return f
	}
	return "table"
}
