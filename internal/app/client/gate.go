package client

import (
	"context"
	"errors"

	"golang.org/x/exp/slog"

	"murojaat/internal/domain/role"
	"murojaat/internal/domain/session"
)

// gate - общая часть синхронизатора, галереи и справочника:
// проверка сессии перед запросом и сброс сессии по 401/403
type gate struct {
	transport *Transport
	guard     *session.Guard
	role      role.Descriptor
	log       *slog.Logger
}

func (g gate) session(op Op) (*session.Session, error) {
	sess, err := g.guard.Resolve(g.role)
	if err != nil {
		if errors.Is(err, session.ErrUnauthenticated) {
			return nil, &APIError{Op: op, Kind: ErrUnauthenticated, Err: err}
		}
		return nil, err
	}
	return sess, nil
}

func (g gate) call(ctx context.Context, op Op, sess *session.Session, method, path string, body, out any) error {
	err := g.transport.Do(ctx, op, method, path, sess.Token, body, out)
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status != 0 {
		// 401/403 сбрасывают ключи только этой роли
		_ = g.guard.Check(g.role, apiErr.Status)
	}

	g.log.Warn("request failed", slog.String("op", string(op)), slog.Any("error", err))
	return err
}

func validationFailed(op Op, err error) error {
	return &APIError{Op: op, Kind: ErrValidationFailed, Message: err.Error(), Err: err}
}

func notFound(op Op) error {
	return &APIError{Op: op, Kind: ErrNotFound}
}

func unsupported(op Op, r role.Name) error {
	return &APIError{Op: op, Kind: ErrUnsupported, Message: "rol " + string(r) + " uchun mavjud emas"}
}
