package session

import "errors"

var (
	// ErrUnauthenticated - токена нет, он истёк или сервер его отверг.
	// Сессия при этом уже очищена, вызывающий должен отправить пользователя на вход.
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNoIdentity      = errors.New("identity is missing")
)
