package client

import (
	"errors"
	"fmt"
	"net/http"

	"murojaat/internal/domain/session"
)

var (
	ErrUnauthenticated = session.ErrUnauthenticated
	// ErrUnauthorized - сервер ответил 401/403. Обрабатывается как конец сессии.
	ErrUnauthorized     = fmt.Errorf("%w: rejected by server", session.ErrUnauthenticated)
	ErrValidationFailed = errors.New("validation failed")
	ErrNetworkFailure   = errors.New("network failure")
	ErrNotFound         = fmt.Errorf("%w: not found", ErrValidationFailed)
	ErrBusy             = errors.New("operation already in progress")
	ErrUnsupported      = errors.New("not available for this role")
)

// APIError - типизированный результат неудачной операции. Message берётся
// из поля "error" ответа сервера, иначе - общий текст для операции.
type APIError struct {
	Op      Op
	Kind    error
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Op.Failure()
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	return msg
}

func (e *APIError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// kindForStatus раскладывает HTTP-статус по таксономии ошибок
func kindForStatus(status int) error {
	switch {
	case session.IsExpiredStatus(status):
		return ErrUnauthorized
	case status == http.StatusNotFound:
		return ErrNotFound
	default:
		return ErrValidationFailed
	}
}

// Message возвращает текст для уведомления пользователю
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if errors.Is(err, ErrUnauthenticated) {
			return sessionExpiredText
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return apiErr.Op.Failure()
	}
	if errors.Is(err, ErrUnauthenticated) {
		return sessionExpiredText
	}
	return err.Error()
}
