package fakeapi

import (
	"errors"
	"net/http"
	"net/url"

	"murojaat/internal/model"
)

// apiError сериализуется как {"error": "..."} - так отвечает настоящий бэкенд
type apiError struct {
	status  int
	Message string `json:"error"`
}

func (e *apiError) Error() string {
	return e.Message
}

func (e *apiError) GetStatus() int {
	return e.status
}

func errorf(status int, message string) error {
	return &apiError{status: status, Message: message}
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return errorf(http.StatusNotFound, "Ma'lumot topilmadi")
	case errors.Is(err, ErrLoginTaken):
		return errorf(http.StatusConflict, "Bu login allaqachon mavjud")
	default:
		return errorf(http.StatusInternalServerError, "Server xatosi")
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

// pathID восстанавливает идентификатор из сегмента пути. chi отдаёт сегмент
// в экранированном виде, если в пути были %-последовательности.
func pathID(segment string) model.ID {
	if s, err := url.PathUnescape(segment); err == nil {
		return model.NewID(s)
	}
	return model.NewID(segment)
}
