package session

import (
	"murojaat/internal/domain/role"
	"murojaat/internal/model"
)

// Identity - профиль, который сервер вернул при входе (поле "user")
type Identity struct {
	ID       model.ID `json:"id,omitzero"`
	Name     string   `json:"name,omitempty"`
	Login    string   `json:"login,omitempty"`
	Username string   `json:"username,omitempty"`
}

// DisplayName возвращает имя, а если его нет - логин
func (i Identity) DisplayName() string {
	switch {
	case i.Name != "":
		return i.Name
	case i.Login != "":
		return i.Login
	default:
		return i.Username
	}
}

// Session - явный контекст сессии вместо глобального localStorage
type Session struct {
	Role     role.Descriptor
	Token    string
	Identity *Identity
}

// AssigneeName - имя, которое принудительно ставится в запись для ролей с ForceAssignee
func (s *Session) AssigneeName() string {
	if s == nil || s.Identity == nil {
		return ""
	}
	return s.Identity.Name
}

// Credentials - данные формы входа
type Credentials struct {
	Login    string
	Password string
}

// LoginResponse - ответ эндпоинта входа
type LoginResponse struct {
	Token string    `json:"token"`
	User  *Identity `json:"user"`
}
