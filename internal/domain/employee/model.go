package employee

import (
	"strings"

	"murojaat/internal/model"
)

// Credential - учётная запись сотрудника в том виде, в каком её отдаёт сервер.
// Пароль приходит открытым текстом.
type Credential struct {
	ID       model.ID `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Login    string   `json:"login" yaml:"login"`
	Password string   `json:"password" yaml:"password"`
}

// Form - тело запроса на создание
type Form struct {
	Name     string `json:"name" yaml:"name"`
	Login    string `json:"login" yaml:"login"`
	Password string `json:"password" yaml:"password"`
}

// Patch - частичное изменение. nil означает "оставить как есть".
type Patch struct {
	Name     *string
	Login    *string
	Password *string
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Login == nil && p.Password == nil
}

// Apply накладывает патч на текущую учётную запись
func (p Patch) Apply(c Credential) Credential {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Login != nil {
		c.Login = *p.Login
	}
	if p.Password != nil {
		c.Password = *p.Password
	}
	return c
}

// Form возвращает поля учётной записи без id
func (c Credential) Form() Form {
	return Form{Name: c.Name, Login: c.Login, Password: c.Password}
}

// Masked скрывает пароль для вывода в таблицу
func (c Credential) Masked() Credential {
	if c.Password != "" {
		c.Password = strings.Repeat("*", 8)
	}
	return c
}

// Names проецирует справочник на список имён для фильтра и выбора исполнителя.
// Порядок сохраняется, пустые имена и повторы пропускаются.
func Names(list []Credential) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, c := range list {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Find ищет сотрудника по id
func Find(list []Credential, id model.ID) (Credential, bool) {
	for _, c := range list {
		if c.ID.Equal(id) {
			return c, true
		}
	}
	return Credential{}, false
}
