package role

import (
	"fmt"
	"net/url"
	"strings"
)

type Name string

const (
	Admin    Name = "admin"
	Employee Name = "employee"
	// Legacy - старый админский дашборд с общим ключом "token"
	Legacy Name = "legacy"
)

// Descriptor описывает всё, чем роли отличаются друг от друга:
// ключи хранилища, пути API и доступные под-функции дашборда.
type Descriptor struct {
	Name Name

	TokenKey    string
	IdentityKey string // пусто, если роль не хранит профиль

	LoginPath       string
	LoginUserField  string // "username" у админа, "login" у сотрудника
	RecordsPath     string
	ImagesPath      string
	EmployeesPath   string
	RequireIdentity bool

	// ForceAssignee - запись всегда закрепляется за текущим сотрудником
	ForceAssignee     bool
	Images            bool
	ImageDescriptions bool
	Directory         bool
	EmployeeFilter    bool
}

var descriptors = map[Name]Descriptor{
	Admin: {
		Name:              Admin,
		TokenKey:          "adminToken",
		IdentityKey:       "adminData",
		LoginPath:         "/api/admin/login",
		LoginUserField:    "username",
		RecordsPath:       "/api/records",
		ImagesPath:        "/api/images",
		EmployeesPath:     "/api/employee/employees",
		Images:            true,
		ImageDescriptions: true,
		Directory:         true,
		EmployeeFilter:    true,
	},
	Employee: {
		Name:            Employee,
		TokenKey:        "employeeToken",
		IdentityKey:     "userData",
		LoginPath:       "/api/employee/login",
		LoginUserField:  "login",
		RecordsPath:     "/api/user/records",
		ImagesPath:      "/api/user/images",
		EmployeesPath:   "/api/employee/employees",
		RequireIdentity: true,
		ForceAssignee:   true,
		Images:          true,
		Directory:       true,
	},
	Legacy: {
		Name:           Legacy,
		TokenKey:       "token",
		LoginPath:      "/api/admin/login",
		LoginUserField: "username",
		RecordsPath:    "/api/records",
	},
}

// Lookup возвращает дескриптор роли по имени
func Lookup(name string) (Descriptor, error) {
	d, ok := descriptors[Name(strings.ToLower(strings.TrimSpace(name)))]
	if !ok {
		return Descriptor{}, fmt.Errorf("неизвестная роль: %q", name)
	}
	return d, nil
}

// MustLookup - как Lookup, но паникует на неизвестной роли
func MustLookup(name Name) Descriptor {
	d, err := Lookup(string(name))
	if err != nil {
		panic(err)
	}
	return d
}

// Names возвращает все поддерживаемые роли
func Names() []Name {
	return []Name{Admin, Employee, Legacy}
}

// RecordPath - путь к конкретной записи. Идентификатор экранируется как один сегмент пути.
func (d Descriptor) RecordPath(id string) string {
	return d.RecordsPath + "/" + segment(id)
}

// RecordImagesPath - путь к списку изображений записи
func (d Descriptor) RecordImagesPath(recordID string) string {
	return d.RecordsPath + "/" + segment(recordID) + "/images"
}

func (d Descriptor) ImagePath(id string) string {
	return d.ImagesPath + "/" + segment(id)
}

func (d Descriptor) EmployeePath(id string) string {
	return d.EmployeesPath + "/" + segment(id)
}

func segment(id string) string {
	return url.PathEscape(id)
}

// Keys возвращает все ключи хранилища, принадлежащие роли
func (d Descriptor) Keys() []string {
	if d.IdentityKey == "" {
		return []string{d.TokenKey}
	}
	return []string{d.TokenKey, d.IdentityKey}
}

func (n Name) String() string {
	return string(n)
}
