package client

import (
	"context"
	"net/http"
	gosync "sync"

	"golang.org/x/exp/slog"

	"murojaat/internal/domain/employee"
	"murojaat/internal/model"
)

// Directory - справочник сотрудников. После каждого изменения список перечитывается.
type Directory struct {
	gate
	validator *employee.Validator

	mu   gosync.RWMutex
	list []employee.Credential
}

func NewDirectory(g gate, validator *employee.Validator) *Directory {
	g.log = g.log.With(slog.String("component", "directory"))
	return &Directory{
		gate:      g,
		validator: validator,
	}
}

func (d *Directory) List(ctx context.Context) ([]employee.Credential, error) {
	if !d.role.Directory {
		return nil, unsupported(OpListEmployees, d.role.Name)
	}
	sess, err := d.session(OpListEmployees)
	if err != nil {
		return nil, err
	}

	var list []employee.Credential
	if err := d.call(ctx, OpListEmployees, sess, http.MethodGet, d.role.EmployeesPath, nil, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []employee.Credential{}
	}

	d.mu.Lock()
	d.list = list
	d.mu.Unlock()

	return d.Employees(), nil
}

func (d *Directory) Create(ctx context.Context, form employee.Form) ([]employee.Credential, error) {
	if !d.role.Directory {
		return nil, unsupported(OpCreateEmployee, d.role.Name)
	}
	sess, err := d.session(OpCreateEmployee)
	if err != nil {
		return nil, err
	}
	if err := d.validator.ValidateForm(ctx, form); err != nil {
		return nil, validationFailed(OpCreateEmployee, err)
	}

	if err := d.call(ctx, OpCreateEmployee, sess, http.MethodPost, d.role.EmployeesPath, form, nil); err != nil {
		return nil, err
	}

	d.log.Info("employee created", slog.String("login", form.Login))
	return d.List(ctx)
}

// Update отправляет учётную запись целиком, как её показывает форма редактирования
func (d *Directory) Update(ctx context.Context, id model.ID, patch employee.Patch) ([]employee.Credential, error) {
	if !d.role.Directory {
		return nil, unsupported(OpUpdateEmployee, d.role.Name)
	}
	sess, err := d.session(OpUpdateEmployee)
	if err != nil {
		return nil, err
	}

	current, ok := employee.Find(d.Employees(), id)
	if !ok {
		return nil, notFound(OpUpdateEmployee)
	}
	next := patch.Apply(current)
	if err := d.validator.ValidateForm(ctx, next.Form()); err != nil {
		return nil, validationFailed(OpUpdateEmployee, err)
	}

	if err := d.call(ctx, OpUpdateEmployee, sess, http.MethodPut, d.role.EmployeePath(id.String()), next, nil); err != nil {
		return nil, err
	}

	d.log.Info("employee updated", slog.String("id", id.String()))
	return d.List(ctx)
}

func (d *Directory) Delete(ctx context.Context, id model.ID) ([]employee.Credential, error) {
	if !d.role.Directory {
		return nil, unsupported(OpDeleteEmployee, d.role.Name)
	}
	sess, err := d.session(OpDeleteEmployee)
	if err != nil {
		return nil, err
	}
	if _, ok := employee.Find(d.Employees(), id); !ok {
		return nil, notFound(OpDeleteEmployee)
	}

	if err := d.call(ctx, OpDeleteEmployee, sess, http.MethodDelete, d.role.EmployeePath(id.String()), nil, nil); err != nil {
		return nil, err
	}

	d.log.Info("employee deleted", slog.String("id", id.String()))
	return d.List(ctx)
}

// Employees - копия последнего загруженного списка
func (d *Directory) Employees() []employee.Credential {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]employee.Credential, len(d.list))
	copy(out, d.list)
	return out
}

// Names - имена сотрудников для фильтра и выбора исполнителя
func (d *Directory) Names() []string {
	return employee.Names(d.Employees())
}
