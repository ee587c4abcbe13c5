package fakeapi

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"murojaat/internal/domain/employee"
	"murojaat/internal/domain/role"
)

type employeeListOutput struct {
	Body []employee.Credential
}

type employeeCreateInput struct {
	Body employee.Form
}

type employeeUpdateInput struct {
	ID   string `path:"id"`
	Body employee.Credential
}

type employeeOutput struct {
	Body employee.Credential
}

func (s *Server) employeeRoutes(api huma.API, d role.Descriptor, mws huma.Middlewares) {
	security := []map[string][]string{{"bearer": {}}}

	huma.Register(api, huma.Operation{
		OperationID: "employees-list",
		Method:      http.MethodGet,
		Path:        d.EmployeesPath,
		Summary:     "Список сотрудников",
		Tags:        []string{"employees"},
		Security:    security,
		Middlewares: mws,
	}, s.listEmployees)

	huma.Register(api, huma.Operation{
		OperationID: "employees-create",
		Method:      http.MethodPost,
		Path:        d.EmployeesPath,
		Summary:     "Добавить сотрудника",
		Tags:        []string{"employees"},
		Security:    security,
		Middlewares: mws,
	}, s.createEmployee)

	huma.Register(api, huma.Operation{
		OperationID: "employees-update",
		Method:      http.MethodPut,
		Path:        d.EmployeesPath + "/{id}",
		Summary:     "Обновить сотрудника",
		Tags:        []string{"employees"},
		Security:    security,
		Middlewares: mws,
	}, s.updateEmployee)

	huma.Register(api, huma.Operation{
		OperationID: "employees-delete",
		Method:      http.MethodDelete,
		Path:        d.EmployeesPath + "/{id}",
		Summary:     "Удалить сотрудника",
		Tags:        []string{"employees"},
		Security:    security,
		Middlewares: mws,
	}, s.deleteEmployee)
}

func (s *Server) listEmployees(_ context.Context, _ *struct{}) (*employeeListOutput, error) {
	return &employeeListOutput{Body: s.store.Employees()}, nil
}

func (s *Server) createEmployee(ctx context.Context, input *employeeCreateInput) (*employeeOutput, error) {
	if err := s.employees.ValidateForm(ctx, input.Body); err != nil {
		return nil, errorf(http.StatusBadRequest, err.Error())
	}
	c, err := s.store.CreateEmployee(input.Body)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return &employeeOutput{Body: c}, nil
}

func (s *Server) updateEmployee(ctx context.Context, input *employeeUpdateInput) (*employeeOutput, error) {
	if err := s.employees.ValidateForm(ctx, input.Body.Form()); err != nil {
		return nil, errorf(http.StatusBadRequest, err.Error())
	}
	c, err := s.store.UpdateEmployee(pathID(input.ID), input.Body)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return &employeeOutput{Body: c}, nil
}

func (s *Server) deleteEmployee(_ context.Context, input *idInput) (*messageOutput, error) {
	if err := s.store.DeleteEmployee(pathID(input.ID)); err != nil {
		return nil, mapStoreError(err)
	}
	return &messageOutput{Body: messageResponse{Message: "Employee deleted"}}, nil
}
