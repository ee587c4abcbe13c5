package fakeapi

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"murojaat/internal/domain/role"
	"murojaat/internal/domain/session"
)

type adminLoginInput struct {
	Body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
}

type employeeLoginInput struct {
	Body struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}
}

type loginOutput struct {
	Body session.LoginResponse
}

const invalidCredentials = "Login yoki parol noto'g'ri"

func (s *Server) loginRoutes(api huma.API, mws huma.Middlewares) {
	huma.Register(api, huma.Operation{
		OperationID: "admin-login",
		Method:      http.MethodPost,
		Path:        role.MustLookup(role.Admin).LoginPath,
		Summary:     "Вход администратора",
		Tags:        []string{"auth"},
		Middlewares: mws,
	}, s.adminLogin)

	huma.Register(api, huma.Operation{
		OperationID: "employee-login",
		Method:      http.MethodPost,
		Path:        role.MustLookup(role.Employee).LoginPath,
		Summary:     "Вход сотрудника",
		Tags:        []string{"auth"},
		Middlewares: mws,
	}, s.employeeLogin)
}

func (s *Server) adminLogin(_ context.Context, input *adminLoginInput) (*loginOutput, error) {
	admin, ok := s.store.FindAdmin(input.Body.Username, input.Body.Password)
	if !ok {
		s.log.Info("admin login rejected", slog.String("username", input.Body.Username))
		return nil, errorf(http.StatusUnauthorized, invalidCredentials)
	}

	token, err := s.tokens.Issue(admin.ID, role.Admin, admin.Name)
	if err != nil {
		return nil, errorf(http.StatusInternalServerError, err.Error())
	}

	return &loginOutput{Body: session.LoginResponse{
		Token: token,
		User:  &session.Identity{ID: admin.ID, Name: admin.Name, Username: admin.Username},
	}}, nil
}

func (s *Server) employeeLogin(_ context.Context, input *employeeLoginInput) (*loginOutput, error) {
	emp, ok := s.store.FindEmployee(input.Body.Login, input.Body.Password)
	if !ok {
		s.log.Info("employee login rejected", slog.String("login", input.Body.Login))
		return nil, errorf(http.StatusUnauthorized, invalidCredentials)
	}

	token, err := s.tokens.Issue(emp.ID, role.Employee, emp.Name)
	if err != nil {
		return nil, errorf(http.StatusInternalServerError, err.Error())
	}

	return &loginOutput{Body: session.LoginResponse{
		Token: token,
		User:  &session.Identity{ID: emp.ID, Name: emp.Name, Login: emp.Login},
	}}, nil
}
