package fakeapi

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

type healthOutput struct {
	Body struct {
		Status string `json:"status" example:"OK" doc:"Health status of the service"`
	}
}

func (s *Server) healthRoutes(api huma.API, mws huma.Middlewares) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Проверка доступности",
		Tags:        []string{"health"},
		Middlewares: mws,
	}, s.health)
}

func (s *Server) health(_ context.Context, _ *struct{}) (*healthOutput, error) {
	out := &healthOutput{}
	out.Body.Status = "OK"
	return out, nil
}
