// Package fakeapi - in-memory бэкенд дашборда для тестов и локальной разработки.
//
//	POST   /api/admin/login                  # вход администратора (публичный)
//	POST   /api/employee/login               # вход сотрудника (публичный)
//	GET    /api/records                      # записи (admin)
//	POST   /api/records                      # создать запись (admin)
//	PUT    /api/records/{id}                 # обновить запись (admin)
//	DELETE /api/records/{id}                 # удалить запись (admin)
//	GET    /api/records/{id}/images          # изображения записи (admin)
//	POST   /api/records/{id}/images          # загрузить изображение (admin)
//	DELETE /api/images/{id}                  # удалить изображение (admin)
//	...    /api/user/...                     # то же для сотрудника, только свои записи
//	GET    /api/employee/employees[/{id}]    # справочник сотрудников (admin, employee)
package fakeapi

import (
	gosync "sync"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"murojaat/internal/domain/employee"
	"murojaat/internal/domain/record"
	"murojaat/internal/domain/role"
)

const DefaultTokenTTL = 24 * time.Hour

type fault struct {
	status  int
	message string
}

type Server struct {
	store     *Store
	tokens    *Tokens
	log       *slog.Logger
	records   *record.Validator
	employees *employee.Validator

	mu     gosync.Mutex
	faults []fault
}

func New(store *Store, secret []byte, log *slog.Logger) *Server {
	return &Server{
		store:     store,
		tokens:    NewTokens(secret, DefaultTokenTTL),
		log:       log,
		records:   record.MustValidator(),
		employees: employee.MustValidator(),
	}
}

// Router создает *chi.Mux со всеми операциями через huma.Register
func (s *Server) Router() *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Murojaat API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	s.Register(humachi.New(mux, config))
	return mux
}

// Register регистрирует операции на готовом API (в тестах - humatest)
func (s *Server) Register(api huma.API) {
	mws := NewContainer()

	mws.Add(requestLogger(s.log))
	s.healthRoutes(api, mws.GetAllAndClear())

	mws.Add(requestLogger(s.log))
	mws.Add(s.faultMiddleware())
	s.loginRoutes(api, mws.GetAllAndClear())

	for _, r := range []role.Name{role.Admin, role.Employee} {
		mws.Add(requestLogger(s.log))
		mws.Add(s.authMiddleware(r))
		mws.Add(s.faultMiddleware())
		s.recordRoutes(api, role.MustLookup(r), mws.GetAllAndClear())
	}

	mws.Add(requestLogger(s.log))
	mws.Add(s.authMiddleware(role.Admin, role.Employee))
	mws.Add(s.faultMiddleware())
	s.employeeRoutes(api, role.MustLookup(role.Admin), mws.GetAllAndClear())
}

func (s *Server) Store() *Store {
	return s.store
}

func (s *Server) Tokens() *Tokens {
	return s.tokens
}

// FailNext заставляет следующий запрос вернуть status с сообщением {"error": message}
func (s *Server) FailNext(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults = append(s.faults, fault{status: status, message: message})
}

// PassNext пропускает следующий запрос без ошибки, чтобы FailNext сработал на запросе после него
func (s *Server) PassNext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults = append(s.faults, fault{})
}

func (s *Server) takeFault() (fault, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.faults) == 0 {
		return fault{}, false
	}
	f := s.faults[0]
	s.faults = s.faults[1:]
	return f, true
}
