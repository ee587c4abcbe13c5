package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/exp/slog"

	"murojaat/internal/app/client/config"
	"murojaat/internal/domain/employee"
	"murojaat/internal/domain/record"
	"murojaat/internal/domain/role"
	"murojaat/internal/domain/session"
)

// Storage - хранилище ключей сессии с возможностью перечислить ключи и закрыться
type Storage interface {
	session.Storage
	Keys() ([]string, error)
	Close() error
}

// App - дашборд одной роли: сессия, записи, изображения и справочник сотрудников
type App struct {
	config    *config.Config
	log       *slog.Logger
	storage   Storage
	transport *Transport
	guard     *session.Guard
	role      role.Descriptor

	Records   *Synchronizer
	Images    *Gallery
	Employees *Directory
}

// New собирает приложение по конфигурации. Если файл состояния недоступен,
// сессия хранится в памяти до конца процесса.
func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	var storage Storage
	if err := cfg.EnsureDir(); err != nil {
		log.Warn("Не удалось создать каталог состояния, используем память", slog.Any("error", err))
		storage = NewMemoryStorage()
	} else {
		sqliteStorage, err := NewSQLiteStorage(cfg.StatePath, cfg.Passphrase)
		if err != nil {
			log.Warn("Не удалось инициализировать SQLite, используем память", slog.Any("error", err))
			storage = NewMemoryStorage()
		} else {
			storage = sqliteStorage
		}
	}

	transport := NewTransport(cfg.BaseURL(), cfg.HTTPTimeout, log)

	app, err := NewWithDeps(cfg, log, storage, transport)
	if err != nil {
		storage.Close()
		return nil, err
	}
	return app, nil
}

// NewWithDeps собирает приложение из готовых зависимостей
func NewWithDeps(cfg *config.Config, log *slog.Logger, storage Storage, transport *Transport) (*App, error) {
	d, err := role.Lookup(cfg.Role)
	if err != nil {
		return nil, err
	}

	recordValidator, err := record.NewValidator()
	if err != nil {
		return nil, err
	}
	employeeValidator, err := employee.NewValidator()
	if err != nil {
		return nil, err
	}

	guard := session.NewGuard(storage, log)
	g := gate{
		transport: transport,
		guard:     guard,
		role:      d,
		log:       log.With(slog.String("role", d.Name.String())),
	}

	return &App{
		config:    cfg,
		log:       log,
		storage:   storage,
		transport: transport,
		guard:     guard,
		role:      d,
		Records:   NewSynchronizer(g, recordValidator),
		Images:    NewGallery(g, DefaultGalleryTTL),
		Employees: NewDirectory(g, employeeValidator),
	}, nil
}

// Role - дескриптор активной роли
func (a *App) Role() role.Descriptor {
	return a.role
}

// Login выполняет вход и сохраняет токен и профиль под ключами роли
func (a *App) Login(ctx context.Context, creds session.Credentials) (*session.Session, error) {
	if creds.Login == "" || creds.Password == "" {
		return nil, validationFailed(OpLogin, errors.New("login and password are required"))
	}

	body := map[string]string{
		a.role.LoginUserField: creds.Login,
		"password":            creds.Password,
	}

	var resp session.LoginResponse
	if err := a.transport.Do(ctx, OpLogin, http.MethodPost, a.role.LoginPath, "", body, &resp); err != nil {
		// 401 на входе - неверный логин или пароль, а не истёкшая сессия
		var apiErr *APIError
		if errors.As(err, &apiErr) && errors.Is(err, ErrUnauthorized) {
			return nil, &APIError{Op: OpLogin, Kind: ErrValidationFailed, Status: apiErr.Status, Message: apiErr.Message}
		}
		return nil, err
	}
	if resp.Token == "" {
		return nil, &APIError{Op: OpLogin, Kind: ErrNetworkFailure, Err: errors.New("login response without token")}
	}
	if a.role.RequireIdentity && resp.User == nil {
		return nil, &APIError{Op: OpLogin, Kind: ErrNetworkFailure, Err: session.ErrNoIdentity}
	}

	sess, err := a.guard.Store(a.role, resp)
	if err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	a.log.Info("logged in", slog.String("role", a.role.Name.String()), slog.String("user", creds.Login))
	return sess, nil
}

// Logout удаляет ключи только текущей роли
func (a *App) Logout() error {
	return a.guard.Invalidate(a.role)
}

// Session возвращает текущую сессию роли или ErrUnauthenticated
func (a *App) Session() (*session.Session, error) {
	return a.guard.Resolve(a.role)
}

// StoredKeys - ключи, которые сейчас лежат в хранилище
func (a *App) StoredKeys() ([]string, error) {
	return a.storage.Keys()
}

func (a *App) Close() error {
	a.transport.CloseIdle()
	return a.storage.Close()
}
