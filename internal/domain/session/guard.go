package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/exp/slog"

	"murojaat/internal/domain/role"
)

// Guard решает, может ли дашборд роли работать, или пользователя нужно отправить на вход
type Guard struct {
	store Storage
	log   *slog.Logger
	now   func() time.Time
}

func NewGuard(store Storage, log *slog.Logger) *Guard {
	return &Guard{
		store: store,
		log:   log.With(slog.String("component", "session_guard")),
		now:   time.Now,
	}
}

// Resolve читает токен и профиль роли. Без токена, с истёкшим JWT
// или без обязательного профиля возвращает ErrUnauthenticated и чистит ключи роли.
func (g *Guard) Resolve(d role.Descriptor) (*Session, error) {
	token, ok, err := g.store.Get(d.TokenKey)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	if !ok || strings.TrimSpace(token) == "" {
		return nil, g.fail(d, ErrUnauthenticated)
	}

	if g.expired(token) {
		g.log.Info("token expired", slog.String("role", d.Name.String()))
		return nil, g.fail(d, ErrUnauthenticated)
	}

	sess := &Session{Role: d, Token: token}
	if d.IdentityKey == "" {
		return sess, nil
	}

	raw, ok, err := g.store.Get(d.IdentityKey)
	if err != nil {
		return nil, fmt.Errorf("read identity: %w", err)
	}
	if ok && raw != "" {
		var ident Identity
		if err := json.Unmarshal([]byte(raw), &ident); err != nil {
			g.log.Warn("broken identity in storage", slog.String("role", d.Name.String()), slog.Any("error", err))
		} else {
			sess.Identity = &ident
		}
	}

	if d.RequireIdentity && sess.Identity == nil {
		return nil, g.fail(d, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrNoIdentity))
	}

	return sess, nil
}

// Store сохраняет результат входа под ключами роли
func (g *Guard) Store(d role.Descriptor, resp LoginResponse) (*Session, error) {
	if resp.Token == "" {
		return nil, errors.New("empty token in login response")
	}

	if err := g.store.Set(d.TokenKey, resp.Token); err != nil {
		return nil, fmt.Errorf("save token: %w", err)
	}

	sess := &Session{Role: d, Token: resp.Token, Identity: resp.User}
	if d.IdentityKey == "" || resp.User == nil {
		return sess, nil
	}

	data, err := json.Marshal(resp.User)
	if err != nil {
		return nil, fmt.Errorf("marshal identity: %w", err)
	}
	if err := g.store.Set(d.IdentityKey, string(data)); err != nil {
		return nil, fmt.Errorf("save identity: %w", err)
	}

	return sess, nil
}

// Invalidate удаляет токен и профиль только этой роли
func (g *Guard) Invalidate(d role.Descriptor) error {
	if err := g.store.Delete(d.Keys()...); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	g.log.Debug("session cleared", slog.String("role", d.Name.String()))
	return nil
}

// Check проверяет ответ сервера: 401 и 403 означают конец сессии
func (g *Guard) Check(d role.Descriptor, status int) error {
	if !IsExpiredStatus(status) {
		return nil
	}
	g.log.Info("server rejected session", slog.String("role", d.Name.String()), slog.Int("status", status))
	return g.fail(d, ErrUnauthenticated)
}

// IsExpiredStatus - 401/403 трактуются как истечение сессии, а не как обычная ошибка
func IsExpiredStatus(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}

func (g *Guard) fail(d role.Descriptor, cause error) error {
	if err := g.Invalidate(d); err != nil {
		g.log.Error("failed to clear session", slog.Any("error", err))
	}
	return cause
}

// expired смотрит exp у JWT без проверки подписи. Непрозрачные токены считаются живыми.
func (g *Guard) expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return !exp.Time.After(g.now())
}
