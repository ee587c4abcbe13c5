package fakeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/exp/slog"

	"murojaat/internal/domain/role"
	"murojaat/internal/model"
)

// Claims - содержимое токена бэкенда
type Claims struct {
	Role string `json:"role"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Tokens выпускает и проверяет HS256-токены
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret []byte, ttl time.Duration) *Tokens {
	return &Tokens{secret: secret, ttl: ttl, now: time.Now}
}

// SetTTL меняет срок жизни новых токенов
func (t *Tokens) SetTTL(ttl time.Duration) {
	t.ttl = ttl
}

func (t *Tokens) Issue(subject model.ID, r role.Name, name string) (string, error) {
	now := t.now()
	claims := Claims{
		Role: string(r),
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (t *Tokens) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

type contextKey string

const claimsKey contextKey = "claims"

// authMiddleware пропускает только токены перечисленных ролей: 401 без токена, 403 для чужой роли
func (s *Server) authMiddleware(allowed ...role.Name) func(huma.Context, func(huma.Context)) {
	log := s.log.With(slog.String("component", "auth_middleware"))

	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			log.Debug("missing bearer token", slog.String("path", ctx.URL().Path))
			writeError(ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := s.tokens.Parse(token)
		if err != nil {
			log.Debug("invalid token", slog.Any("error", err))
			writeError(ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		permitted := false
		for _, r := range allowed {
			if claims.Role == string(r) {
				permitted = true
				break
			}
		}
		if !permitted {
			writeError(ctx, http.StatusForbidden, "Forbidden")
			return
		}

		next(huma.WithContext(ctx, context.WithValue(ctx.Context(), claimsKey, claims)))
	}
}

// faultMiddleware отдаёт заранее заданную ошибку вместо обработчика
func (s *Server) faultMiddleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if f, ok := s.takeFault(); ok && f.status != 0 {
			writeError(ctx, f.status, f.message)
			return
		}
		next(ctx)
	}
}

func claimsFrom(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	if !ok {
		return nil, errors.New("no claims in context")
	}
	return claims, nil
}

func writeError(ctx huma.Context, status int, message string) {
	ctx.SetHeader("Content-Type", "application/json")
	ctx.SetStatus(status)
	_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{"error": message})
}
