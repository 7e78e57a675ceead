package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cruisedesk/config"
	"cruisedesk/infras/jwt"
	"cruisedesk/infras/otel"
	"cruisedesk/infras/upstream"
	"cruisedesk/internal/domains/auth/model/dto"
	"cruisedesk/shared/constant"
	"cruisedesk/shared/failure"
	"cruisedesk/shared/session"

	"github.com/rs/zerolog/log"
)

const (
	pathLogin  = "/auth/login"
	pathLogout = "/auth/logout"
	pathMe     = "/auth/me"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.Session, error)
	Logout(ctx context.Context, token string)
	Me(ctx context.Context) (json.RawMessage, error)
}

type serviceImpl struct {
	client    upstream.Client
	inspector jwt.Inspector
	cfg       *config.Config
	otel      otel.Otel
}

func New(client upstream.Client, inspector jwt.Inspector, cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		client:    client,
		inspector: inspector,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	resp, err := s.client.Do(ctx, upstream.Request{
		Method: http.MethodPost,
		Path:   pathLogin,
		Body:   req,
	})
	if err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("upstream rejected login")

		return res, err //nolint:wrapcheck
	}

	token, user, err := dto.ParseLogin(resp.Data)
	if err != nil {
		log.Error().Err(err).Msg("failed to read upstream login response")

		return res, failure.BadGateway(err.Error())
	}

	expiresAt, err := s.expiry(token)
	if err != nil {
		return res, err
	}

	return dto.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// Logout is best effort: the cookie is cleared regardless of what the upstream answers.
func (s *serviceImpl) Logout(ctx context.Context, token string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()

	if token == "" {
		return
	}

	if _, err := s.client.Do(ctx, upstream.Request{Method: http.MethodPost, Path: pathLogout, Token: token}); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("upstream logout failed")
	}
}

func (s *serviceImpl) Me(ctx context.Context) (res json.RawMessage, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	resp, err := s.client.Do(ctx, upstream.Request{Method: http.MethodGet, Path: pathMe})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return dto.ParseUser(resp.Data), nil
}

// expiry follows the token exp claim when there is one and the configured max age otherwise.
func (s *serviceImpl) expiry(token string) (time.Time, error) {
	claims, err := s.inspector.Inspect(token)

	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return time.Time{}, failure.ExpiredSessionError
	case err != nil || !claims.HasExpiry():
		return session.DefaultExpiry(s.cfg), nil
	default:
		return claims.ExpiresAt, nil
	}
}
