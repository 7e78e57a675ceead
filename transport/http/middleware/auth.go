package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"cruisedesk/config"
	"cruisedesk/infras/jwt"
	"cruisedesk/infras/otel"
	"cruisedesk/permissions"
	"cruisedesk/shared/constant"
	"cruisedesk/shared/failure"
	"cruisedesk/shared/session"
	"cruisedesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Auth defines the interface for session middleware
type Auth interface {
	Session(http.Handler) http.Handler
}

type authImpl struct {
	inspector  jwt.Inspector
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthMiddleware(inspector jwt.Inspector, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) Auth {
	return &authImpl{
		inspector:  inspector,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// Session resolves the caller's upstream token and puts it in the context.
// Any 401 written downstream, including ones relayed from the upstream, clears the session cookie.
func (m *authImpl) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer = &statusWriter{
			ResponseWriter: writer,
			onHeader: func(w http.ResponseWriter, status int) {
				if status == http.StatusUnauthorized {
					session.ClearCookie(w, m.cfg)
				}
			},
		}

		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "session.middleware")

		pattern := m.routePattern(request)

		scope.SetAttributes(map[string]any{
			"middleware.type": "session",
			"http.path":       pattern,
			"http.method":     request.Method,
		})

		// Unknown routes fall through to the router's 404.
		if pattern == "" || m.skip(pattern, request.Method) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		if apiKey := request.Header.Get(constant.RequestHeaderAPIKey); apiKey != "" {
			if m.cfg.App.APIKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.cfg.App.APIKey)) != 1 {
				err := failure.ForbiddenError
				scope.TraceError(err)
				scope.End()

				response.WithError(writer, err)

				return
			}

			scope.SetAttribute("http.source", "internal")
			scope.End()

			ctx = context.WithValue(ctx, constant.ContextKeyInternal, true)
			ctx = context.WithValue(ctx, constant.ContextKeySessionToken, m.cfg.Upstream.ServiceToken)

			next.ServeHTTP(writer, request.WithContext(ctx))

			return
		}

		token := session.TokenFromRequest(request, m.cfg)
		if token == "" {
			err := failure.MissingSessionError
			scope.TraceError(err)
			scope.End()

			response.WithError(writer, err)

			return
		}

		claims, err := m.inspector.Inspect(token)

		switch {
		case errors.Is(err, jwt.ErrExpiredToken):
			log.Info().Str("subject", claims.Subject).Msg("rejected expired session")

			err := failure.ExpiredSessionError
			scope.TraceError(err)
			scope.End()

			response.WithError(writer, err)

			return
		case err != nil:
			// Opaque tokens are left for the upstream to judge.
			log.Debug().Err(err).Msg("session token is not a readable JWT")
		}

		scope.SetAttribute("http.source", "client")
		scope.End()

		ctx = context.WithValue(ctx, constant.ContextKeySessionToken, token)
		if claims.Subject != "" {
			ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.Subject)
		}

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *authImpl) routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	return rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
}

func (m *authImpl) skip(pattern, method string) bool {
	if m.permission == nil {
		return false
	}

	if m.permission.Skip {
		return true
	}

	return m.permission.FindPermissions(pattern, method).Skip
}
