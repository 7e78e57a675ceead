package auth

import (
	"net/http"

	"cruisedesk/config"
	"cruisedesk/infras/otel"
	"cruisedesk/internal/domains/auth/model/dto"
	"cruisedesk/internal/domains/auth/service"
	"cruisedesk/shared/constant"
	"cruisedesk/shared/session"
	"cruisedesk/shared/validator"
	"cruisedesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	messageLoggedIn  = "Logged in successfully"
	messageLoggedOut = "Logged out successfully"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
	cfg     *config.Config
}

func New(service service.Auth, otel otel.Otel, cfg *config.Config) Handler {
	return Handler{
		service: service,
		otel:    otel,
		cfg:     cfg,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", handler.Login)
		r.Post("/logout", handler.Logout)
		r.Get("/me", handler.Me)
	})
}

// Login handles user login
// @Summary Login a user
// @Description Forward the credentials upstream and keep the returned token in an HttpOnly session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[model.User] "User logged in successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login user")

		response.WithError(w, err)

		return
	}

	session.SetCookie(w, handler.cfg, res.Token, res.ExpiresAt)

	scope.AddEvent("User logged in successfully")

	response.WithData(w, http.StatusOK, messageLoggedIn, res.User)
}

// Logout handles user logout
// @Summary Logout
// @Description Tell the upstream about the logout when a session is present and always clear the session cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /v1/auth/logout [post]
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	handler.service.Logout(ctx, session.TokenFromRequest(r, handler.cfg))
	session.ClearCookie(w, handler.cfg)

	response.WithMessage(w, http.StatusOK, messageLoggedOut)
}

// Me returns the signed-in user
// @Summary Current user
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[model.User]
// @Failure 401 {object} response.Error
// @Router /v1/auth/me [get]
// @Security CookieAuth
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	user, err := handler.service.Me(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load current user")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, constant.ResponseMessageOK, user)
}
