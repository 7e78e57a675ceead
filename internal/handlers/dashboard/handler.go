package dashboard

import (
	"net/http"

	"cruisedesk/infras/otel"
	"cruisedesk/internal/domains/dashboard/service"
	"cruisedesk/shared/constant"
	"cruisedesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/dashboard/summary", handler.Summary)
}

// Summary returns resource totals for the overview page.
// @Summary Dashboard summary
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Data[dto.SummaryResponse]
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/dashboard/summary [get]
// @Security CookieAuth
func (handler *Handler) Summary(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Summary")
	defer scope.End()

	res, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build dashboard summary")

		response.WithError(writer, err)

		return
	}

	response.WithData(writer, http.StatusOK, constant.ResponseMessageOK, res)
}
