package cabin

import (
	"net/http"

	"cruisedesk/infras/otel"
	"cruisedesk/internal/domains/cabin/model"
	"cruisedesk/internal/domains/cabin/model/dto"
	"cruisedesk/internal/domains/cabin/repository"
	"cruisedesk/internal/domains/cabin/service"
	"cruisedesk/internal/handlers/crud"
	"cruisedesk/shared/constant"
	"cruisedesk/shared/validator"
	"cruisedesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	urlParamCruiseID = "cruiseID"
	messageSynced    = "Cabins synchronized successfully"
)

var cruiseParent = crud.Parent{URLParam: urlParamCruiseID, Field: model.FieldCruiseID}

type Handler struct {
	crud    *crud.Handler[model.Cabin, dto.CreateCabinRequest, dto.UpdateCabinRequest]
	service service.Cabin
	otel    otel.Otel
}

func New(repo repository.Cabin, service service.Cabin, otel otel.Otel) Handler {
	return Handler{
		crud:    crud.New[model.Cabin, dto.CreateCabinRequest, dto.UpdateCabinRequest](crud.Config{Name: constant.EntityCabin}, repo, otel),
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/cruises/{cruiseID}/cabins/sync", handler.Sync)

	router.Route("/cabins", func(routerGroup chi.Router) {
		crud.Mount(routerGroup, crud.Routes{
			List:   handler.List,
			Create: handler.Create,
			Get:    handler.Get,
			Update: handler.Update,
			Delete: handler.Delete,
		})
	})

	router.Route("/cruises/{cruiseID}/cabins", func(routerGroup chi.Router) {
		crud.Mount(routerGroup, crud.Routes{
			List:   handler.ListByCruise,
			Create: handler.CreateForCruise,
			Get:    handler.Get,
			Update: handler.Update,
			Delete: handler.Delete,
		})
	})
}

// List relays a page of cabins.
// @Summary List cabins
// @Tags Cabin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param sort_by query string false "Sort field"
// @Param sort_dir query string false "Sort direction" Enums(asc, desc)
// @Param cruise_id query string false "Filter by cruise"
// @Param cabin_type query string false "Filter by cabin type"
// @Success 200 {object} response.List[model.Cabin]
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/cabins [get]
// @Security CookieAuth
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	handler.crud.List(nil)(writer, request)
}

// Create creates a cabin.
// @Summary Create a cabin
// @Tags Cabin
// @Accept json
// @Produce json
// @Param request body dto.CreateCabinRequest true "Cabin"
// @Success 201 {object} response.Data[model.Cabin]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/cabins [post]
// @Security CookieAuth
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Create(nil)(writer, request)
}

// ListByCruise relays a page of the cabins of one cruise.
// @Summary List cabins of a cruise
// @Tags Cabin
// @Produce json
// @Param cruiseID path string true "Cruise ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param sort_by query string false "Sort field"
// @Param sort_dir query string false "Sort direction" Enums(asc, desc)
// @Param cabin_type query string false "Filter by cabin type"
// @Success 200 {object} response.List[model.Cabin]
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/cruises/{cruiseID}/cabins [get]
// @Security CookieAuth
func (handler *Handler) ListByCruise(writer http.ResponseWriter, request *http.Request) {
	handler.crud.List(&cruiseParent)(writer, request)
}

// CreateForCruise creates a cabin under the cruise in the path.
// @Summary Create a cabin for a cruise
// @Tags Cabin
// @Accept json
// @Produce json
// @Param cruiseID path string true "Cruise ID"
// @Param request body dto.CreateCabinRequest true "Cabin"
// @Success 201 {object} response.Data[model.Cabin]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/cruises/{cruiseID}/cabins [post]
// @Security CookieAuth
func (handler *Handler) CreateForCruise(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Create(&cruiseParent)(writer, request)
}

// Get relays one cabin.
// @Summary Get a cabin
// @Tags Cabin
// @Produce json
// @Param id path string true "Cabin ID"
// @Success 200 {object} response.Data[model.Cabin]
// @Failure 404 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/cabins/{id} [get]
// @Security CookieAuth
func (handler *Handler) Get(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Get(writer, request)
}

// Update forwards PUT as a replacement and PATCH as a partial update of a cabin.
// @Summary Update a cabin
// @Tags Cabin
// @Accept json
// @Produce json
// @Param id path string true "Cabin ID"
// @Param request body dto.UpdateCabinRequest true "Fields to change"
// @Success 200 {object} response.Data[model.Cabin]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/cabins/{id} [put]
// @Router /v1/cabins/{id} [patch]
// @Security CookieAuth
func (handler *Handler) Update(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Update(writer, request)
}

// Delete removes a cabin.
// @Summary Delete a cabin
// @Tags Cabin
// @Produce json
// @Param id path string true "Cabin ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/cabins/{id} [delete]
// @Security CookieAuth
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Delete(writer, request)
}

// Sync applies a batch of cabin edits for one cruise.
// @Summary Synchronize cabins
// @Description Merge new, edited and deleted cabin drafts and apply them one by one: deletes, then updates, then creates.
// @Tags Cabin
// @Accept json
// @Produce json
// @Param cruiseID path string true "Cruise ID"
// @Param request body dto.SyncCabinsRequest true "Cabin drafts"
// @Success 200 {object} response.Data[dto.SyncCabinsResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/cruises/{cruiseID}/cabins/sync [post]
// @Security CookieAuth
func (handler *Handler) Sync(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".cabin.Sync")
	defer scope.End()

	req := dto.SyncCabinsRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	cruiseID := chi.URLParam(request, urlParamCruiseID)

	res, err := handler.service.Sync(ctx, cruiseID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("cruise_id", cruiseID).Msg("failed to sync cabins")

		// Validation errors stop the batch before any result exists.
		if res.Results == nil {
			response.WithError(writer, err)

			return
		}

		response.WithErrorData(writer, err, res)

		return
	}

	response.WithData(writer, http.StatusOK, messageSynced, res)
}
