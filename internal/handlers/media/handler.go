package media

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"cruisedesk/config"
	"cruisedesk/infras/otel"
	"cruisedesk/internal/domains/media/model/dto"
	"cruisedesk/internal/domains/media/service"
	"cruisedesk/shared/base64"
	"cruisedesk/shared/constant"
	"cruisedesk/shared/failure"
	"cruisedesk/shared/validator"
	"cruisedesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	defaultBase64Filename = "upload"
	messageTooLarge       = "upload is too large"

	bytesPerMB = 1 << 20
	// form fields, part headers and the data url prefix
	bodyOverheadBytes = 64 << 10
)

type Handler struct {
	service service.Media
	otel    otel.Otel
	cfg     *config.Config
}

func New(service service.Media, otel otel.Otel, cfg *config.Config) Handler {
	return Handler{
		service: service,
		otel:    otel,
		cfg:     cfg,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/uploads", handler.Upload)
}

// Upload stores an image and returns where it lives.
// @Summary Upload an image
// @Description Accepts a multipart "file" field, or a JSON body with the file as a base64 data url.
// @Tags Media
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param file formData file true "Image (png, jpg, jpeg, webp)"
// @Param folder formData string false "Target folder"
// @Success 201 {object} response.Data[model.StoredObject]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 413 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/uploads [post]
// @Security CookieAuth
func (handler *Handler) Upload(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Upload")
	defer scope.End()

	limit := handler.bodyLimit()
	if request.ContentLength > limit {
		log.Warn().Int64("size", request.ContentLength).Msg("upload rejected before reading")

		response.WithError(writer, failure.FromStatus(http.StatusRequestEntityTooLarge, messageTooLarge))

		return
	}

	body := &cappedBody{ReadCloser: http.MaxBytesReader(writer, request.Body, limit)}
	request.Body = body

	var (
		req dto.UploadRequest
		err error
	)

	mediaType, _, _ := mime.ParseMediaType(request.Header.Get(constant.RequestHeaderContentType))
	switch strings.ToLower(mediaType) {
	case constant.ContentTypeJSON:
		req, err = fromBase64(request)
	case constant.ContentTypeMultipartFormData:
		req, err = fromMultipart(request)
	default:
		err = failure.BadRequestFromString("upload must be multipart/form-data or a JSON base64 body")
	}

	if err != nil && body.exceeded {
		err = failure.FromStatus(http.StatusRequestEntityTooLarge, messageTooLarge)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read upload")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("filename", req.Filename).Msg("failed to upload file")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("File uploaded " + req.Filename)

	response.WithData(writer, res.StatusCode, res.Message, res.Data)
}

// bodyLimit allows the configured file size once base64 encoded, plus the envelope around it.
func (handler *Handler) bodyLimit() int64 {
	maxMB := handler.cfg.App.Upload.MaxSizeMB
	if maxMB <= 0 {
		return constant.RequestMaxMemory
	}

	return int64(maxMB*bytesPerMB*4/3) + bodyOverheadBytes
}

// cappedBody remembers whether a read hit the MaxBytesReader limit.
type cappedBody struct {
	io.ReadCloser
	exceeded bool
}

func (b *cappedBody) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		b.exceeded = true
	}

	return n, err //nolint:wrapcheck
}

func fromMultipart(request *http.Request) (dto.UploadRequest, error) {
	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return dto.UploadRequest{}, failure.BadRequest(fmt.Errorf("failed to parse multipart form: %w", err)) //nolint:wrapcheck
	}

	form := dto.MultipartUploadRequest{
		Folder: request.FormValue(constant.FormFolder),
	}

	file, fileHeader, err := request.FormFile(constant.FormFile)
	if err == nil {
		form.File = fileHeader

		defer file.Close()
	}

	if err := validator.ValidateStruct(&form); err != nil {
		return dto.UploadRequest{}, err //nolint:wrapcheck
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return dto.UploadRequest{}, failure.BadRequest(fmt.Errorf("failed to read file: %w", err)) //nolint:wrapcheck
	}

	return dto.UploadRequest{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(constant.RequestHeaderContentType),
		Folder:      form.Folder,
		Data:        data,
	}, nil
}

func fromBase64(request *http.Request) (dto.UploadRequest, error) {
	body := dto.Base64UploadRequest{}

	if err := validator.Validate(request.Body, &body); err != nil {
		return dto.UploadRequest{}, err //nolint:wrapcheck
	}

	contentType, data, err := base64.Decode(body.File)
	if err != nil {
		return dto.UploadRequest{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	filename := body.Filename
	if filename == "" {
		filename = defaultBase64Filename
	}

	return dto.UploadRequest{
		Filename:    filename,
		ContentType: contentType,
		Folder:      body.Folder,
		Data:        data,
	}, nil
}
