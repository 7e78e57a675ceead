package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path"
	"strings"

	"cruisedesk/config"
	"cruisedesk/infras/otel"
	"cruisedesk/infras/s3"
	"cruisedesk/infras/upstream"
	"cruisedesk/internal/domains/media/model"
	"cruisedesk/internal/domains/media/model/dto"
	"cruisedesk/shared/constant"
	"cruisedesk/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	bytesPerMB      = 1024 * 1024
	messageUploaded = "File uploaded successfully"
)

type Media interface {
	Upload(ctx context.Context, req dto.UploadRequest) (dto.UploadResponse, error)
}

type serviceImpl struct {
	client upstream.Client
	s3     s3.S3
	cfg    *config.Config
	otel   otel.Otel
}

func New(client upstream.Client, s3 s3.S3, cfg *config.Config, otel otel.Otel) Media {
	return &serviceImpl{
		client: client,
		s3:     s3,
		cfg:    cfg,
		otel:   otel,
	}
}

func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadRequest) (res dto.UploadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, ok := model.Extensions[req.ContentType]; !ok {
		return res, failure.BadRequestFromString(fmt.Sprintf("file must be one of the following types: %s", model.AllowedMimetypes))
	}

	if limit := s.cfg.App.Upload.MaxSizeMB; limit > 0 && float64(len(req.Data)) > limit*bytesPerMB {
		return res, failure.BadRequestFromString(fmt.Sprintf("file must not be larger than %g MB", limit))
	}

	req.Folder = s.folder(req.Folder)

	scope.SetAttributes(map[string]any{
		"media.driver": s.cfg.App.Upload.Driver,
		"media.folder": req.Folder,
		"media.size":   len(req.Data),
	})

	if s.cfg.App.Upload.Driver == constant.UploadDriverS3 {
		return s.uploadToS3(ctx, req)
	}

	return s.uploadToUpstream(ctx, req)
}

func (s *serviceImpl) uploadToUpstream(ctx context.Context, req dto.UploadRequest) (res dto.UploadResponse, err error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, constant.FormFile, escapeQuotes(s.filename(req))))
	header.Set(constant.RequestHeaderContentType, req.ContentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return res, fmt.Errorf("failed to create multipart file: %w", err)
	}

	if _, err = part.Write(req.Data); err != nil {
		return res, fmt.Errorf("failed to write multipart file: %w", err)
	}

	if err = writer.WriteField(constant.FormFolder, req.Folder); err != nil {
		return res, fmt.Errorf("failed to write multipart folder: %w", err)
	}

	if err = writer.Close(); err != nil {
		return res, fmt.Errorf("failed to close multipart body: %w", err)
	}

	resp, err := s.client.Do(ctx, upstream.Request{
		Method:      http.MethodPost,
		Path:        model.PathUpload,
		RawBody:     body.Bytes(),
		ContentType: writer.FormDataContentType(),
	})
	if err != nil {
		log.Error().Err(err).Msg("upstream rejected upload")

		return res, err //nolint:wrapcheck
	}

	return dto.UploadResponse{
		StatusCode: resp.StatusCode,
		Message:    resp.Message,
		Data:       resp.Data,
	}, nil
}

func (s *serviceImpl) uploadToS3(ctx context.Context, req dto.UploadRequest) (res dto.UploadResponse, err error) {
	key := path.Join(req.Folder, uuid.NewString()+"."+model.Extensions[req.ContentType])

	url, err := s.s3.Upload(ctx, key, req.ContentType, req.Data)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload file to S3")

		return res, failure.BadGateway("failed to store file")
	}

	data, err := json.Marshal(model.StoredObject{URL: url, Key: key})
	if err != nil {
		return res, fmt.Errorf("failed to encode stored object: %w", err)
	}

	return dto.UploadResponse{
		StatusCode: http.StatusCreated,
		Message:    messageUploaded,
		Data:       data,
	}, nil
}

// folder keeps uploads inside the configured root: "..", leading slashes and empty segments are dropped.
func (s *serviceImpl) folder(folder string) string {
	cleaned := strings.Trim(path.Clean("/"+strings.TrimSpace(folder)), "/")
	if cleaned == "" {
		return strings.Trim(s.cfg.App.Upload.Folder, "/")
	}

	return cleaned
}

func (s *serviceImpl) filename(req dto.UploadRequest) string {
	if name := path.Base(strings.ReplaceAll(req.Filename, "\\", "/")); name != "" && name != "." && name != "/" {
		return name
	}

	return uuid.NewString() + "." + model.Extensions[req.ContentType]
}

func escapeQuotes(value string) string {
	return strings.NewReplacer("\\", "\\\\", `"`, "\\\"").Replace(value)
}
