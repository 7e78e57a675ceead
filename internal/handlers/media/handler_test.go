package media_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"cruisedesk/config"
	otelMocks "cruisedesk/infras/otel/mocks"
	s3Mocks "cruisedesk/infras/s3/mocks"
	"cruisedesk/internal/domains/media/service"
	"cruisedesk/internal/handlers/media"
	"cruisedesk/shared/constant"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type uploadBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		URL string `json:"url"`
		Key string `json:"key"`
	} `json:"data"`
}

func newRouter(t *testing.T) (chi.Router, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)
	storage := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.App.Upload.Driver = constant.UploadDriverS3
	cfg.App.Upload.MaxSizeMB = 1
	cfg.App.Upload.Folder = "uploads"

	ot := otelMocks.NewOtel()
	handler := media.New(service.New(nil, storage, cfg, ot), ot, cfg)

	router := chi.NewRouter()
	handler.Router(router)

	return router, storage
}

func multipartBody(t *testing.T, contentType string, folder string) (*bytes.Buffer, string) {
	t.Helper()

	return multipartFile(t, contentType, folder, []byte("png-bytes"))
}

func multipartFile(t *testing.T, contentType string, folder string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="deck.png"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write(content)
	require.NoError(t, err)

	if folder != "" {
		require.NoError(t, writer.WriteField("folder", folder))
	}

	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUpload_Multipart(t *testing.T) {
	router, storage := newRouter(t)

	storage.EXPECT().
		Upload(gomock.Any(), gomock.Any(), "image/png", []byte("png-bytes")).
		DoAndReturn(func(_ any, key, _ string, _ []byte) (string, error) {
			assert.True(t, strings.HasPrefix(key, "cabins/"))
			assert.True(t, strings.HasSuffix(key, ".png"))

			return "https://cdn.cruise.test/" + key, nil
		})

	body, contentType := multipartBody(t, "image/png", "cabins")

	request := httptest.NewRequest(http.MethodPost, "/uploads", body)
	request.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var got uploadBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))

	assert.True(t, got.Success)
	assert.Equal(t, "https://cdn.cruise.test/"+got.Data.Key, got.Data.URL)
}

func TestUpload_Base64(t *testing.T) {
	router, storage := newRouter(t)

	storage.EXPECT().
		Upload(gomock.Any(), gomock.Any(), "image/webp", []byte("webp")).
		Return("https://cdn.cruise.test/uploads/x.webp", nil)

	request := httptest.NewRequest(http.MethodPost, "/uploads", strings.NewReader(`{"file":"data:image/webp;base64,d2VicA=="}`))
	request.Header.Set("Content-Type", "application/json; charset=utf-8")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestUpload_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		request func(t *testing.T) *http.Request
	}{
		{
			name: "pdf",
			request: func(t *testing.T) *http.Request {
				body, contentType := multipartBody(t, "application/pdf", "")

				request := httptest.NewRequest(http.MethodPost, "/uploads", body)
				request.Header.Set("Content-Type", contentType)

				return request
			},
		},
		{
			name: "not a data url",
			request: func(_ *testing.T) *http.Request {
				request := httptest.NewRequest(http.MethodPost, "/uploads", strings.NewReader(`{"file":"aGVsbG8="}`))
				request.Header.Set("Content-Type", "application/json")

				return request
			},
		},
		{
			name: "plain text body",
			request: func(_ *testing.T) *http.Request {
				request := httptest.NewRequest(http.MethodPost, "/uploads", strings.NewReader("hello"))
				request.Header.Set("Content-Type", "text/plain")

				return request
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newRouter(t)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, tt.request(t))

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestUpload_BodyOverLimit(t *testing.T) {
	oversized := bytes.Repeat([]byte("x"), 2<<20)

	tests := []struct {
		name    string
		request func(t *testing.T) *http.Request
	}{
		{
			name: "declared length",
			request: func(t *testing.T) *http.Request {
				body, contentType := multipartFile(t, "image/png", "", oversized)

				request := httptest.NewRequest(http.MethodPost, "/uploads", body)
				request.Header.Set("Content-Type", contentType)

				return request
			},
		},
		{
			name: "streamed multipart",
			request: func(t *testing.T) *http.Request {
				body, contentType := multipartFile(t, "image/png", "", oversized)

				request := httptest.NewRequest(http.MethodPost, "/uploads", io.MultiReader(body))
				request.Header.Set("Content-Type", contentType)

				return request
			},
		},
		{
			name: "streamed base64",
			request: func(_ *testing.T) *http.Request {
				payload := `{"file":"data:image/png;base64,` + strings.Repeat("QUFB", 1<<19) + `"}`

				request := httptest.NewRequest(http.MethodPost, "/uploads", io.MultiReader(strings.NewReader(payload)))
				request.Header.Set("Content-Type", "application/json")

				return request
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newRouter(t)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, tt.request(t))

			assert.Equal(t, http.StatusRequestEntityTooLarge, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "upload is too large")
		})
	}
}
