package s3

import (
	"context"
	"errors"
	"io"
	"testing"

	"cruisedesk/config"
	otelMocks "cruisedesk/infras/otel/mocks"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectAPI struct {
	put  *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakeObjectAPI) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = params
	f.body, _ = io.ReadAll(params.Body)

	return &s3.PutObjectOutput{}, f.err
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "media"
	cfg.External.S3.APIEndpoint = "https://storage.example.com/"

	return cfg
}

func TestS3_Upload(t *testing.T) {
	api := &fakeObjectAPI{}
	svc := newWithClient(api, testConfig(), otelMocks.NewOtel())

	url, err := svc.Upload(context.Background(), "uploads/a.png", "image/png", []byte("png"))
	require.NoError(t, err)

	assert.Equal(t, "https://storage.example.com/media/uploads/a.png", url)
	assert.Equal(t, "media", aws.ToString(api.put.Bucket))
	assert.Equal(t, "uploads/a.png", aws.ToString(api.put.Key))
	assert.Equal(t, "image/png", aws.ToString(api.put.ContentType))
	assert.Equal(t, int64(3), aws.ToInt64(api.put.ContentLength))
	assert.Equal(t, []byte("png"), api.body)
}

func TestS3_UploadError(t *testing.T) {
	api := &fakeObjectAPI{err: errors.New("denied")}
	svc := newWithClient(api, testConfig(), otelMocks.NewOtel())

	_, err := svc.Upload(context.Background(), "uploads/a.png", "image/png", []byte("png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "denied")
}

func TestS3_PublicURL(t *testing.T) {
	cfg := testConfig()
	cfg.External.S3.PublicDomain = "https://cdn.example.com/"

	svc := newWithClient(&fakeObjectAPI{}, cfg, otelMocks.NewOtel())

	assert.Equal(t, "https://cdn.example.com/uploads/a.png", svc.PublicURL("uploads/a.png"))
}
