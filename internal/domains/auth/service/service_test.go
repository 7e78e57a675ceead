package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"cruisedesk/config"
	"cruisedesk/infras/jwt"
	otelMocks "cruisedesk/infras/otel/mocks"
	"cruisedesk/infras/upstream"
	upstreamMocks "cruisedesk/infras/upstream/mocks"
	"cruisedesk/internal/domains/auth/model/dto"
	"cruisedesk/internal/domains/auth/service"
	userModel "cruisedesk/internal/domains/user/model"
	"cruisedesk/shared/failure"

	jwtLib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Session.MaxAgeSeconds = 600

	return cfg
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	token, err := jwtLib.NewWithClaims(jwtLib.SigningMethodHS256, jwtLib.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	return token
}

func loginResponse(data string) *upstream.Response {
	return &upstream.Response{
		StatusCode: http.StatusOK,
		Envelope: upstream.Envelope{
			Success: true,
			Message: "Login successful",
			Data:    json.RawMessage(data),
		},
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := upstreamMocks.NewMockClient(ctrl)
	svc := service.New(mockClient, jwt.New(), testConfig(), otelMocks.NewOtel())

	req := dto.LoginRequest{Email: "ana@example.com", Password: "secret123"}
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	token := signedToken(t, exp)

	tests := []struct {
		name      string
		setupMock func()
		check     func(t *testing.T, res dto.Session)
		wantCode  int
	}{
		{
			name: "jwt expiry drives the session",
			setupMock: func() {
				mockClient.EXPECT().
					Do(gomock.Any(), upstream.Request{Method: http.MethodPost, Path: "/auth/login", Body: req}).
					Return(loginResponse(`{"token":"`+token+`","user":{"id":1,"email":"ana@example.com","roles":"Admin"}}`), nil)
			},
			check: func(t *testing.T, res dto.Session) {
				assert.Equal(t, token, res.Token)
				assert.True(t, exp.Equal(res.ExpiresAt))
				assert.Equal(t, userModel.Roles{"admin"}, decodeUser(t, res.User).Roles)
			},
		},
		{
			name: "opaque token falls back to the max age",
			setupMock: func() {
				mockClient.EXPECT().
					Do(gomock.Any(), gomock.Any()).
					Return(loginResponse(`{"access_token":"opaque","user":{"id":1}}`), nil)
			},
			check: func(t *testing.T, res dto.Session) {
				assert.Equal(t, "opaque", res.Token)
				assert.WithinDuration(t, time.Now().Add(10*time.Minute), res.ExpiresAt, 5*time.Second)
			},
		},
		{
			name: "upstream rejection is relayed",
			setupMock: func() {
				mockClient.EXPECT().
					Do(gomock.Any(), gomock.Any()).
					Return(nil, failure.FromStatus(http.StatusUnauthorized, "Invalid credentials"))
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "missing token is a bad gateway",
			setupMock: func() {
				mockClient.EXPECT().
					Do(gomock.Any(), gomock.Any()).
					Return(loginResponse(`{"user":{"id":1}}`), nil)
			},
			wantCode: http.StatusBadGateway,
		},
		{
			name: "already expired token",
			setupMock: func() {
				mockClient.EXPECT().
					Do(gomock.Any(), gomock.Any()).
					Return(loginResponse(`{"token":"`+signedToken(t, time.Now().Add(-time.Minute))+`"}`), nil)
			},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), req)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := upstreamMocks.NewMockClient(ctrl)
	svc := service.New(mockClient, jwt.New(), testConfig(), otelMocks.NewOtel())

	mockClient.EXPECT().
		Do(gomock.Any(), upstream.Request{Method: http.MethodPost, Path: "/auth/logout", Token: "abc"}).
		Return(nil, failure.BadGateway("upstream service is unavailable"))

	svc.Logout(context.Background(), "abc")

	// no token, no upstream call
	svc.Logout(context.Background(), "")
}

func TestAuthService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := upstreamMocks.NewMockClient(ctrl)
	svc := service.New(mockClient, jwt.New(), testConfig(), otelMocks.NewOtel())

	mockClient.EXPECT().
		Do(gomock.Any(), upstream.Request{Method: http.MethodGet, Path: "/auth/me"}).
		Return(loginResponse(`{"id":5,"name":"Ana","roles":[{"name":"Editor"},"admin"]}`), nil)

	raw, err := svc.Me(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":5,"name":"Ana","roles":["editor","admin"]}`, string(raw))

	mockClient.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		Return(nil, failure.FromStatus(http.StatusUnauthorized, "Unauthenticated"))

	_, err = svc.Me(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func decodeUser(t *testing.T, raw json.RawMessage) userModel.User {
	t.Helper()

	var user userModel.User
	require.NoError(t, json.Unmarshal(raw, &user))

	return user
}
