package permissions

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EmbeddedFile(t *testing.T) {
	data := Get()
	require.NotNil(t, data)

	assert.False(t, data.Skip)
	assert.True(t, data.FindPermissions("/v1/auth/login", http.MethodPost).Skip)
	assert.True(t, data.FindPermissions("/v1/auth/logout", http.MethodPost).Skip)
	assert.True(t, data.FindPermissions("/healthz", http.MethodGet).Skip)
	assert.True(t, data.FindPermissions("/swagger/*", http.MethodGet).Skip)

	assert.False(t, data.FindPermissions("/v1/auth/me", http.MethodGet).Skip)
	assert.False(t, data.FindPermissions("/v1/auth/login", http.MethodGet).Skip)
	assert.False(t, data.FindPermissions("/v1/cruises", http.MethodGet).Skip)
}

func TestParse_Invalid(t *testing.T) {
	assert.Nil(t, parse([]byte("{")))
}
