package shared_test

import (
	"context"
	"errors"
	"testing"

	"cruisedesk/shared"
	"cruisedesk/shared/cache/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "negative limit returns 1", total: 100, limit: -5, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
		{name: "limit greater than total", total: 5, limit: 10, expected: 1},
		{name: "large numbers", total: 1000000, limit: 7, expected: 142858},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "cruisedesk:cabin:abc:list:page=1", shared.BuildCacheKey("cabin", "abc", "list", "page=1"))
	assert.Equal(t, "cruisedesk:limiter:1.2.3.4", shared.BuildCacheKey("limiter", "", "1.2.3.4"))
	assert.Equal(t, "cruisedesk:cabin:*", shared.CachePattern("cabin"))
	assert.Equal(t, "cruisedesk:generation:cabin", shared.GenerationKey("cabin"))
}

func TestSessionFingerprint(t *testing.T) {
	first := shared.SessionFingerprint("token-a")

	assert.Len(t, first, 16)
	assert.Equal(t, first, shared.SessionFingerprint("token-a"))
	assert.NotEqual(t, first, shared.SessionFingerprint("token-b"))
	assert.NotContains(t, first, "token")
	assert.Equal(t, "anonymous", shared.SessionFingerprint(""))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	gomock.InOrder(
		redisCache.EXPECT().Increment(gomock.Any(), "cruisedesk:generation:cabin", 0).Return(int64(2), nil),
		redisCache.EXPECT().Clear(gomock.Any(), "cruisedesk:cabin:*").Return(nil),
		redisCache.EXPECT().Increment(gomock.Any(), "cruisedesk:generation:price", 0).Return(int64(0), errors.New("redis down")),
		redisCache.EXPECT().Clear(gomock.Any(), "cruisedesk:price:*").Return(errors.New("redis down")),
	)

	shared.InvalidateCaches(context.Background(), redisCache, "cabin", "price")
	shared.InvalidateCaches(context.Background(), nil, "cabin")
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *int {
	return &i
}
