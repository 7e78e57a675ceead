package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySessionToken contextKey = "session_token"
	ContextKeyUserID       contextKey = "user_id"
	ContextKeyRequestID    contextKey = "request_id"
	ContextKeyInternal     contextKey = "internal"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
	RequestParamSearch  = "search"
)

const (
	RequestParamID   = "id"
	RequestMaxMemory = 10 << 20 // 10 MB
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
	MaxValueLimit     = 100
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)

const (
	OtelServiceScopeName    = "service"
	OtelHandlerScopeName    = "handler"
	OtelRepositoryScopeName = "repository"
	OtelUpstreamScopeName   = "upstream"
	OtelS3ScopeName         = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderAccept             = "Accept"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
	RequestHeaderRetryAfter         = "Retry-After"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeMultipartFormData = "multipart/form-data"
	FormFile                     = "file"
	FormFolder                   = "folder"
	BearerPrefix                 = "Bearer "
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseMessageOK                 = "OK"
)

const (
	ServerEnvDevelopment = "development"
)

const (
	EntityCruise       = "cruise"
	EntityHotel        = "hotel"
	EntityHotelRoom    = "hotel_room"
	EntityCabin        = "cabin"
	EntityItinerary    = "itinerary"
	EntityDeparture    = "departure"
	EntityPrice        = "price"
	EntitySeason       = "season"
	EntityCancelPolicy = "cancel_policy"
	EntityCharter      = "charter"
	EntityUser         = "user"
)

const (
	UploadDriverUpstream = "upstream"
	UploadDriverS3       = "s3"
)

const (
	Asterix = "*"
	Empty   = ""
)
