package upstream

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/upstream_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cruisedesk/config"
	"cruisedesk/infras/metrics"
	"cruisedesk/infras/otel"
	"cruisedesk/shared/constant"
	"cruisedesk/shared/failure"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	maxBodyBytes       = 10 << 20
	defaultTimeout     = 20 * time.Second
	defaultMaxWait     = 10 * time.Second
	backoffBase        = 200 * time.Millisecond
	otelAttrMethod     = "upstream.method"
	otelAttrPath       = "upstream.path"
	otelAttrStatus     = "upstream.status_code"
	otelAttrAttempts   = "upstream.attempts"
	messageUnavailable = "upstream service is unavailable"
	messageTimeout     = "upstream service timed out"
)

type Request struct {
	Method string
	Path   string
	Query  url.Values
	// Body is sent as JSON. RawBody, when set, is sent verbatim with ContentType.
	Body        any
	RawBody     []byte
	ContentType string
	// Token overrides the session token carried by the context.
	Token string
}

type Response struct {
	StatusCode int
	Header     http.Header
	Envelope
}

// Client calls the upstream REST API. Non-2xx answers come back as a *failure.Failure carrying the
// upstream status together with the decoded Response; 2xx envelopes with success:false come back as 422.
type Client interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

type Options struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	// MaxRetryWait caps a single wait between attempts. A Retry-After asking for longer ends the retries.
	MaxRetryWait   time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	UserAgent      string
	Backoff        func(attempt int) time.Duration
	HTTPClient     *http.Client
}

type client struct {
	opts    Options
	hc      *http.Client
	limiter *rate.Limiter
	otel    otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	return NewWithOptions(Options{
		BaseURL:        cfg.Upstream.BaseURL,
		Timeout:        time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second,
		MaxRetries:     cfg.Upstream.MaxRetries,
		MaxRetryWait:   time.Duration(cfg.Upstream.MaxRetryWaitSeconds) * time.Second,
		RateLimitRPS:   cfg.Upstream.RateLimitRPS,
		RateLimitBurst: cfg.Upstream.RateLimitBurst,
		UserAgent:      cfg.App.Name,
	}, ot)
}

func NewWithOptions(opts Options, ot otel.Otel) Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}

	if opts.MaxRetryWait <= 0 {
		opts.MaxRetryWait = defaultMaxWait
	}

	if opts.Backoff == nil {
		opts.Backoff = backoff
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimitRPS), max(opts.RateLimitBurst, 1))
	}

	return &client{
		opts:    opts,
		hc:      hc,
		limiter: limiter,
		otel:    ot,
	}
}

func (c *client) Do(ctx context.Context, req Request) (res *Response, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelUpstreamScopeName, constant.OtelUpstreamScopeName+".Do")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}

	endpoint := endpointLabel(req.Path)

	scope.SetAttributes(map[string]any{
		otelAttrMethod: method,
		otelAttrPath:   req.Path,
	})

	payload, contentType, err := encodeBody(req)
	if err != nil {
		return nil, failure.InternalError(err)
	}

	target := c.url(req)
	token := req.Token

	if token == "" {
		token, _ = ctx.Value(constant.ContextKeySessionToken).(string)
	}

	attempts := 1
	if idempotent(method) {
		attempts += c.opts.MaxRetries
	}

	var lastErr error

	for attempt := range attempts {
		scope.SetAttribute(otelAttrAttempts, attempt+1)

		if err = c.limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil, transportFailure(ctx.Err())
			}

			return nil, failure.GatewayTimeout(messageTimeout)
		}

		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}

		httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
		if err != nil {
			return nil, failure.InternalError(fmt.Errorf("failed to build upstream request: %w", err))
		}

		httpReq.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

		if contentType != "" {
			httpReq.Header.Set(constant.RequestHeaderContentType, contentType)
		}

		if token != "" {
			httpReq.Header.Set(constant.RequestHeaderAuthorization, constant.BearerPrefix+token)
		}

		if requestID, ok := ctx.Value(constant.ContextKeyRequestID).(string); ok && requestID != "" {
			httpReq.Header.Set(constant.RequestHeaderRequestID, requestID)
		}

		if c.opts.UserAgent != "" {
			httpReq.Header.Set(constant.RequestHeaderUserAgent, c.opts.UserAgent)
		}

		start := time.Now()
		httpRes, doErr := c.hc.Do(httpReq)

		var raw []byte
		if doErr == nil {
			raw, doErr = io.ReadAll(io.LimitReader(httpRes.Body, maxBodyBytes))
			_ = httpRes.Body.Close()
		}

		if doErr != nil {
			status := 0
			if httpRes != nil {
				status = httpRes.StatusCode
			}

			metrics.ObserveUpstream(endpoint, method, status, time.Since(start))

			lastErr = transportFailure(doErr)

			log.Warn().Err(doErr).Str("method", method).Str("path", req.Path).Int("attempt", attempt+1).Msg("upstream request failed")

			if ctx.Err() != nil {
				return nil, transportFailure(ctx.Err())
			}

			if attempt+1 < attempts && sleepCtx(ctx, c.opts.Backoff(attempt)) {
				continue
			}

			return nil, lastErr
		}

		metrics.ObserveUpstream(endpoint, method, httpRes.StatusCode, time.Since(start))
		scope.SetAttribute(otelAttrStatus, httpRes.StatusCode)

		if retryable(httpRes.StatusCode) && attempt+1 < attempts {
			wait := retryAfter(httpRes.Header)
			if wait == 0 {
				wait = c.opts.Backoff(attempt)
			}

			if wait <= c.opts.MaxRetryWait {
				log.Warn().Int("status", httpRes.StatusCode).Str("method", method).Str("path", req.Path).Dur("wait", wait).Msg("retrying upstream request")

				if sleepCtx(ctx, wait) {
					continue
				}

				return nil, transportFailure(ctx.Err())
			}

			log.Warn().Int("status", httpRes.StatusCode).Str("path", req.Path).Dur("retry_after", wait).Msg("upstream asked to wait too long, giving up")
		}

		res = &Response{
			StatusCode: httpRes.StatusCode,
			Header:     httpRes.Header,
			Envelope:   DecodeEnvelope(httpRes.StatusCode, raw),
		}

		if !isSuccess(res.StatusCode) {
			return res, failure.FromStatus(res.StatusCode, res.Message)
		}

		// a 2xx envelope can still report success:false
		if !res.Success {
			return res, failure.FromStatus(http.StatusUnprocessableEntity, res.Message)
		}

		return res, nil
	}

	return nil, lastErr
}

func (c *client) url(req Request) string {
	target := strings.TrimRight(c.opts.BaseURL, "/") + "/" + strings.TrimLeft(req.Path, "/")

	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	return target
}

func encodeBody(req Request) ([]byte, string, error) {
	if req.RawBody != nil {
		return req.RawBody, req.ContentType, nil
	}

	if req.Body == nil {
		return nil, "", nil
	}

	payload, err := json.Marshal(req.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode upstream request body: %w", err)
	}

	return payload, constant.ContentTypeJSON, nil
}

func transportFailure(err error) error {
	var netErr net.Error

	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return failure.GatewayTimeout(messageTimeout)
	}

	return failure.BadGateway(messageUnavailable)
}

func idempotent(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}

func retryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// endpointLabel keeps metric cardinality bounded: "/cabins/42" is reported as "/cabins".
func endpointLabel(path string) string {
	trimmed := strings.Trim(path, "/")
	if idx := strings.Index(trimmed, "/"); idx >= 0 {
		trimmed = trimmed[:idx]
	}

	return "/" + trimmed
}

// sleepCtx waits for d or returns false early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// retryAfter parses Retry-After as seconds or an HTTP date. Absent or invalid values give 0.
func retryAfter(header http.Header) time.Duration {
	value := strings.TrimSpace(header.Get(constant.RequestHeaderRetryAfter))
	if value == "" {
		return 0
	}

	if secs, err := strconv.Atoi(value); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}

	if at, err := http.ParseTime(value); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}

	return 0
}

// backoff doubles from 200ms per attempt and adds up to 50% jitter.
func backoff(attempt int) time.Duration {
	base := time.Duration(1<<attempt) * backoffBase

	return base + time.Duration(rand.Int64N(int64(base)/2+1))
}
