package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cruisedesk/shared/constant"
	"cruisedesk/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken = errors.New("token is not a JWT")
	ErrExpiredToken   = errors.New("token has expired")
	ErrMissingHeader  = errors.New("authorization header is required")
	ErrInvalidHeader  = errors.New("authorization header must start with 'Bearer '")
)

// Claims are the parts of an upstream session token the gateway looks at.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

func (c Claims) HasExpiry() bool {
	return !c.ExpiresAt.IsZero()
}

// Inspector reads session tokens issued by the upstream. Signatures are never verified here:
// the upstream stays the only authority, the gateway only avoids forwarding tokens that are
// already expired and derives cookie lifetimes.
type Inspector interface {
	Inspect(token string) (Claims, error)
}

type inspectorImpl struct {
	parser *jwt.Parser
	now    func() time.Time
}

func New() Inspector {
	return &inspectorImpl{
		parser: jwt.NewParser(),
		now:    timezone.Now,
	}
}

// Inspect returns ErrMalformedToken for opaque tokens and ErrExpiredToken, together with the
// claims, when exp has passed.
func (i *inspectorImpl) Inspect(token string) (Claims, error) {
	mapClaims := jwt.MapClaims{}

	if _, _, err := i.parser.ParseUnverified(token, mapClaims); err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	claims := Claims{Subject: subject(mapClaims)}

	exp, err := mapClaims.GetExpirationTime()
	if err != nil {
		return claims, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	if exp == nil {
		return claims, nil
	}

	claims.ExpiresAt = exp.Time

	if !claims.ExpiresAt.After(i.now()) {
		return claims, ErrExpiredToken
	}

	return claims, nil
}

func subject(claims jwt.MapClaims) string {
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		return sub
	}

	for _, key := range []string{"sub", "user_id", "id"} {
		switch value := claims[key].(type) {
		case string:
			if value != "" {
				return value
			}
		case float64:
			return fmt.Sprintf("%.0f", value)
		}
	}

	return constant.Empty
}

// ExtractTokenFromHeader extracts the token from a bearer Authorization header.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	if len(authHeader) < len(constant.BearerPrefix) || !strings.EqualFold(authHeader[:len(constant.BearerPrefix)], constant.BearerPrefix) {
		return "", ErrInvalidHeader
	}

	token := strings.TrimSpace(authHeader[len(constant.BearerPrefix):])
	if token == "" {
		return "", ErrInvalidHeader
	}

	return token, nil
}
