package session

import (
	"net/http"
	"time"

	"cruisedesk/config"
	"cruisedesk/infras/jwt"
	"cruisedesk/shared/constant"
	"cruisedesk/shared/timezone"
)

// SetCookie stores the upstream session token until expiresAt.
func SetCookie(writer http.ResponseWriter, cfg *config.Config, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     cfg.App.Session.CookieName,
		Value:    token,
		Path:     "/",
		Domain:   cfg.App.Session.CookieDomain,
		Expires:  expiresAt.UTC(),
		MaxAge:   maxAge,
		Secure:   cfg.App.Session.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearCookie(writer http.ResponseWriter, cfg *config.Config) {
	http.SetCookie(writer, &http.Cookie{
		Name:     cfg.App.Session.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   cfg.App.Session.CookieDomain,
		Expires:  time.Unix(0, 0).UTC(),
		MaxAge:   -1,
		Secure:   cfg.App.Session.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// DefaultExpiry is used when the token carries no readable exp claim.
func DefaultExpiry(cfg *config.Config) time.Time {
	return timezone.Now().Add(time.Duration(cfg.App.Session.MaxAgeSeconds) * time.Second)
}

// TokenFromRequest reads the session cookie first and the bearer header second.
func TokenFromRequest(request *http.Request, cfg *config.Config) string {
	if cookie, err := request.Cookie(cfg.App.Session.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	token, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
	if err != nil {
		return ""
	}

	return token
}
