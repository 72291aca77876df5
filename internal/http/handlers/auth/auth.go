package auth

import (
	"context"
	"net/http"
	"reemind/internal/core/domain/owner"
	"reemind/internal/core/services/auth"
	"strings"
	"time"
)

const (
	AUTH_TOKEN_PREFIX   = "Bearer "
	AUTH_TOKEN_MAX_LEN  = 1024
	SESSION_COOKIE_NAME = "reemind_session"
)

// ParseToken extracts the session token from the session cookie, falling
// back to the Authorization header for non-browser clients.
func ParseToken(r *http.Request) (token owner.SessionToken, ok bool) {
	if cookie, err := r.Cookie(SESSION_COOKIE_NAME); err == nil && cookie.Value != "" {
		if len(cookie.Value) > AUTH_TOKEN_MAX_LEN {
			return token, false
		}
		return owner.SessionToken(cookie.Value), true
	}

	header := r.Header.Get("authorization")
	if header == "" {
		return token, false
	}
	parts := strings.SplitN(header, AUTH_TOKEN_PREFIX, 2)
	if len(parts) != 2 {
		return token, false
	}
	if len(parts[1]) > AUTH_TOKEN_MAX_LEN {
		return token, false
	}
	return owner.SessionToken(parts[1]), true
}

func SetAuthTokenToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := ParseToken(r)
		if ok {
			ctx := context.WithValue(r.Context(), auth.CONTEXT_AUTH_TOKEN_KEY, token)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

func SetSessionCookie(rw http.ResponseWriter, token owner.SessionToken, validFor time.Duration) {
	http.SetCookie(rw, &http.Cookie{
		Name:     SESSION_COOKIE_NAME,
		Value:    string(token),
		Path:     "/",
		MaxAge:   int(validFor.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(rw http.ResponseWriter) {
	http.SetCookie(rw, &http.Cookie{
		Name:     SESSION_COOKIE_NAME,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
