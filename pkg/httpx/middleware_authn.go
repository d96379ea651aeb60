package httpx

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/labdash/pkg/slogx"
)

// SessionChecker resolves a session cookie value to its principal.
type SessionChecker interface {
	CheckSession(ctx context.Context, token string) (Principal, error)
}

// SessionCookieOptions controls how the session cookie is written.
type SessionCookieOptions struct {
	Name   string
	Secure bool
}

// SetSessionCookie writes the session cookie.
func SetSessionCookie(w http.ResponseWriter, opts SessionCookieOptions, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     opts.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(w http.ResponseWriter, opts SessionCookieOptions) {
	SetSessionCookie(w, opts, "", -1)
}

// LoadSession attaches the principal to the request context when the cookie
// holds a live session. It never rejects a request.
func LoadSession(checker SessionChecker, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(cookieName)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			p, err := checker.CheckSession(ctx, c.Value)
			if err != nil {
				slogx.FromContext(ctx).Debug("session cookie rejected", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx = WithPrincipal(ctx, p)
			ctx = slogx.WithUserID(ctx, p.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession rejects API requests without a principal with
// 401 {"error":"No session"}.
func RequireSession() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := PrincipalFrom(r.Context()); !ok {
				WriteError(w, http.StatusUnauthorized, "No session")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequirePageSession redirects page requests without a principal to loginPath.
func RequirePageSession(loginPath string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := PrincipalFrom(r.Context()); !ok {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
