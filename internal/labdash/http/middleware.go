package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/labdash/internal/labdash/domain"
	"github.com/aussiebroadwan/labdash/internal/labdash/service"
	"github.com/aussiebroadwan/labdash/pkg/dashsdk"
	"github.com/aussiebroadwan/labdash/pkg/httpx"
	"github.com/aussiebroadwan/labdash/pkg/slogx"
	"github.com/gorilla/csrf"
)

// sessionChecker adapts SessionService to httpx.LoadSession. The principal
// carries the profile's current role, not the one signed into the token, so
// role changes apply on the next request.
type sessionChecker struct {
	sessions *service.SessionService
}

func (c sessionChecker) CheckSession(ctx context.Context, token string) (httpx.Principal, error) {
	info, err := c.sessions.Check(ctx, token)
	if err != nil {
		return httpx.Principal{}, err
	}
	return httpx.Principal{
		UserID:    info.Profile.ID,
		SessionID: info.Session.ID,
		Role:      string(info.Profile.Role),
		Name:      info.Profile.FullName,
	}, nil
}

func visibleFor(p httpx.Principal) domain.ModuleSet {
	return domain.ResolveRole(p.Role)
}

// requireModule rejects API calls from users whose role cannot see m.
func requireModule(m domain.Module) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := httpx.PrincipalFrom(r.Context())
			if !ok {
				httpx.WriteError(w, http.StatusUnauthorized, dashsdk.ErrorCodeNoSession)
				return
			}
			if !visibleFor(p).Has(m) {
				slogx.FromContext(r.Context()).Info("module not visible",
					slog.String("module", string(m)), slog.String("role", p.Role))
				httpx.WriteError(w, http.StatusForbidden, dashsdk.ErrorCodeForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requireModulePage sends users whose role cannot see m back to the
// dashboard.
func requireModulePage(m domain.Module) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := httpx.PrincipalFrom(r.Context())
			if !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			if !visibleFor(p).Has(m) {
				http.Redirect(w, r, "/home", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Routes that must accept a POST before the browser holds a CSRF cookie.
var csrfExempt = []string{"/api/login", "/api/bootstrap"}

func isCSRFExempt(path string) bool {
	for _, p := range csrfExempt {
		if path == p {
			return true
		}
	}
	return false
}

// csrfMiddleware returns nil when no key is configured.
func (r *Router) csrfMiddleware() httpx.Middleware {
	if len(r.csrfKey) == 0 {
		return nil
	}

	protect := csrf.Protect(r.csrfKey,
		csrf.Secure(r.cookie.Secure),
		csrf.Path("/"),
		csrf.CookieName("labdash_csrf"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.RequestHeader(dashsdk.CSRFHeader),
		csrf.ErrorHandler(http.HandlerFunc(csrfFailure)),
	)

	return func(next http.Handler) http.Handler {
		protected := protect(exposeCSRFToken(next))
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !r.cookie.Secure {
				req = csrf.PlaintextHTTPRequest(req)
			}
			if isCSRFExempt(req.URL.Path) {
				req = csrf.UnsafeSkipCheck(req)
			}
			protected.ServeHTTP(w, req)
		})
	}
}

// exposeCSRFToken hands the masked token to non-browser clients.
func exposeCSRFToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if t := csrf.Token(r); t != "" {
			w.Header().Set(dashsdk.CSRFHeader, t)
		}
		next.ServeHTTP(w, r)
	})
}

func csrfFailure(w http.ResponseWriter, r *http.Request) {
	reason := "unknown"
	if err := csrf.FailureReason(r); err != nil {
		reason = err.Error()
	}
	slogx.FromContext(r.Context()).Warn("csrf check failed", slog.String("reason", reason))
	httpx.WriteError(w, http.StatusForbidden, "csrf_invalid")
}
