package http

import (
	"log/slog"
	"net/http"
	"time"

	_ "github.com/aussiebroadwan/labdash/api/labdash" // Swagger docs
	"github.com/aussiebroadwan/labdash/internal/labdash/domain"
	"github.com/aussiebroadwan/labdash/internal/labdash/service"
	"github.com/aussiebroadwan/labdash/internal/labdash/store"
	"github.com/aussiebroadwan/labdash/internal/labdash/web"
	"github.com/aussiebroadwan/labdash/pkg/httpx"
	"github.com/aussiebroadwan/labdash/pkg/jwtx"
	"github.com/aussiebroadwan/labdash/pkg/slogx"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "labdash_session"

// Options configures the router's security middleware.
type Options struct {
	// SecureCookies marks the session and CSRF cookies Secure. Leave it off
	// only for plain-HTTP development.
	SecureCookies bool
	// CSRFKey enables CSRF protection when non-empty. It must be 32 bytes.
	CSRFKey []byte
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	cookie       httpx.SessionCookieOptions
	csrfKey      []byte

	store            store.Store
	renderer         *web.Renderer
	SessionService   *service.SessionService
	ProfileService   *service.ProfileService
	UserAdminService *service.UserAdminService
	BootstrapService *service.BootstrapService
	DashboardService *service.DashboardService
}

func NewRouter(
	keys *jwtx.KeySet,
	buildVersion string,
	st store.Store,
	renderer *web.Renderer,
	logger *slog.Logger,
	opts Options,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		renderer:     renderer,
		logger:       logger,
		cookie:       httpx.SessionCookieOptions{Name: SessionCookieName, Secure: opts.SecureCookies},
		csrfKey:      opts.CSRFKey,
	}
	return r
}

// ApplyRoutes registers every route and builds the global middleware chain.
// Services must be set before it is called.
func (r *Router) ApplyRoutes() {
	if r.DashboardService == nil {
		r.DashboardService = &service.DashboardService{}
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger, "/livez", "/readyz", "/static/"),
		r.csrfMiddleware(),
		httpx.LoadSession(sessionChecker{r.SessionService}, r.cookie.Name),
	}

	r.registerSession()
	r.registerProfile()
	r.registerUsers()
	r.registerDashboard()
	r.registerBootstrap()
	r.registerSystem()
	r.registerPages()

	r.Mux.Handle("GET /static/", http.StripPrefix("/static/", web.Static()))
	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Labdash Dashboard API
//	@version		0.1.0
//	@description	Session, profile and user administration API behind the laboratory dashboard.
//	@description
//	@description				Module visibility is resolved from the signed-in user's role.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/labdash
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						labdash_session
//	@description				Signed session token set by /api/login.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSession() {
	h := &SessionHandler{
		SessionService: r.SessionService,
		ProfileService: r.ProfileService,
		Cookie:         r.cookie,
	}

	// POST /api/login - strict rate limit by IP + email to slow down guessing
	r.Mux.Handle("POST /api/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	r.Mux.Handle("POST /api/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /force-logout",
		httpx.Chain(http.HandlerFunc(h.HandleForceLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// GET /api/session - every page calls this on load
	r.Mux.Handle("GET /api/session",
		httpx.Chain(http.HandlerFunc(h.HandleSession),
			httpx.RequireSession(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{ProfileService: r.ProfileService}

	r.Mux.Handle("GET /api/profile",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RequireSession(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("POST /api/profile/update",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.RequireSession(),
			requireModule(domain.ModulePerfil),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// Password changes are rate limited like logins
	r.Mux.Handle("POST /api/profile/change-password",
		httpx.Chain(http.HandlerFunc(h.HandleChangePassword),
			httpx.RequireSession(),
			requireModule(domain.ModulePerfil),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserAdminService: r.UserAdminService}

	managers := []string{string(domain.RoleAdministration), string(domain.RoleCoordination)}

	r.Mux.Handle("GET /api/users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RequireSession(),
			requireModule(domain.ModuleGestionUsuarios),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("POST /api/admin/create-user",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RequireSession(),
			httpx.RequireRole(managers...),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /api/admin/update-user",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.RequireSession(),
			httpx.RequireRole(managers...),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /api/admin/delete-user",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.RequireSession(),
			httpx.RequireRole(string(domain.RoleAdministration)),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /api/admin/reset-user-password",
		httpx.Chain(http.HandlerFunc(h.HandleResetPassword),
			httpx.RequireSession(),
			httpx.RequireRole(managers...),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{DashboardService: r.DashboardService}

	r.Mux.Handle("GET /api/dashboard/summary",
		httpx.Chain(h,
			httpx.RequireSession(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerBootstrap() {
	// POST /api/bootstrap - very strict rate limit by IP (one-time setup endpoint)
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /api/bootstrap",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - monitoring systems may poll frequently
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerPages() {
	h := &PageHandler{
		Renderer:       r.renderer,
		ProfileService: r.ProfileService,
		Logger:         r.logger,
	}
	page := func(fn http.HandlerFunc, mws ...httpx.Middleware) http.Handler {
		mws = append([]httpx.Middleware{httpx.RateLimitByIP(httpx.PublicLimit)}, mws...)
		return httpx.Chain(fn, mws...)
	}
	signedIn := httpx.RequirePageSession("/login")

	r.Mux.Handle("GET /{$}", page(func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/login", http.StatusSeeOther)
	}))
	r.Mux.Handle("GET /login", page(h.HandleLogin))
	r.Mux.Handle("GET /home", page(h.HandleHome, signedIn))
	r.Mux.Handle("GET /perfil", page(h.HandlePerfil, signedIn, requireModulePage(domain.ModulePerfil)))

	r.Mux.Handle("GET /gestion-usuarios",
		page(h.HandleUsuarios, signedIn, requireModulePage(domain.ModuleGestionUsuarios)))
	for _, m := range modulePages {
		r.Mux.Handle("GET "+m.Path,
			page(h.moduleHandler(m), signedIn, requireModulePage(m.Module)))
	}
	for _, p := range placeholderPages {
		r.Mux.Handle("GET "+p.Path, page(h.placeholderHandler(p), signedIn))
	}
}
