package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/labdash/internal/labdash/domain"
	"github.com/aussiebroadwan/labdash/internal/labdash/service"
	"github.com/aussiebroadwan/labdash/internal/labdash/web"
	"github.com/aussiebroadwan/labdash/pkg/httpx"
	"github.com/gorilla/csrf"
)

type modulePage struct {
	Path        string
	Module      domain.Module
	Title       string
	Description string
}

// Module pages gated by role visibility.
var modulePages = []modulePage{
	{"/despacho", domain.ModuleDespacho, "Despacho", "Preparación y envío de dosímetros."},
	{"/calibracion", domain.ModuleCalibracion, "Calibración", "Registro y seguimiento de calibraciones."},
	{"/clientes", domain.ModuleClientes, "Clientes", "Administración de clientes y contratos."},
}

type placeholderPage struct {
	Path  string
	Title string
}

// Sections that exist in the navigation but have no content yet. Any
// signed-in user may open them.
var placeholderPages = []placeholderPage{
	{"/dosis-altas", "Dosis altas"},
	{"/relecturas", "Relecturas"},
	{"/solicitudes", "Solicitudes"},
	{"/flujo-dosimetrico", "Flujo dosimétrico"},
	{"/humedad-temperatura", "Humedad y temperatura"},
	{"/indicadores-operativos", "Indicadores operativos"},
	{"/certificados-lcd", "Certificados LCD"},
	{"/indicadores-tecnicos", "Indicadores técnicos"},
	{"/gestion-documental", "Gestión documental"},
	{"/indicadores", "Indicadores"},
	{"/indicadores-logisticos", "Indicadores logísticos"},
	{"/actividad", "Actividad"},
	{"/niveles-investigacion", "Niveles de investigación"},
}

// PageHandler renders the server-side pages.
type PageHandler struct {
	Renderer       *web.Renderer
	ProfileService *service.ProfileService
	Logger         *slog.Logger
}

// pageData loads the caller's profile and resolves the cards it may see.
// ok is false when the response has already been written.
func (h *PageHandler) pageData(w http.ResponseWriter, r *http.Request, title, active string) (web.PageData, bool) {
	p, _ := httpx.PrincipalFrom(r.Context())

	profile, err := h.ProfileService.Get(r.Context(), p.UserID)
	if err != nil {
		http.Redirect(w, r, "/force-logout", http.StatusSeeOther)
		return web.PageData{}, false
	}

	visible := profile.Visible()
	return web.PageData{
		Title:     title,
		CSRFToken: csrf.Token(r),
		Profile:   profile,
		Cards:     domain.ApplyVisibility(domain.DashboardCards(), visible),
		Modules:   visible,
		Active:    active,
	}, true
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, page string, data web.PageData) {
	if err := h.Renderer.Render(w, page, data); err != nil {
		h.Logger.ErrorContext(r.Context(), "failed to render page", slog.String("page", page), slog.Any("err", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// HandleLogin shows the login form, or sends signed-in users to the
// dashboard.
func (h *PageHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := httpx.PrincipalFrom(r.Context()); ok {
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}
	h.render(w, r, web.PageLogin, web.PageData{Title: "Ingresar", CSRFToken: csrf.Token(r)})
}

func (h *PageHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	data, ok := h.pageData(w, r, "Inicio", "/home")
	if !ok {
		return
	}
	h.render(w, r, web.PageHome, data)
}

func (h *PageHandler) HandlePerfil(w http.ResponseWriter, r *http.Request) {
	data, ok := h.pageData(w, r, "Mi perfil", "/perfil")
	if !ok {
		return
	}
	h.render(w, r, web.PagePerfil, data)
}

func (h *PageHandler) HandleUsuarios(w http.ResponseWriter, r *http.Request) {
	data, ok := h.pageData(w, r, "Gestión de usuarios", "/gestion-usuarios")
	if !ok {
		return
	}
	h.render(w, r, web.PageUsuarios, data)
}

func (h *PageHandler) moduleHandler(m modulePage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, ok := h.pageData(w, r, m.Title, m.Path)
		if !ok {
			return
		}
		data.Heading = m.Title
		data.Description = m.Description
		h.render(w, r, web.PageModule, data)
	}
}

func (h *PageHandler) placeholderHandler(p placeholderPage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, ok := h.pageData(w, r, p.Title, p.Path)
		if !ok {
			return
		}
		data.Heading = p.Title
		h.render(w, r, web.PagePlaceholder, data)
	}
}
