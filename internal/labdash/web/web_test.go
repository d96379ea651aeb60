package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/labdash/internal/labdash/domain"
	"github.com/stretchr/testify/require"
)

func signedIn(role domain.Role) PageData {
	set := domain.VisibleModules(role)
	return PageData{
		Title:     "Inicio",
		CSRFToken: "tok-123",
		Profile:   domain.Profile{ID: "u1", Email: "ana@lab.test", FullName: "Ana Pérez", Role: role},
		Cards:     domain.ApplyVisibility(domain.DashboardCards(), set),
		Modules:   set,
		Active:    "/home",
	}
}

func TestRenderer_AllPagesParse(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, p := range pages {
		t.Run(p, func(t *testing.T) {
			w := httptest.NewRecorder()
			require.NoError(t, r.Render(w, p, signedIn(domain.RoleOperator)))
			require.Equal(t, http.StatusOK, w.Code)
			require.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			require.Contains(t, w.Body.String(), `<meta name="csrf-token" content="tok-123">`)
		})
	}
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.Error(t, r.Render(w, "nope.html", PageData{}))
	require.Empty(t, w.Body.String())
}

func TestRenderer_HomeCardVisibility(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, r.Render(w, PageHome, signedIn(domain.RoleTechnician)))
	body := w.Body.String()

	require.Contains(t, body, `id="module-despacho" href="/despacho" style="display:flex"`)
	require.Contains(t, body, `id="module-calibracion" href="/calibracion" style="display:flex"`)
	require.Contains(t, body, `id="module-perfil" href="/perfil" style="display:flex"`)
	require.Contains(t, body, `id="module-gestion_usuarios" href="/gestion-usuarios" style="display:none"`)
	require.Contains(t, body, `id="module-clientes" href="/clientes" style="display:none"`)
}

func TestRenderer_Identity(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, r.Render(w, PageHome, signedIn(domain.RoleAdministration)))
	body := w.Body.String()

	require.Equal(t, 2, strings.Count(body, "Ana Pérez"))
	require.Contains(t, body, "role-administration")
	require.Contains(t, body, domain.RoleAdministration.Label())
}

func TestRenderer_LoginHasNoSidebar(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, r.Render(w, PageLogin, PageData{Title: "Ingresar"}))
	body := w.Body.String()

	require.Contains(t, body, `id="login-form"`)
	require.NotContains(t, body, `class="sidebar"`)
}

func TestRenderer_EscapesNames(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	data := signedIn(domain.RoleOperator)
	data.Profile.FullName = `<script>alert(1)</script>`

	w := httptest.NewRecorder()
	require.NoError(t, r.Render(w, PagePerfil, data))
	require.NotContains(t, w.Body.String(), "<script>alert(1)</script>")
}

func TestStatic(t *testing.T) {
	srv := httptest.NewServer(http.StripPrefix("/static/", Static()))
	defer srv.Close()

	for _, name := range []string{"app.js", "style.css"} {
		resp, err := http.Get(srv.URL + "/static/" + name)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode, name)
	}

	resp, err := http.Get(srv.URL + "/static/missing.js")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
