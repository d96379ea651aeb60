// Package web holds the dashboard's server-rendered pages and static assets.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/aussiebroadwan/labdash/internal/labdash/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names accepted by Render.
const (
	PageLogin       = "login.html"
	PageHome        = "home.html"
	PagePerfil      = "perfil.html"
	PageUsuarios    = "usuarios.html"
	PageModule      = "module.html"
	PagePlaceholder = "placeholder.html"
)

var pages = []string{PageLogin, PageHome, PagePerfil, PageUsuarios, PageModule, PagePlaceholder}

// PageData is what every template receives.
type PageData struct {
	Title     string
	CSRFToken string

	// Zero when nobody is signed in.
	Profile domain.Profile
	Cards   []domain.ModuleCard
	Modules domain.ModuleSet

	// Active is the sidebar entry to highlight.
	Active string
	// Heading and Description fill the module and placeholder pages.
	Heading     string
	Description string
}

// SignedIn reports whether the page has an identity to paint.
func (d PageData) SignedIn() bool { return d.Profile.ID != "" }

// Renderer renders pages, each parsed together with the shared layout.
type Renderer struct {
	sets map[string]*template.Template
}

var funcs = template.FuncMap{
	"roleLabel": func(r domain.Role) string { return r.Label() },
	"canSee": func(set domain.ModuleSet, m string) bool {
		return set.Has(domain.Module(m))
	},
}

// NewRenderer parses every page. It fails only on broken embedded templates.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{sets: make(map[string]*template.Template, len(pages))}
	for _, p := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+p)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		r.sets[p] = t
	}
	return r, nil
}

// Render writes page with status 200. Rendering happens into a buffer first
// so a template error never leaves a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, page string, data PageData) error {
	t, ok := r.sets[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded assets. Mount it under /static/ with the prefix
// stripped.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServerFS(sub)
}
