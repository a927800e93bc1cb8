// Package web holds the embedded HTML templates and rendering helpers for the
// server-rendered pages. Templates are embedded at compile time so the binary
// is self-contained — the same pattern as the embedded migrations.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageNames lists every page template. Each is parsed together with the
// shared layout so the layout's content block resolves per page.
var pageNames = []string{
	"login",
	"dashboard",
	"visit_new",
	"visits_list",
	"hosts",
	"visitors",
}

// Templates renders the site's pages.
type Templates struct {
	pages map[string]*template.Template
}

// New parses all embedded templates. Call once at startup; a parse error here
// means the binary shipped with a broken page.
func New() (*Templates, error) {
	funcs := template.FuncMap{
		// datetime renders a timestamp at minute precision in local time.
		"datetime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04")
		},
		// optdatetime renders a nullable timestamp, or "—" while absent.
		"optdatetime": func(t *time.Time) string {
			if t == nil {
				return "—"
			}
			return t.Format("2006-01-02 15:04")
		},
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("web.New: parse %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Templates{pages: pages}, nil
}

// Render writes the named page with data to w.
func (t *Templates) Render(w io.Writer, name string, data any) error {
	tpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("web.Templates.Render: unknown page %q", name)
	}
	return tpl.ExecuteTemplate(w, "layout.html", data)
}
