package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/crewlabs/crewlog/pkg/slogx"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// render writes a view. Template failures at this point can only be
// half-written responses, so they are logged rather than re-rendered.
func render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		slogx.FromContext(r.Context()).Error("template render failed", "template", name, "err", err)
	}
}

// renderError is the generic error view for unexpected failures and missing
// references.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	slogx.FromContext(r.Context()).Error("request failed", "err", err)
	render(w, r, http.StatusInternalServerError, "error.html", nil)
}
