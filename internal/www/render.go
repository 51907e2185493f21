package www

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/example/giro-certo-ops/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"deref": func(b *bool) bool { return b != nil && *b },
	"statuses": func() []string {
		return []string{"pending", "accepted", "inProgress", "completed", "cancelled"}
	},
}

var templates = template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html"))

func (s *Server) render(w http.ResponseWriter, name string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("template_render_failed", "template", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// pageData seeds the fields every page template expects; handlers add their
// own keys on top.
func (s *Server) pageData(page string, sess *session.Session) map[string]any {
	return map[string]any{
		"Page":        page,
		"User":        sess.User,
		"IsAdmin":     sess.IsAdmin(),
		"IsModerator": sess.IsModerator(),
	}
}

func (s *Server) renderDenied(w http.ResponseWriter, sess *session.Session) {
	w.WriteHeader(http.StatusForbidden)
	s.render(w, "denied.html", s.pageData("denied", sess))
}
