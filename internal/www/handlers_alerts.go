package www

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/example/giro-certo-ops/internal/models"
	"github.com/example/giro-certo-ops/internal/platform"
	"github.com/example/giro-certo-ops/internal/session"
)

func (s *Server) platformFor(sess *session.Session) *platform.Client {
	return platform.NewClient(sess.API)
}

// redirectWithError sends the operator back to a list view, carrying a
// banner message when the mutation failed. The entity itself is untouched:
// nothing is committed locally without upstream confirmation.
func (s *Server) redirectWithError(w http.ResponseWriter, r *http.Request, path string, err error) {
	if err != nil {
		s.logger.Error("mutation_failed", "path", r.URL.Path, "error", err)
		path += "?error=" + url.QueryEscape("The change was not applied, try again.")
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	q := platform.AlertQuery{
		Type:     models.AlertType(r.URL.Query().Get("type")),
		Severity: models.AlertSeverity(r.URL.Query().Get("severity")),
		Limit:    100,
	}
	switch r.URL.Query().Get("isRead") {
	case "true":
		v := true
		q.IsRead = &v
	case "false":
		v := false
		q.IsRead = &v
	}

	data := s.pageData("alerts", sess)
	data["Error"] = r.URL.Query().Get("error")

	page, err := s.platformFor(sess).ListAlerts(r.Context(), q)
	if err != nil {
		s.logger.Error("alerts_list_failed", "error", err)
		data["LoadError"] = true
	} else {
		data["Alerts"] = page.Alerts
		data["Total"] = page.Total
	}
	s.render(w, "alerts.html", data)
}

func (s *Server) handleAlertRead(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id := mux.Vars(r)["id"]
	err := s.platformFor(sess).MarkAlertRead(r.Context(), id)
	if err == nil {
		_ = s.audit.Record(sess.User.Email, "alert.read", "alert", id, "")
	}
	s.redirectWithError(w, r, "/dashboard/alerts", err)
}

func (s *Server) handleAlertsReadAll(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	err := s.platformFor(sess).MarkAllAlertsRead(r.Context())
	if err == nil {
		_ = s.audit.Record(sess.User.Email, "alert.read_all", "alert", "*", "")
	}
	s.redirectWithError(w, r, "/dashboard/alerts", err)
}

func (s *Server) handleAlertDelete(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id := mux.Vars(r)["id"]
	err := s.platformFor(sess).DeleteAlert(r.Context(), id)
	if err == nil {
		_ = s.audit.Record(sess.User.Email, "alert.delete", "alert", id, "")
	}
	s.redirectWithError(w, r, "/dashboard/alerts", err)
}
