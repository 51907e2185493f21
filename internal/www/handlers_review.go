package www

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/example/giro-certo-ops/internal/models"
	"github.com/example/giro-certo-ops/internal/platform"
	"github.com/example/giro-certo-ops/internal/session"
)

func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	q := platform.DocumentQuery{
		Status:       models.DocumentStatus(r.URL.Query().Get("status")),
		DocumentType: r.URL.Query().Get("documentType"),
		Limit:        100,
	}

	data := s.pageData("documents", sess)
	data["Error"] = r.URL.Query().Get("error")

	page, err := s.platformFor(sess).PendingDocuments(r.Context(), q)
	if err != nil {
		s.logger.Error("documents_list_failed", "error", err)
		data["LoadError"] = true
	} else {
		data["Documents"] = page.Documents
		data["Total"] = page.Total
	}
	s.render(w, "documents.html", data)
}

func (s *Server) handleDocumentReview(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id := mux.Vars(r)["id"]
	status := models.DocumentStatus(r.PostFormValue("status"))
	reason := r.PostFormValue("rejectionReason")

	err := s.platformFor(sess).ReviewDocument(r.Context(), id, status, reason)
	if err == nil {
		_ = s.audit.Record(sess.User.Email, "document.review", "courier-document", id, string(status))
	}
	s.redirectWithError(w, r, "/dashboard/documents", err)
}

func (s *Server) handleRegistrations(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	status := models.RegistrationStatus(r.URL.Query().Get("status"))

	data := s.pageData("registrations", sess)
	data["Error"] = r.URL.Query().Get("error")

	page, err := s.platformFor(sess).PendingRegistrations(r.Context(), status, 100)
	if err != nil {
		s.logger.Error("registrations_list_failed", "error", err)
		data["LoadError"] = true
	} else {
		data["Registrations"] = page.Registrations
		data["Total"] = page.Total
	}
	s.render(w, "registrations.html", data)
}

func (s *Server) handleRegistrationReview(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id := mux.Vars(r)["id"]
	status := models.RegistrationStatus(r.PostFormValue("status"))
	reason := r.PostFormValue("rejectionReason")
	notes := r.PostFormValue("adminNotes")

	err := s.platformFor(sess).ReviewRegistration(r.Context(), id, status, reason, notes)
	if err == nil {
		_ = s.audit.Record(sess.User.Email, "registration.review", "delivery-registration", id, string(status))
	}
	s.redirectWithError(w, r, "/dashboard/registrations", err)
}
