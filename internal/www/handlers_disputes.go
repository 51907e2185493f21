package www

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/example/giro-certo-ops/internal/models"
	"github.com/example/giro-certo-ops/internal/platform"
	"github.com/example/giro-certo-ops/internal/session"
)

func (s *Server) handleDisputes(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	q := platform.DisputeQuery{
		Status:      models.DisputeStatus(r.URL.Query().Get("status")),
		DisputeType: models.DisputeType(r.URL.Query().Get("disputeType")),
		Limit:       100,
	}

	data := s.pageData("disputes", sess)
	data["Error"] = r.URL.Query().Get("error")

	page, err := s.platformFor(sess).ListDisputes(r.Context(), q)
	if err != nil {
		s.logger.Error("disputes_list_failed", "error", err)
		data["LoadError"] = true
	} else {
		data["Disputes"] = page.Disputes
		data["Total"] = page.Total
	}
	s.render(w, "disputes.html", data)
}

func (s *Server) handleDisputeDetail(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id := mux.Vars(r)["id"]

	data := s.pageData("disputes", sess)
	data["Error"] = r.URL.Query().Get("error")

	dispute, err := s.platformFor(sess).GetDispute(r.Context(), id)
	if err != nil {
		s.logger.Error("dispute_load_failed", "id", id, "error", err)
		data["LoadError"] = true
	} else {
		data["Dispute"] = dispute
	}
	s.render(w, "dispute_detail.html", data)
}

func (s *Server) handleDisputeResolve(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id := mux.Vars(r)["id"]
	resolution := r.PostFormValue("resolution")

	err := s.platformFor(sess).ResolveDispute(r.Context(), id, resolution)
	if err == nil {
		_ = s.audit.Record(sess.User.Email, "dispute.resolve", "dispute", id, resolution)
	}
	s.redirectWithError(w, r, "/dashboard/disputes/"+id, err)
}

func (s *Server) handleDisputeStatus(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id := mux.Vars(r)["id"]
	status := models.DisputeStatus(r.PostFormValue("status"))

	err := s.platformFor(sess).SetDisputeStatus(r.Context(), id, status)
	if err == nil {
		_ = s.audit.Record(sess.User.Email, "dispute.status", "dispute", id, string(status))
	}
	s.redirectWithError(w, r, "/dashboard/disputes/"+id, err)
}
