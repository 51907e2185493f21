package www

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/example/giro-certo-ops/internal/models"
	"github.com/example/giro-certo-ops/internal/session"
)

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	data := s.pageData("users", sess)
	data["Error"] = r.URL.Query().Get("error")

	page, err := s.platformFor(sess).ListUsers(r.Context())
	if err != nil {
		s.logger.Error("users_list_failed", "error", err)
		data["LoadError"] = true
	} else {
		data["Users"] = page.Users
	}
	s.render(w, "users.html", data)
}

func (s *Server) handleUserRole(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id := mux.Vars(r)["id"]
	role := models.Role(r.PostFormValue("role"))

	err := s.platformFor(sess).SetUserRole(r.Context(), id, role)
	if err == nil {
		_ = s.audit.Record(sess.User.Email, "user.role", "user", id, string(role))
	}
	s.redirectWithError(w, r, "/dashboard/users", err)
}

func (s *Server) handleUserType(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id := mux.Vars(r)["id"]
	userType := r.PostFormValue("type")

	err := s.platformFor(sess).SetUserType(r.Context(), id, userType)
	if err == nil {
		_ = s.audit.Record(sess.User.Email, "user.type", "user", id, userType)
	}
	s.redirectWithError(w, r, "/dashboard/users", err)
}

func (s *Server) handleUserDelete(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id := mux.Vars(r)["id"]

	err := s.platformFor(sess).DeleteUser(r.Context(), id)
	if err == nil {
		_ = s.audit.Record(sess.User.Email, "user.delete", "user", id, "")
	}
	s.redirectWithError(w, r, "/dashboard/users", err)
}
