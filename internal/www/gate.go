package www

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/example/giro-certo-ops/internal/access"
	"github.com/example/giro-certo-ops/internal/session"
)

// sessionHandler is a handler that runs with a resolved, authorized session.
type sessionHandler func(w http.ResponseWriter, r *http.Request, sess *session.Session)

// page gates a server-rendered view: anonymous viewers are redirected to the
// login screen, authenticated-but-unprivileged viewers get a rendered
// access-denied page, never a silent pass-through.
func (s *Server) page(req access.Requirement, next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.resolveSession(r)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		if !req.Allows(sess.Role()) {
			s.renderDenied(w, sess)
			return
		}
		next(w, r, sess)
	}
}

// uiAPI gates a JSON endpoint: the browser-side poller gets status codes,
// not redirects.
func (s *Server) uiAPI(req access.Requirement, next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.resolveSession(r)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if !req.Allows(sess.Role()) {
			writeJSONError(w, http.StatusForbidden, "insufficient role")
			return
		}
		next(w, r, sess)
	}
}

func (s *Server) resolveSession(r *http.Request) (*session.Session, error) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil, session.ErrNoSession
	}
	sess, err := s.sessions.Resume(r.Context(), cookie.Value)
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			s.logger.Warn("session_resolve_failed", "error", err)
		}
		return nil, session.ErrNoSession
	}
	return sess, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
