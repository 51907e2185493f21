package www

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/example/giro-certo-ops/internal/observability"
)

type contextKey string

const requestIDKey contextKey = "request-id"

// accessLog wraps recover so a panic is still logged as a 500 with its
// request id.
func (s *Server) registerMiddleware() {
	s.mux.Use(s.accessLogMiddleware)
	s.mux.Use(s.recoverMiddleware)
}

// statusWriter remembers the status code so the access log and metrics can
// report it after the handler returns.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// accessLogMiddleware assigns each request an id, then emits one metrics
// sample and one structured log line per request. Routes are logged by mux
// template so per-entity paths aggregate, and tower UI-API lines are tagged
// apart from operator page loads: each open tab polls every few seconds and
// would drown the page traffic otherwise.
func (s *Server) accessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = newID()
		}
		r = r.WithContext(context.WithValue(r.Context(), requestIDKey, reqID))

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		route := routeTemplate(r)
		status := strconv.Itoa(sw.status)
		observability.HTTPRequestsTotal.WithLabelValues(r.Method, route, status).Inc()
		observability.HTTPRequestDuration.WithLabelValues(r.Method, route, status).Observe(time.Since(start).Seconds())

		logger := s.logger
		if strings.HasPrefix(route, "/ui/") {
			logger = logger.With("kind", "ui-api")
		}
		logger.Info("http_request",
			"request_id", reqID,
			"method", r.Method,
			"route", route,
			"status", sw.status,
			"authenticated", hasSessionCookie(r),
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", remoteIP(r),
		)
	})
}

func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic_recovered",
					"error", rec,
					"route", routeTemplate(r),
					"request_id", requestIDFromContext(r.Context()),
				)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func requestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// hasSessionCookie reports whether the request carries the session cookie.
// Only presence is logged; the cookie value is a signed credential and never
// appears in log output.
func hasSessionCookie(r *http.Request) bool {
	_, err := r.Cookie(sessionCookie)
	return err == nil
}

// routeTemplate prefers the mux pattern ("/dashboard/partners/{id}") over
// the concrete URL so entity ids stay out of metric label cardinality.
func routeTemplate(r *http.Request) string {
	if current := mux.CurrentRoute(r); current != nil {
		if tmpl, err := current.GetPathTemplate(); err == nil {
			return tmpl
		}
	}
	return r.URL.Path
}

func remoteIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
