package www

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/example/giro-certo-ops/internal/access"
	"github.com/example/giro-certo-ops/internal/audit"
	"github.com/example/giro-certo-ops/internal/config"
	"github.com/example/giro-certo-ops/internal/session"
)

const sessionCookie = "giro_ops_session"

// Server is the console's HTTP surface: server-rendered pages for every
// screen plus small JSON endpoints the control-tower view polls.
type Server struct {
	cfg      config.ServerConfig
	logger   *slog.Logger
	sessions *session.Manager
	audit    *audit.Producer
	towers   *towerRegistry
	mux      *mux.Router
}

func NewServer(cfg config.ServerConfig, sessions *session.Manager, auditor *audit.Producer, logger *slog.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		sessions: sessions,
		audit:    auditor,
		towers:   newTowerRegistry(cfg.PollInterval, logger),
		mux:      mux.NewRouter(),
	}
	s.registerMiddleware()
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.mux.ServeHTTP(w, r) }

// Close stops the per-session tower pollers.
func (s *Server) Close() { s.towers.StopAll() }

func (s *Server) routes() {
	s.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	}).Methods("GET")

	s.mux.HandleFunc("/login", s.handleLoginPage).Methods("GET")
	s.mux.HandleFunc("/login", s.handleLogin).Methods("POST")
	s.mux.HandleFunc("/logout", s.handleLogout).Methods("POST")

	s.mux.HandleFunc("/dashboard", s.page(access.None(), s.handleHome)).Methods("GET")

	s.mux.HandleFunc("/dashboard/control-tower", s.page(access.ModeratorOrAbove(), s.handleControlTower)).Methods("GET")
	s.mux.HandleFunc("/ui/control-tower/data", s.uiAPI(access.ModeratorOrAbove(), s.handleControlTowerData)).Methods("GET")

	s.mux.HandleFunc("/dashboard/alerts", s.page(access.ModeratorOrAbove(), s.handleAlerts)).Methods("GET")
	s.mux.HandleFunc("/dashboard/alerts/{id}/read", s.page(access.ModeratorOrAbove(), s.handleAlertRead)).Methods("POST")
	s.mux.HandleFunc("/dashboard/alerts/read-all", s.page(access.ModeratorOrAbove(), s.handleAlertsReadAll)).Methods("POST")
	s.mux.HandleFunc("/dashboard/alerts/{id}/delete", s.page(access.ModeratorOrAbove(), s.handleAlertDelete)).Methods("POST")

	s.mux.HandleFunc("/dashboard/disputes", s.page(access.ModeratorOrAbove(), s.handleDisputes)).Methods("GET")
	s.mux.HandleFunc("/dashboard/disputes/{id}", s.page(access.ModeratorOrAbove(), s.handleDisputeDetail)).Methods("GET")
	s.mux.HandleFunc("/dashboard/disputes/{id}/resolve", s.page(access.ModeratorOrAbove(), s.handleDisputeResolve)).Methods("POST")
	s.mux.HandleFunc("/dashboard/disputes/{id}/status", s.page(access.ModeratorOrAbove(), s.handleDisputeStatus)).Methods("POST")

	s.mux.HandleFunc("/dashboard/partners", s.page(access.ModeratorOrAbove(), s.handlePartners)).Methods("GET")
	s.mux.HandleFunc("/dashboard/partners", s.page(access.ModeratorOrAbove(), s.handlePartnerCreate)).Methods("POST")
	s.mux.HandleFunc("/dashboard/partners/payment/{paymentId}/record", s.page(access.ModeratorOrAbove(), s.handlePartnerPaymentRecord)).Methods("POST")
	s.mux.HandleFunc("/dashboard/partners/{id}", s.page(access.ModeratorOrAbove(), s.handlePartnerDetail)).Methods("GET")
	s.mux.HandleFunc("/dashboard/partners/{id}/update", s.page(access.ModeratorOrAbove(), s.handlePartnerUpdate)).Methods("POST")
	s.mux.HandleFunc("/dashboard/partners/{id}/block", s.page(access.ModeratorOrAbove(), s.handlePartnerBlock)).Methods("POST")
	s.mux.HandleFunc("/dashboard/partners/{id}/payment", s.page(access.ModeratorOrAbove(), s.handlePartnerPaymentPlan)).Methods("POST")

	s.mux.HandleFunc("/dashboard/documents", s.page(access.ModeratorOrAbove(), s.handleDocuments)).Methods("GET")
	s.mux.HandleFunc("/dashboard/documents/{id}/review", s.page(access.ModeratorOrAbove(), s.handleDocumentReview)).Methods("POST")

	s.mux.HandleFunc("/dashboard/registrations", s.page(access.ModeratorOrAbove(), s.handleRegistrations)).Methods("GET")
	s.mux.HandleFunc("/dashboard/registrations/{id}/review", s.page(access.ModeratorOrAbove(), s.handleRegistrationReview)).Methods("POST")

	s.mux.HandleFunc("/dashboard/reports", s.page(access.AdminOnly(), s.handleReports)).Methods("GET")
	s.mux.HandleFunc("/dashboard/reports/export", s.page(access.AdminOnly(), s.handleReportExport)).Methods("GET")

	s.mux.HandleFunc("/dashboard/users", s.page(access.AdminOnly(), s.handleUsers)).Methods("GET")
	s.mux.HandleFunc("/dashboard/users/{id}/role", s.page(access.AdminOnly(), s.handleUserRole)).Methods("POST")
	s.mux.HandleFunc("/dashboard/users/{id}/type", s.page(access.AdminOnly(), s.handleUserType)).Methods("POST")
	s.mux.HandleFunc("/dashboard/users/{id}/delete", s.page(access.AdminOnly(), s.handleUserDelete)).Methods("POST")

	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods("GET")
	s.mux.Handle("/metrics", promhttp.Handler())
}

func newID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
