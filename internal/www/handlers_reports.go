package www

import (
	"net/http"

	"github.com/example/giro-certo-ops/internal/session"
)

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	data := s.pageData("reports", sess)
	client := s.platformFor(sess)

	// Each report degrades on its own; one failed section does not blank
	// the page.
	if overdue, err := client.OverduePartners(r.Context()); err != nil {
		s.logger.Error("report_overdue_failed", "error", err)
		data["OverdueError"] = true
	} else {
		data["Overdue"] = overdue.Partners
	}

	from := r.URL.Query().Get("startDate")
	to := r.URL.Query().Get("endDate")
	if commissions, err := client.PendingCommissions(r.Context(), from, to); err != nil {
		s.logger.Error("report_commissions_failed", "error", err)
		data["CommissionsError"] = true
	} else {
		data["Commissions"] = commissions.Transactions
		data["CommissionsTotal"] = commissions.Total
	}

	if reliability, err := client.RiderReliability(r.Context(), 50); err != nil {
		s.logger.Error("report_reliability_failed", "error", err)
		data["ReliabilityError"] = true
	} else {
		data["Reliability"] = reliability.Riders
	}

	data["StartDate"] = from
	data["EndDate"] = to
	s.render(w, "reports.html", data)
}

// handleReportExport streams the platform's rendering of a report straight
// through, preserving its Content-Type (csv or json).
func (s *Server) handleReportExport(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	report := r.URL.Query().Get("report")
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	body, contentType, err := s.platformFor(sess).ExportReport(
		r.Context(), report, format,
		r.URL.Query().Get("startDate"), r.URL.Query().Get("endDate"),
	)
	if err != nil {
		s.logger.Error("report_export_failed", "report", report, "error", err)
		http.Error(w, "export failed", http.StatusBadGateway)
		return
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	if format == "csv" {
		w.Header().Set("Content-Disposition", `attachment; filename="`+report+`.csv"`)
	}
	_, _ = w.Write(body)
}
