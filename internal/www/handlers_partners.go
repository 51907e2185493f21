package www

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/example/giro-certo-ops/internal/models"
	"github.com/example/giro-certo-ops/internal/platform"
	"github.com/example/giro-certo-ops/internal/session"
)

var errInvalidAmount = errors.New("invalid payment amount")

func (s *Server) handlePartners(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	q := platform.PartnerQuery{
		Type:  models.PartnerType(r.URL.Query().Get("type")),
		Limit: 100,
	}
	switch r.URL.Query().Get("isBlocked") {
	case "true":
		v := true
		q.IsBlocked = &v
	case "false":
		v := false
		q.IsBlocked = &v
	}

	data := s.pageData("partners", sess)
	data["Error"] = r.URL.Query().Get("error")

	page, err := s.platformFor(sess).ListPartners(r.Context(), q)
	if err != nil {
		s.logger.Error("partners_list_failed", "error", err)
		data["LoadError"] = true
	} else {
		data["Partners"] = page.Partners
		data["Total"] = page.Total
	}
	s.render(w, "partners.html", data)
}

func (s *Server) handlePartnerDetail(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id := mux.Vars(r)["id"]

	data := s.pageData("partners", sess)
	data["Error"] = r.URL.Query().Get("error")

	partner, err := s.platformFor(sess).GetPartner(r.Context(), id)
	if err != nil {
		s.logger.Error("partner_load_failed", "id", id, "error", err)
		data["LoadError"] = true
	} else {
		data["Partner"] = partner
	}
	s.render(w, "partner_detail.html", data)
}

func (s *Server) handlePartnerCreate(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	lat, _ := strconv.ParseFloat(r.PostFormValue("latitude"), 64)
	lng, _ := strconv.ParseFloat(r.PostFormValue("longitude"), 64)
	in := platform.PartnerInput{
		Name:      r.PostFormValue("name"),
		Type:      models.PartnerType(r.PostFormValue("type")),
		Address:   r.PostFormValue("address"),
		Latitude:  lat,
		Longitude: lng,
		Phone:     r.PostFormValue("phone"),
		Email:     r.PostFormValue("email"),
	}

	err := s.platformFor(sess).CreatePartner(r.Context(), in)
	if err == nil {
		_ = s.audit.Record(sess.User.Email, "partner.create", "partner", in.Name, string(in.Type))
	}
	s.redirectWithError(w, r, "/dashboard/partners", err)
}

func (s *Server) handlePartnerUpdate(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id := mux.Vars(r)["id"]
	lat, _ := strconv.ParseFloat(r.PostFormValue("latitude"), 64)
	lng, _ := strconv.ParseFloat(r.PostFormValue("longitude"), 64)
	in := platform.PartnerInput{
		Name:      r.PostFormValue("name"),
		Type:      models.PartnerType(r.PostFormValue("type")),
		Address:   r.PostFormValue("address"),
		Latitude:  lat,
		Longitude: lng,
		Phone:     r.PostFormValue("phone"),
		Email:     r.PostFormValue("email"),
	}

	err := s.platformFor(sess).UpdatePartner(r.Context(), id, in)
	if err == nil {
		_ = s.audit.Record(sess.User.Email, "partner.update", "partner", id, in.Name)
	}
	s.redirectWithError(w, r, "/dashboard/partners/"+id, err)
}

func (s *Server) handlePartnerPaymentRecord(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	paymentID := mux.Vars(r)["paymentId"]
	amount, err := strconv.ParseFloat(r.PostFormValue("amount"), 64)
	if err != nil || amount <= 0 {
		s.redirectWithError(w, r, "/dashboard/partners", errInvalidAmount)
		return
	}

	err = s.platformFor(sess).RecordPartnerPayment(r.Context(), paymentID, amount)
	if err == nil {
		_ = s.audit.Record(sess.User.Email, "partner.payment_record", "partner-payment", paymentID,
			strconv.FormatFloat(amount, 'f', 2, 64))
	}
	s.redirectWithError(w, r, "/dashboard/partners", err)
}

func (s *Server) handlePartnerBlock(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id := mux.Vars(r)["id"]
	blocked := r.PostFormValue("isBlocked") == "true"

	err := s.platformFor(sess).BlockPartner(r.Context(), id, blocked)
	if err == nil {
		_ = s.audit.Record(sess.User.Email, "partner.block", "partner", id, strconv.FormatBool(blocked))
	}
	s.redirectWithError(w, r, "/dashboard/partners", err)
}

func (s *Server) handlePartnerPaymentPlan(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id := mux.Vars(r)["id"]
	in := platform.PaymentPlanInput{
		PlanType: r.PostFormValue("planType"),
		DueDate:  r.PostFormValue("dueDate"),
	}
	if v, err := strconv.ParseFloat(r.PostFormValue("monthlyFee"), 64); err == nil {
		in.MonthlyFee = &v
	}
	if v, err := strconv.ParseFloat(r.PostFormValue("percentageFee"), 64); err == nil {
		in.PercentageFee = &v
	}

	err := s.platformFor(sess).SetPartnerPaymentPlan(r.Context(), id, in)
	if err == nil {
		_ = s.audit.Record(sess.User.Email, "partner.payment_plan", "partner", id, in.PlanType)
	}
	s.redirectWithError(w, r, "/dashboard/partners", err)
}
