package platform

import (
	"context"
	"net/url"

	"github.com/example/giro-certo-ops/internal/models"
)

type PartnerQuery struct {
	Type      models.PartnerType
	IsBlocked *bool
	Limit     int
}

type PartnersPage struct {
	Partners []models.Partner `json:"partners"`
	Total    int              `json:"total"`
}

// PartnerInput is the create/update payload for a partner business.
type PartnerInput struct {
	Name        string             `json:"name"`
	Type        models.PartnerType `json:"type"`
	Address     string             `json:"address"`
	Latitude    float64            `json:"latitude"`
	Longitude   float64            `json:"longitude"`
	Phone       string             `json:"phone,omitempty"`
	Email       string             `json:"email,omitempty"`
	Specialties []string           `json:"specialties,omitempty"`
}

// PaymentPlanInput configures how a partner pays the platform.
type PaymentPlanInput struct {
	PlanType      string   `json:"planType"`
	MonthlyFee    *float64 `json:"monthlyFee,omitempty"`
	PercentageFee *float64 `json:"percentageFee,omitempty"`
	DueDate       string   `json:"dueDate,omitempty"`
}

func (c *Client) ListPartners(ctx context.Context, q PartnerQuery) (PartnersPage, error) {
	v := url.Values{}
	setIf(v, "type", string(q.Type))
	setBoolIf(v, "isBlocked", q.IsBlocked)
	setLimit(v, q.Limit)

	var page PartnersPage
	err := c.api.Get(ctx, encode("/api/partners", v), &page)
	return page, err
}

func (c *Client) GetPartner(ctx context.Context, id string) (models.Partner, error) {
	var resp struct {
		Partner models.Partner `json:"partner"`
	}
	err := c.api.Get(ctx, "/api/partners/"+id, &resp)
	return resp.Partner, err
}

func (c *Client) CreatePartner(ctx context.Context, in PartnerInput) error {
	return c.api.Post(ctx, "/api/partners", in, nil)
}

func (c *Client) UpdatePartner(ctx context.Context, id string, in PartnerInput) error {
	return c.api.Put(ctx, "/api/partners/"+id, in, nil)
}

// BlockPartner flips the delinquency block flag.
func (c *Client) BlockPartner(ctx context.Context, id string, blocked bool) error {
	body := map[string]bool{"isBlocked": blocked}
	return c.api.Put(ctx, "/api/partners/"+id+"/block", body, nil)
}

func (c *Client) SetPartnerPaymentPlan(ctx context.Context, id string, in PaymentPlanInput) error {
	return c.api.Post(ctx, "/api/partners/"+id+"/payment", in, nil)
}

// RecordPartnerPayment registers a received payment against a payment plan.
func (c *Client) RecordPartnerPayment(ctx context.Context, paymentID string, amount float64) error {
	body := map[string]float64{"amount": amount}
	return c.api.Post(ctx, "/api/partners/payment/"+paymentID+"/record", body, nil)
}
