package platform

import (
	"context"
	"net/url"

	"github.com/example/giro-certo-ops/internal/models"
)

// Courier document review.

type DocumentQuery struct {
	Status       models.DocumentStatus
	DocumentType string
	Limit        int
}

type DocumentsPage struct {
	Documents []models.CourierDocument `json:"documents"`
	Total     int                      `json:"total"`
}

func (c *Client) PendingDocuments(ctx context.Context, q DocumentQuery) (DocumentsPage, error) {
	v := url.Values{}
	setIf(v, "status", string(q.Status))
	setIf(v, "documentType", q.DocumentType)
	setLimit(v, q.Limit)

	var page DocumentsPage
	err := c.api.Get(ctx, encode("/api/courier-documents/pending/review", v), &page)
	return page, err
}

// ReviewDocument approves or rejects a courier document. The reason is only
// meaningful for rejections and omitted otherwise.
func (c *Client) ReviewDocument(ctx context.Context, id string, status models.DocumentStatus, reason string) error {
	body := map[string]string{"status": string(status)}
	if reason != "" {
		body["rejectionReason"] = reason
	}
	return c.api.Put(ctx, "/api/courier-documents/"+id+"/status", body, nil)
}

// Delivery registration approval.

type RegistrationsPage struct {
	Registrations []models.DeliveryRegistration `json:"registrations"`
	Total         int                           `json:"total"`
}

func (c *Client) PendingRegistrations(ctx context.Context, status models.RegistrationStatus, limit int) (RegistrationsPage, error) {
	v := url.Values{}
	setIf(v, "status", string(status))
	setLimit(v, limit)

	var page RegistrationsPage
	err := c.api.Get(ctx, encode("/api/delivery-registration/pending/review-list", v), &page)
	return page, err
}

func (c *Client) ReviewRegistration(ctx context.Context, id string, status models.RegistrationStatus, reason, notes string) error {
	body := map[string]string{"status": string(status)}
	if reason != "" {
		body["rejectionReason"] = reason
	}
	if notes != "" {
		body["adminNotes"] = notes
	}
	return c.api.Put(ctx, "/api/delivery-registration/"+id+"/status", body, nil)
}
