package platform

import (
	"context"
	"net/url"

	"github.com/example/giro-certo-ops/internal/models"
)

type AlertQuery struct {
	Type     models.AlertType
	Severity models.AlertSeverity
	IsRead   *bool
	Limit    int
}

type AlertsPage struct {
	Alerts []models.Alert `json:"alerts"`
	Total  int            `json:"total"`
}

func (c *Client) ListAlerts(ctx context.Context, q AlertQuery) (AlertsPage, error) {
	v := url.Values{}
	setIf(v, "type", string(q.Type))
	setIf(v, "severity", string(q.Severity))
	setBoolIf(v, "isRead", q.IsRead)
	setLimit(v, q.Limit)

	var page AlertsPage
	err := c.api.Get(ctx, encode("/api/alerts", v), &page)
	return page, err
}

func (c *Client) MarkAlertRead(ctx context.Context, id string) error {
	return c.api.Put(ctx, "/api/alerts/"+id+"/read", struct{}{}, nil)
}

func (c *Client) MarkAllAlertsRead(ctx context.Context) error {
	return c.api.Put(ctx, "/api/alerts/read-all", struct{}{}, nil)
}

func (c *Client) DeleteAlert(ctx context.Context, id string) error {
	return c.api.Delete(ctx, "/api/alerts/"+id, nil)
}
