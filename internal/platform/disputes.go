package platform

import (
	"context"
	"net/url"

	"github.com/example/giro-certo-ops/internal/models"
)

type DisputeQuery struct {
	Status      models.DisputeStatus
	DisputeType models.DisputeType
	Limit       int
}

type DisputesPage struct {
	Disputes []models.Dispute `json:"disputes"`
	Total    int              `json:"total"`
}

func (c *Client) ListDisputes(ctx context.Context, q DisputeQuery) (DisputesPage, error) {
	v := url.Values{}
	setIf(v, "status", string(q.Status))
	setIf(v, "disputeType", string(q.DisputeType))
	setLimit(v, q.Limit)

	var page DisputesPage
	err := c.api.Get(ctx, encode("/api/disputes", v), &page)
	return page, err
}

func (c *Client) GetDispute(ctx context.Context, id string) (models.Dispute, error) {
	var resp struct {
		Dispute models.Dispute `json:"dispute"`
	}
	err := c.api.Get(ctx, "/api/disputes/"+id, &resp)
	return resp.Dispute, err
}

func (c *Client) ResolveDispute(ctx context.Context, id, resolution string) error {
	body := map[string]string{"resolution": resolution}
	return c.api.Put(ctx, "/api/disputes/"+id+"/resolve", body, nil)
}

func (c *Client) SetDisputeStatus(ctx context.Context, id string, status models.DisputeStatus) error {
	body := map[string]string{"status": string(status)}
	return c.api.Put(ctx, "/api/disputes/"+id+"/status", body, nil)
}
