package platform

import (
	"context"
	"fmt"
	"net/url"

	"github.com/example/giro-certo-ops/internal/models"
)

type OverduePartnersReport struct {
	Partners []models.OverduePartner `json:"partners"`
}

func (c *Client) OverduePartners(ctx context.Context) (OverduePartnersReport, error) {
	var rep OverduePartnersReport
	err := c.api.Get(ctx, "/api/reports/partners/overdue", &rep)
	return rep, err
}

type PendingCommissionsReport struct {
	Transactions []models.PendingCommission `json:"transactions"`
	Total        float64                    `json:"total"`
	Count        int                        `json:"count"`
}

// PendingCommissions lists unsettled app commissions, optionally bounded by
// an inclusive date range (YYYY-MM-DD).
func (c *Client) PendingCommissions(ctx context.Context, from, to string) (PendingCommissionsReport, error) {
	v := url.Values{}
	setIf(v, "startDate", from)
	setIf(v, "endDate", to)

	var rep PendingCommissionsReport
	err := c.api.Get(ctx, encode("/api/reports/commissions/pending", v), &rep)
	return rep, err
}

type RiderReliabilityReport struct {
	Riders []models.RiderReliability `json:"riders"`
}

func (c *Client) RiderReliability(ctx context.Context, limit int) (RiderReliabilityReport, error) {
	v := url.Values{}
	setLimit(v, limit)

	var rep RiderReliabilityReport
	err := c.api.Get(ctx, encode("/api/reports/riders/reliability", v), &rep)
	return rep, err
}

var reportPaths = map[string]string{
	"partners-overdue":    "/api/reports/partners/overdue",
	"commissions-pending": "/api/reports/commissions/pending",
	"riders-reliability":  "/api/reports/riders/reliability",
}

// ExportReport streams a report body through untouched, in the format the
// platform rendered it (csv or json). The caller forwards the Content-Type.
func (c *Client) ExportReport(ctx context.Context, report, format, from, to string) ([]byte, string, error) {
	path, ok := reportPaths[report]
	if !ok {
		return nil, "", fmt.Errorf("unknown report %q", report)
	}
	v := url.Values{}
	setIf(v, "format", format)
	setIf(v, "startDate", from)
	setIf(v, "endDate", to)
	return c.api.GetRaw(ctx, encode(path, v))
}
