package platform

import (
	"context"

	"github.com/example/giro-certo-ops/internal/models"
)

type UsersPage struct {
	Users []models.User `json:"users"`
}

func (c *Client) ListUsers(ctx context.Context) (UsersPage, error) {
	var page UsersPage
	err := c.api.Get(ctx, "/api/users", &page)
	return page, err
}

func (c *Client) SetUserRole(ctx context.Context, id string, role models.Role) error {
	body := map[string]string{"role": string(role)}
	return c.api.Put(ctx, "/api/users/"+id+"/role", body, nil)
}

// SetUserType pins one contract: PUT /api/users/{id}/type with {"type": …}.
// Earlier console builds probed several path/body shapes against drifting
// backends; any other shape is now treated as a breaking API change.
func (c *Client) SetUserType(ctx context.Context, id, userType string) error {
	body := map[string]string{"type": userType}
	return c.api.Put(ctx, "/api/users/"+id+"/type", body, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.api.Delete(ctx, "/api/users/"+id, nil)
}
