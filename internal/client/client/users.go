package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/ipms/internal/client/models"
)

// Users manages accounts through the admin endpoint.
func (c *Client) Users() *Resource[models.User] {
	return NewResource[models.User](c, UsersEndpoint)
}

// Me returns the account behind the current token.
func (c *Client) Me(ctx context.Context) (models.Me, error) {
	var out models.Me
	err := c.do(ctx, call{op: OpIdentify, endpoint: UsersEndpoint, method: http.MethodGet, path: "/api/users/me/"}, &out)
	return out, err
}
