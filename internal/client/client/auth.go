package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/ipms/internal/client/models"
)

// ObtainToken exchanges credentials for a token pair. It is the one call made
// without a bearer header.
func (c *Client) ObtainToken(ctx context.Context, username, password string) (models.Tokens, error) {
	var out models.Tokens
	err := c.do(ctx, call{
		op: OpLogin, endpoint: AuthEndpoint, method: http.MethodPost, path: AuthEndpoint.Path,
		body: models.Credentials{Username: username, Password: password}, public: true,
	}, &out)
	return out, err
}
