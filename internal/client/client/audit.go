package client

import "github.com/dmitrijs2005/ipms/internal/client/models"

// AuditLogs is read-only; exports are built locally from fetched rows.
func (c *Client) AuditLogs() *Resource[models.AuditLog] {
	return NewResource[models.AuditLog](c, AuditLogsEndpoint)
}
