package client

// Backend collections.
var (
	InventoryEndpoint = Endpoint{
		Name:       "inventory",
		Path:       "/api/inventory/items/",
		Plural:     "inventory",
		Singular:   "item",
		FilterKeys: []string{"name", "sku"},
		Messages: map[Op]string{
			OpStock:   "Failed to update stock.",
			OpMetrics: "Failed to fetch inventory metrics.",
		},
	}

	OrdersEndpoint = Endpoint{
		Name:       "orders",
		Path:       "/api/orders/",
		Plural:     "orders",
		Singular:   "order",
		FilterKeys: []string{"supplier", "item", "status"},
		Messages: map[Op]string{
			OpAction: "Failed to update order status.",
		},
	}

	SuppliersEndpoint = Endpoint{
		Name:       "suppliers",
		Path:       "/api/suppliers/",
		Plural:     "suppliers",
		Singular:   "supplier",
		FilterKeys: []string{"name", "contact_name", "contact_email"},
	}

	AuditLogsEndpoint = Endpoint{
		Name:       "audit-logs",
		Path:       "/api/audit-logs/",
		Plural:     "audit logs",
		Singular:   "audit log",
		FilterKeys: []string{"user", "action", "object_type", "start_date", "end_date"},
	}

	UsersEndpoint = Endpoint{
		Name:       "users",
		Path:       "/api/users/admin/",
		Plural:     "users",
		Singular:   "user",
		FilterKeys: []string{"username", "email"},
		Messages: map[Op]string{
			OpCreate:   "Failed to save user.",
			OpUpdate:   "Failed to save user.",
			OpIdentify: "Failed to fetch user info.",
		},
	}

	NotificationsEndpoint = Endpoint{
		Name:     "notifications",
		Path:     "/api/notifications/",
		Plural:   "notifications",
		Singular: "notification",
		Messages: map[Op]string{
			OpMarkRead: "Failed to mark as read.",
			OpMarkAll:  "Failed to mark all as read.",
		},
	}

	PaymentsEndpoint = Endpoint{
		Name:     "payments",
		Path:     "/api/payments/requests/",
		Plural:   "payments",
		Singular: "payment request",
		Messages: map[Op]string{
			OpGenerate: "Failed to create payment request.",
		},
	}

	AuthEndpoint = Endpoint{
		Name:     "auth",
		Path:     "/api/token/",
		Plural:   "tokens",
		Singular: "token",
		Messages: map[Op]string{
			OpLogin: "Invalid credentials.",
		},
	}
)
