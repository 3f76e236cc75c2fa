package resources

import (
	"strconv"

	"github.com/dmitrijs2005/ipms/internal/client/models"
	"github.com/dmitrijs2005/ipms/internal/client/table"
)

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func id(n int64) string { return strconv.FormatInt(n, 10) }

const crudActions = "filter <key> <value> | clear | add | edit <id> | delete <id> | export <csv|pdf>"

func InventoryView(color bool) table.View[models.InventoryItem] {
	return table.View[models.InventoryItem]{
		Title: "Inventory",
		Noun:  "items",
		Color: color,
		Columns: []table.Column[models.InventoryItem]{
			{Header: "ID", Value: func(i models.InventoryItem) string { return id(i.ID) }},
			{Header: "Name", Value: func(i models.InventoryItem) string { return i.Name }},
			{Header: "SKU", Value: func(i models.InventoryItem) string { return i.SKU }},
			{Header: "Qty", Value: func(i models.InventoryItem) string { return strconv.Itoa(i.Quantity) }, Tone: StockTone},
			{Header: "Reorder", Value: func(i models.InventoryItem) string { return strconv.Itoa(i.ReorderLevel) }},
			{Header: "Created", Value: func(i models.InventoryItem) string { return table.FormatTime(i.CreatedAt) }},
			{Header: "Updated", Value: func(i models.InventoryItem) string { return table.FormatTime(i.UpdatedAt) }},
		},
		Actions: crudActions + " | search <text> | stockin <id> [n] | stockout <id> [n] | import <file> | scan | metrics",
	}
}

func OrdersView(color bool) table.View[models.Order] {
	return table.View[models.Order]{
		Title: "Orders",
		Noun:  "orders",
		Color: color,
		Columns: []table.Column[models.Order]{
			{Header: "ID", Value: func(o models.Order) string { return id(o.ID) }},
			{Header: "Supplier", Value: func(o models.Order) string { return o.Supplier }},
			{Header: "Item", Value: func(o models.Order) string { return o.Item }},
			{Header: "Qty", Value: func(o models.Order) string { return strconv.Itoa(o.Quantity) }},
			{
				Header: "Status",
				Value:  func(o models.Order) string { return o.Status },
				Tone:   func(o models.Order) table.Tone { return OrderStatusTone(o.Status) },
			},
			{Header: "Created", Value: func(o models.Order) string { return table.FormatTime(o.CreatedAt) }},
			{Header: "Updated", Value: func(o models.Order) string { return table.FormatTime(o.UpdatedAt) }},
		},
		Actions: crudActions + " | approve <id> | reject <id> | analytics",
	}
}

func SuppliersView(color bool) table.View[models.Supplier] {
	return table.View[models.Supplier]{
		Title: "Suppliers",
		Noun:  "suppliers",
		Color: color,
		Columns: []table.Column[models.Supplier]{
			{Header: "ID", Value: func(s models.Supplier) string { return id(s.ID) }},
			{Header: "Name", Value: func(s models.Supplier) string { return s.Name }},
			{Header: "Contact", Value: func(s models.Supplier) string { return s.ContactName }},
			{Header: "Email", Value: func(s models.Supplier) string { return s.ContactEmail }},
			{Header: "Phone", Value: func(s models.Supplier) string { return s.ContactPhone }},
			{Header: "Address", Value: func(s models.Supplier) string { return s.Address }},
			{Header: "Created", Value: func(s models.Supplier) string { return table.FormatTime(s.CreatedAt) }},
		},
		Actions: crudActions + " | analytics",
	}
}

func AuditView(color bool) table.View[models.AuditLog] {
	return table.View[models.AuditLog]{
		Title: "Audit Logs",
		Noun:  "audit logs",
		Color: color,
		Columns: []table.Column[models.AuditLog]{
			{Header: "ID", Value: func(a models.AuditLog) string { return id(a.ID) }},
			{Header: "User", Value: func(a models.AuditLog) string { return a.Actor() }},
			{
				Header: "Action",
				Value: func(a models.AuditLog) string {
					s := AuditAction(a.Action)
					return s.Icon + " " + s.Label
				},
				Tone: func(a models.AuditLog) table.Tone { return AuditAction(a.Action).Tone },
			},
			{Header: "Object", Value: func(a models.AuditLog) string { return a.ObjectType }},
			{Header: "Object ID", Value: func(a models.AuditLog) string { return a.ObjectID.String() }},
			{Header: "Message", Value: func(a models.AuditLog) string { return a.Message }},
			{Header: "Timestamp", Value: func(a models.AuditLog) string { return table.FormatTime(a.CreatedAt) }},
		},
		Actions: "filter <key> <value> | clear | stats | export <csv|xlsx>",
	}
}

func UsersView(color bool) table.View[models.User] {
	return table.View[models.User]{
		Title: "User Management",
		Noun:  "users",
		Color: color,
		Columns: []table.Column[models.User]{
			{Header: "ID", Value: func(u models.User) string { return id(u.ID) }},
			{Header: "Username", Value: func(u models.User) string { return u.Username }},
			{Header: "Email", Value: func(u models.User) string { return u.Email }},
			{Header: "Role", Value: func(u models.User) string { return u.Role }},
			{Header: "Active", Value: func(u models.User) string { return yesNo(u.IsActive) }},
			{Header: "Staff", Value: func(u models.User) string { return yesNo(u.IsStaff) }},
			{Header: "Superuser", Value: func(u models.User) string { return yesNo(u.IsSuperuser) }},
			{Header: "Joined", Value: func(u models.User) string { return table.FormatTime(u.DateJoined) }},
		},
		Actions: "filter <key> <value> | clear | add | edit <id> | delete <id>",
	}
}

func NotificationsView(color bool) table.View[models.Notification] {
	return table.View[models.Notification]{
		Title: "Notifications",
		Noun:  "notifications",
		Color: color,
		Columns: []table.Column[models.Notification]{
			{Header: "ID", Value: func(n models.Notification) string { return id(n.ID) }},
			{
				Header: "Type",
				Value:  func(n models.Notification) string { return NotificationType(n.Type).Label },
				Tone:   func(n models.Notification) table.Tone { return NotificationType(n.Type).Tone },
			},
			{Header: "Message", Value: func(n models.Notification) string { return n.Message }},
			{
				Header: "Read",
				Value:  func(n models.Notification) string { return yesNo(n.IsRead) },
				Tone: func(n models.Notification) table.Tone {
					if n.IsRead {
						return table.ToneDefault
					}
					return table.ToneInfo
				},
			},
			{Header: "Received", Value: func(n models.Notification) string { return table.FormatTime(n.CreatedAt) }},
		},
		Actions: "read <id> | delete <id> | readall | unread | refresh",
	}
}

func PaymentsView(color bool) table.View[models.PaymentRequest] {
	return table.View[models.PaymentRequest]{
		Title: "Payments",
		Noun:  "payment requests",
		Color: color,
		Columns: []table.Column[models.PaymentRequest]{
			{Header: "Reference", Value: func(p models.PaymentRequest) string { return p.ReferenceID }},
			{Header: "Type", Value: func(p models.PaymentRequest) string { return p.PaymentType }},
			{Header: "Amount", Value: func(p models.PaymentRequest) string { return p.Amount + " " + p.Currency }},
			{Header: "Phone", Value: func(p models.PaymentRequest) string { return p.MomoPhone }},
			{Header: "Description", Value: func(p models.PaymentRequest) string { return p.Description }},
			{
				Header: "Status",
				Value:  func(p models.PaymentRequest) string { return p.Status },
				Tone:   func(p models.PaymentRequest) table.Tone { return PaymentStatusTone(p.Status) },
			},
			{Header: "Created", Value: func(p models.PaymentRequest) string { return table.FormatTime(p.CreatedAt) }},
		},
		Actions: "new | analytics | refresh",
	}
}
