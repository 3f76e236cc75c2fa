package resources

import (
	"github.com/dmitrijs2005/ipms/internal/client/models"
	"github.com/dmitrijs2005/ipms/internal/client/table"
)

// StockTone flags items at or below their reorder level.
func StockTone(i models.InventoryItem) table.Tone {
	if i.LowStock() {
		return table.ToneError
	}
	return table.ToneSuccess
}

func OrderStatusTone(status string) table.Tone {
	switch status {
	case models.OrderApproved:
		return table.ToneSuccess
	case models.OrderRejected:
		return table.ToneError
	default:
		return table.ToneWarning
	}
}

func PaymentStatusTone(status string) table.Tone {
	switch status {
	case models.PaymentCompleted:
		return table.ToneSuccess
	case models.PaymentPending:
		return table.ToneWarning
	case models.PaymentProcessing:
		return table.ToneInfo
	case models.PaymentFailed:
		return table.ToneError
	default:
		return table.ToneDefault
	}
}

// Style is how a coded value is shown.
type Style struct {
	Label string
	Icon  string
	Tone  table.Tone
}

var auditActions = map[string]Style{
	"CREATE":      {Label: "Created", Icon: "+", Tone: table.ToneSuccess},
	"UPDATE":      {Label: "Updated", Icon: "~", Tone: table.TonePrimary},
	"DELETE":      {Label: "Deleted", Icon: "-", Tone: table.ToneError},
	"APPROVE":     {Label: "Approved", Icon: "v", Tone: table.ToneSuccess},
	"REJECT":      {Label: "Rejected", Icon: "x", Tone: table.ToneError},
	"LOGIN":       {Label: "Login", Icon: ">", Tone: table.ToneInfo},
	"LOGOUT":      {Label: "Logout", Icon: "<", Tone: table.ToneWarning},
	"EXPORT":      {Label: "Exported", Icon: "v", Tone: table.ToneSecondary},
	"IMPORT":      {Label: "Imported", Icon: "^", Tone: table.ToneSecondary},
	"BACKUP":      {Label: "Backup", Icon: "#", Tone: table.ToneInfo},
	"MAINTENANCE": {Label: "Maintenance", Icon: "*", Tone: table.ToneWarning},
}

// AuditAction looks up an audit action. Unknown actions keep their raw
// name with the default tone.
func AuditAction(action string) Style {
	if s, ok := auditActions[action]; ok {
		return s
	}
	return Style{Label: action, Icon: "*", Tone: table.ToneDefault}
}

var notificationTypes = map[string]Style{
	models.NotificationInfo:    {Label: "Info", Icon: "i", Tone: table.TonePrimary},
	models.NotificationWarning: {Label: "Warning", Icon: "!", Tone: table.ToneWarning},
	models.NotificationAlert:   {Label: "Alert", Icon: "!!", Tone: table.ToneError},
}

func NotificationType(typ string) Style {
	if s, ok := notificationTypes[typ]; ok {
		return s
	}
	return Style{Label: typ, Icon: "i", Tone: table.ToneDefault}
}
