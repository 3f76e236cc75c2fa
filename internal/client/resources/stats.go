package resources

import (
	"time"

	"github.com/dmitrijs2005/ipms/internal/client/models"
)

// AuditStats summarises the audit entries currently on screen.
type AuditStats struct {
	Total    int
	Today    int
	ThisWeek int
	System   int
	User     int
}

// SummarizeAudit counts entries relative to now in now's location. This
// week means the last seven days, not the calendar week.
func SummarizeAudit(logs []models.AuditLog, now time.Time) AuditStats {
	s := AuditStats{Total: len(logs)}
	y, m, d := now.Date()
	weekAgo := now.AddDate(0, 0, -7)

	for _, l := range logs {
		ts := l.CreatedAt.In(now.Location())
		if ly, lm, ld := ts.Date(); ly == y && lm == m && ld == d {
			s.Today++
		}
		if !ts.Before(weekAgo) {
			s.ThisWeek++
		}
		if l.SystemAction() {
			s.System++
		} else {
			s.User++
		}
	}
	return s
}
