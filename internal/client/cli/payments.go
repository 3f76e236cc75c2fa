package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ipms/internal/client/client"
	"github.com/dmitrijs2005/ipms/internal/client/form"
	"github.com/dmitrijs2005/ipms/internal/client/models"
	"github.com/dmitrijs2005/ipms/internal/client/resources"
	"github.com/dmitrijs2005/ipms/internal/client/table"
)

// paymentsPage lists the caller's requests. New requests go through the
// generate-link endpoint; requests are never edited or deleted here.
func (a *App) paymentsPage() *page[models.PaymentRequest] {
	pc := a.api.Payments()
	p := &page[models.PaymentRequest]{
		app:      a,
		name:     "payments",
		singular: "Payment request",
		ctrl:     table.NewController[models.PaymentRequest](client.PaymentsEndpoint, pc.List, a.tableConfig()),
		view:     resources.PaymentsView(a.config.Color),
		dialog:   form.NewDialog(resources.PaymentForm),
		noEdit:   true,
		saved:    func(string) string { return "Payment request created successfully!" },
	}
	p.save = func(ctx context.Context, draft models.PaymentRequest, _ bool) error {
		link, err := pc.GenerateLink(ctx, draft)
		if err != nil {
			return err
		}
		if link.PaymentURL != "" {
			a.say("Payment link: %s", link.PaymentURL)
		}
		return nil
	}
	p.extras = map[string]command{
		"new": {
			usage: "new",
			run:   func(ctx context.Context, _ []string) { p.add(ctx) },
		},
		"analytics": {
			usage: "analytics",
			run: func(ctx context.Context, _ []string) {
				an, err := pc.Analytics(ctx)
				if err != nil {
					a.sayErr(err)
					return
				}
				a.printPaymentAnalytics(an)
			},
		},
	}
	return p
}

func (a *App) printPaymentAnalytics(an models.PaymentAnalytics) {
	a.say("Total payments: %d", an.TotalPayments)
	a.say("Completed:      %s", table.Paint(fmt.Sprint(an.CompletedPayments), table.ToneSuccess, a.config.Color))
	a.say("Pending:        %s", table.Paint(fmt.Sprint(an.PendingPayments), table.ToneWarning, a.config.Color))
	a.say("Failed:         %s", table.Paint(fmt.Sprint(an.FailedPayments), table.ToneError, a.config.Color))
	a.say("Total amount:   %.2f %s", an.TotalAmount, models.DefaultCurrency)
	for _, t := range an.PaymentTypes {
		a.say("  %s %d", padRight(t.PaymentType, 18), t.Count)
	}
}
