package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/ipms/internal/client/router"
	"github.com/dmitrijs2005/ipms/internal/common"
)

const landingText = `Inventory and Procurement Management System

Empowering African industries with modern, efficient, and transparent
inventory and procurement solutions.

Type 'login' to sign in or 'about' to learn more.`

const aboutText = `About IPMS

  Inventory Management  Track, update, and manage inventory items with real-time visibility and low-stock alerts.
  Order Processing      Create, approve, and monitor purchase orders with status tracking and analytics.
  Supplier Management   Maintain supplier records, evaluate performance, and streamline procurement relationships.
  Reports & Analytics   Generate insightful reports and visualize key metrics for smarter business decisions.
  Notifications         Stay informed with real-time alerts for low stock, pending orders, and more.
  Audit Logs            Track all system activities for transparency, compliance, and accountability.`

// Open resolves route and shows the page. Protected routes ask for a login
// first and continue to the requested page once it succeeds.
func (a *App) Open(ctx context.Context, route string) (bool, error) {
	target, err := a.nav.Navigate(ctx, route)
	if err != nil {
		if errors.Is(err, common.ErrUnknownRoute) {
			a.say("Unknown page: %s", route)
		}
		return false, err
	}

	if target == router.Login {
		if router.IsProtected(route) {
			a.say("Please log in to continue.")
		}
		if err := a.Login(ctx); err != nil {
			return false, err
		}
		target = a.nav.CompleteLogin()
	}

	switch target {
	case router.Root:
		a.say("%s", landingText)
	case router.About:
		a.say("%s", aboutText)
	case router.Dashboard:
		a.showDashboard(ctx)
	case router.Inventory:
		return a.inventoryPage().run(ctx), nil
	case router.Orders:
		return a.ordersPage().run(ctx), nil
	case router.Suppliers:
		return a.suppliersPage().run(ctx), nil
	case router.Reports:
		return a.reportsPage(ctx), nil
	case router.Notifications:
		return a.notificationsPage().run(ctx), nil
	case router.AuditLogs:
		return a.auditPage().run(ctx), nil
	case router.Users:
		return a.usersPage().run(ctx), nil
	case router.Payments:
		return a.paymentsPage().run(ctx), nil
	}
	return false, nil
}
