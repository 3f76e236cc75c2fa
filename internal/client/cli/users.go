package cli

import (
	"github.com/dmitrijs2005/ipms/internal/client/client"
	"github.com/dmitrijs2005/ipms/internal/client/form"
	"github.com/dmitrijs2005/ipms/internal/client/models"
	"github.com/dmitrijs2005/ipms/internal/client/resources"
	"github.com/dmitrijs2005/ipms/internal/client/table"
)

func (a *App) usersPage() *page[models.User] {
	res := a.api.Users()
	return &page[models.User]{
		app:           a,
		name:          "users",
		singular:      "User",
		ctrl:          table.NewController[models.User](client.UsersEndpoint, res.List, a.tableConfig()),
		view:          resources.UsersView(a.config.Color),
		res:           res,
		dialog:        form.NewDialog(resources.UserForm),
		confirmDelete: true,
	}
}
