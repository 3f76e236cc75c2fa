package resources

import (
	"github.com/dmitrijs2005/ipms/internal/client/form"
	"github.com/dmitrijs2005/ipms/internal/client/models"
)

var InventoryForm = form.Spec[models.InventoryItem]{
	RequiredMessage: "Name and SKU are required.",
	Fields: []form.Field[models.InventoryItem]{
		form.Text("name", "Name", true,
			func(i models.InventoryItem) string { return i.Name },
			func(i *models.InventoryItem, v string) { i.Name = v }),
		form.Text("sku", "SKU", true,
			func(i models.InventoryItem) string { return i.SKU },
			func(i *models.InventoryItem, v string) { i.SKU = v }),
		form.Int("quantity", "Quantity", false,
			func(i models.InventoryItem) int { return i.Quantity },
			func(i *models.InventoryItem, v int) { i.Quantity = v }),
		form.Int("reorder_level", "Reorder Level", false,
			func(i models.InventoryItem) int { return i.ReorderLevel },
			func(i *models.InventoryItem, v int) { i.ReorderLevel = v }),
	},
}

var OrderForm = form.Spec[models.Order]{
	RequiredMessage: "Supplier and Item are required.",
	Empty:           func() models.Order { return models.Order{Quantity: 1} },
	Fields: []form.Field[models.Order]{
		form.Text("supplier", "Supplier", true,
			func(o models.Order) string { return o.Supplier },
			func(o *models.Order, v string) { o.Supplier = v }),
		form.Text("item", "Item", true,
			func(o models.Order) string { return o.Item },
			func(o *models.Order, v string) { o.Item = v }),
		form.Int("quantity", "Quantity", false,
			func(o models.Order) int { return o.Quantity },
			func(o *models.Order, v int) { o.Quantity = v }),
	},
}

var SupplierForm = form.Spec[models.Supplier]{
	RequiredMessage: "Name is required.",
	Fields: []form.Field[models.Supplier]{
		form.Text("name", "Name", true,
			func(s models.Supplier) string { return s.Name },
			func(s *models.Supplier, v string) { s.Name = v }),
		form.Text("contact_name", "Contact Name", false,
			func(s models.Supplier) string { return s.ContactName },
			func(s *models.Supplier, v string) { s.ContactName = v }),
		form.Text("contact_email", "Contact Email", false,
			func(s models.Supplier) string { return s.ContactEmail },
			func(s *models.Supplier, v string) { s.ContactEmail = v }),
		form.Text("contact_phone", "Contact Phone", false,
			func(s models.Supplier) string { return s.ContactPhone },
			func(s *models.Supplier, v string) { s.ContactPhone = v }),
		form.Text("address", "Address", false,
			func(s models.Supplier) string { return s.Address },
			func(s *models.Supplier, v string) { s.Address = v }),
	},
}

var UserForm = form.Spec[models.User]{
	RequiredMessage: "Username and email are required.",
	Empty:           func() models.User { return models.User{Role: models.RoleStaff, IsActive: true} },
	Fields: []form.Field[models.User]{
		form.Text("username", "Username", true,
			func(u models.User) string { return u.Username },
			func(u *models.User, v string) { u.Username = v }),
		form.Text("email", "Email", true,
			func(u models.User) string { return u.Email },
			func(u *models.User, v string) { u.Email = v }),
		form.Choice("role", "Role", false, models.Roles,
			func(u models.User) string { return u.Role },
			func(u *models.User, v string) { u.Role = v }),
		form.Bool("is_active", "Active",
			func(u models.User) bool { return u.IsActive },
			func(u *models.User, v bool) { u.IsActive = v }),
	},
}

var PaymentForm = form.Spec[models.PaymentRequest]{
	RequiredMessage: "Amount, MoMo phone and description are required.",
	Empty: func() models.PaymentRequest {
		return models.PaymentRequest{PaymentType: models.PaymentOrder, Currency: models.DefaultCurrency}
	},
	Fields: []form.Field[models.PaymentRequest]{
		form.Choice("payment_type", "Payment Type", false, models.PaymentTypes,
			func(p models.PaymentRequest) string { return p.PaymentType },
			func(p *models.PaymentRequest, v string) { p.PaymentType = v }),
		form.Decimal("amount", "Amount", true,
			func(p models.PaymentRequest) string { return p.Amount },
			func(p *models.PaymentRequest, v string) { p.Amount = v }),
		form.Text("currency", "Currency", false,
			func(p models.PaymentRequest) string { return p.Currency },
			func(p *models.PaymentRequest, v string) { p.Currency = v }),
		form.Text("momo_phone", "MoMo Phone", true,
			func(p models.PaymentRequest) string { return p.MomoPhone },
			func(p *models.PaymentRequest, v string) { p.MomoPhone = v }),
		form.Text("description", "Description", true,
			func(p models.PaymentRequest) string { return p.Description },
			func(p *models.PaymentRequest, v string) { p.Description = v }),
		form.Text("notes", "Notes", false,
			func(p models.PaymentRequest) string { return p.Notes },
			func(p *models.PaymentRequest, v string) { p.Notes = v }),
	},
}
