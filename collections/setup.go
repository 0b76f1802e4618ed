// Package collections creates and maintains the application's PocketBase
// collections.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"warpmanager/services"
)

// Setup programmatically creates/ensures the clients, quotations,
// quotation_items, budgets, budget_products and service_orders collections
// exist. Derived pricing figures (totals, profit, sale prices of normal
// lines) are intentionally absent: they are recomputed from the stored
// inputs on every read.
func Setup(app *pocketbase.PocketBase) {
	clients := ensureCollection(app, "clients", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "document", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.EmailField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "address", Required: false})
		c.Fields.Add(&core.TextField{Name: "city", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	quotations := ensureCollection(app, "quotations", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.RelationField{
			Name:         "client",
			Required:     false,
			CollectionId: clients.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.NumberField{Name: "global_profit_percent", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    services.QuotationStatuses,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "quotation_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quotation",
			Required:      true,
			CollectionId:  quotations.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: true})
		c.Fields.Add(&core.TextField{Name: "supplier", Required: false})
		c.Fields.Add(&core.NumberField{Name: "quantity", Required: false})
		c.Fields.Add(&core.NumberField{Name: "unit_cost", Required: false})
		// Empty string means "use the quotation's global percent".
		c.Fields.Add(&core.TextField{Name: "profit_percent", Required: false})
		c.Fields.Add(&core.BoolField{Name: "zero_cost"})
		// Only authoritative on zero-cost lines.
		c.Fields.Add(&core.NumberField{Name: "unit_sale_price", Required: false})
	})

	budgets := ensureCollection(app, "budgets", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "number", Required: true})
		c.Fields.Add(&core.RelationField{
			Name:         "client",
			Required:     false,
			CollectionId: clients.Id,
			MaxSelect:    1,
		})
		// Budgets own a copy of the client info so the issued document does
		// not change when the client record is edited later.
		c.Fields.Add(&core.TextField{Name: "client_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "client_document", Required: false})
		c.Fields.Add(&core.TextField{Name: "client_phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "client_address", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    services.BudgetStatuses,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.DateField{Name: "issue_date", Required: false})
		c.Fields.Add(&core.NumberField{Name: "global_profit_percent", Required: false})
		c.Fields.Add(&core.RelationField{
			Name:         "source_quotation",
			Required:     false,
			CollectionId: quotations.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "payment_terms", Required: false})
		c.Fields.Add(&core.TextField{Name: "warranty", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "budget_products", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "budget",
			Required:      true,
			CollectionId:  budgets.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: true})
		c.Fields.Add(&core.NumberField{Name: "quantity", Required: false})
		c.Fields.Add(&core.TextField{Name: "unit", Required: false})
		c.Fields.Add(&core.NumberField{Name: "unit_price", Required: false})
	})

	ensureCollection(app, "service_orders", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "number", Required: true})
		c.Fields.Add(&core.RelationField{
			Name:         "client",
			Required:     false,
			CollectionId: clients.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "client_name", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "action",
			Required:  true,
			Values:    services.ServiceActions,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "system",
			Required:  false,
			Values:    services.SecuritySystems,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "maintenance_kind",
			Required:  false,
			Values:    services.MaintenanceKinds,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    services.OrderStatuses,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.DateField{Name: "scheduled_date", Required: false})
		c.Fields.Add(&core.TextField{Name: "technician", Required: false})
		c.Fields.Add(&core.TextField{Name: "equipment_notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
