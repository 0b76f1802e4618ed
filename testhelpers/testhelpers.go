// Package testhelpers provides utilities for testing PocketBase-based
// applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"warpmanager/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestClient creates a client record with the given name and returns it.
func CreateTestClient(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("clients")
	if err != nil {
		t.Fatalf("failed to find clients collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("phone", "(31) 90000-0000")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test client: %v", err)
	}

	return record
}

// CreateTestQuotation creates a quotation with the given name and global
// profit percent and returns it.
func CreateTestQuotation(t *testing.T, app *pocketbase.PocketBase, name string, globalPercent float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		t.Fatalf("failed to find quotations collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("global_profit_percent", globalPercent)
	record.Set("status", "in_quotation")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quotation: %v", err)
	}

	return record
}

// QuotationItemSpec describes a quotation item to create in tests.
type QuotationItemSpec struct {
	Description   string
	Supplier      string
	Quantity      float64
	UnitCost      float64
	ProfitPercent string
	ZeroCost      bool
	UnitSalePrice float64
}

// CreateTestQuotationItem creates one quotation line linked to a quotation.
func CreateTestQuotationItem(t *testing.T, app *pocketbase.PocketBase, quotationID string, sortOrder int, spec QuotationItemSpec) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotation_items")
	if err != nil {
		t.Fatalf("failed to find quotation_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quotation", quotationID)
	record.Set("sort_order", sortOrder)
	record.Set("description", spec.Description)
	record.Set("supplier", spec.Supplier)
	record.Set("quantity", spec.Quantity)
	record.Set("unit_cost", spec.UnitCost)
	record.Set("profit_percent", spec.ProfitPercent)
	record.Set("zero_cost", spec.ZeroCost)
	record.Set("unit_sale_price", spec.UnitSalePrice)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quotation item: %v", err)
	}

	return record
}

// CreateTestBudget creates a budget with a number and client name.
func CreateTestBudget(t *testing.T, app *pocketbase.PocketBase, number, clientName string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("budgets")
	if err != nil {
		t.Fatalf("failed to find budgets collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("number", number)
	record.Set("client_name", clientName)
	record.Set("status", "open")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test budget: %v", err)
	}

	return record
}

// CreateTestBudgetProduct creates one product line linked to a budget.
func CreateTestBudgetProduct(t *testing.T, app *pocketbase.PocketBase, budgetID string, sortOrder int, description string, quantity, unitPrice float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("budget_products")
	if err != nil {
		t.Fatalf("failed to find budget_products collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("budget", budgetID)
	record.Set("sort_order", sortOrder)
	record.Set("description", description)
	record.Set("quantity", quantity)
	record.Set("unit", "UN")
	record.Set("unit_price", unitPrice)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test budget product: %v", err)
	}

	return record
}

// CreateTestServiceOrder creates a service order for a client.
func CreateTestServiceOrder(t *testing.T, app *pocketbase.PocketBase, number, clientName string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("service_orders")
	if err != nil {
		t.Fatalf("failed to find service_orders collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("number", number)
	record.Set("client_name", clientName)
	record.Set("action", "installation")
	record.Set("system", "cctv")
	record.Set("status", "scheduled")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test service order: %v", err)
	}

	return record
}

// AssertHXRedirect checks the HX-Redirect header value.
func AssertHXRedirect(t *testing.T, got, want string) {
	t.Helper()

	if got != want {
		t.Errorf("expected HX-Redirect %q, got %q", want, got)
	}
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected body to contain %q", frag)
		}
	}
}
