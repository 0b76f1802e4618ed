package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
)

// ReportProduct is one product line of a budget as it appears in the
// bulk report.
type ReportProduct struct {
	Description string
	Quantity    float64
	Unit        string
	UnitPrice   float64
	Total       float64
}

// ReportBudget is one budget with its product lines.
type ReportBudget struct {
	Number     string
	ClientName string
	Status     string
	IssueDate  time.Time
	Products   []ReportProduct
	Total      float64
}

// ReportOrder is one service order. Orders carry no priced lines; the
// report fills their cost columns with a not-applicable marker.
type ReportOrder struct {
	Number        string
	ClientName    string
	ServiceLabel  string
	Status        string
	ScheduledDate time.Time
	Technician    string
}

// ReportData holds everything the bulk report renders.
type ReportData struct {
	GeneratedAt time.Time
	Budgets     []ReportBudget
	Orders      []ReportOrder
}

// BuildReportData fetches all budgets (with product lines) and all service
// orders. Either both sets load or the report aborts; a partial report is
// never produced.
func BuildReportData(app *pocketbase.PocketBase, now time.Time) (ReportData, error) {
	budgetRecords, err := app.FindRecordsByFilter("budgets", "id != ''", "-created", 0, 0, nil)
	if err != nil {
		return ReportData{}, fmt.Errorf("fetch budgets: %w", err)
	}

	orderRecords, err := app.FindRecordsByFilter("service_orders", "id != ''", "-created", 0, 0, nil)
	if err != nil {
		return ReportData{}, fmt.Errorf("fetch service orders: %w", err)
	}

	data := ReportData{GeneratedAt: now}

	for _, b := range budgetRecords {
		budget := ReportBudget{
			Number:     b.GetString("number"),
			ClientName: b.GetString("client_name"),
			Status:     b.GetString("status"),
			IssueDate:  b.GetDateTime("issue_date").Time(),
		}

		productRecords, err := app.FindRecordsByFilter(
			"budget_products",
			"budget = {:budgetId}",
			"sort_order",
			0,
			0,
			map[string]any{"budgetId": b.Id},
		)
		if err != nil {
			return ReportData{}, fmt.Errorf("fetch products of budget %s: %w", b.Id, err)
		}

		for _, p := range productRecords {
			qty := p.GetFloat("quantity")
			unitPrice := p.GetFloat("unit_price")
			product := ReportProduct{
				Description: p.GetString("description"),
				Quantity:    qty,
				Unit:        p.GetString("unit"),
				UnitPrice:   unitPrice,
				Total:       qty * unitPrice,
			}
			budget.Products = append(budget.Products, product)
			budget.Total += product.Total
		}

		data.Budgets = append(data.Budgets, budget)
	}

	for _, o := range orderRecords {
		data.Orders = append(data.Orders, ReportOrder{
			Number:     o.GetString("number"),
			ClientName: o.GetString("client_name"),
			ServiceLabel: ServiceLabel(
				o.GetString("action"),
				o.GetString("system"),
				o.GetString("maintenance_kind"),
			),
			Status:        o.GetString("status"),
			ScheduledDate: o.GetDateTime("scheduled_date").Time(),
			Technician:    o.GetString("technician"),
		})
	}

	return data, nil
}
