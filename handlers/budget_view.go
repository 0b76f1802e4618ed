package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"warpmanager/services"
	"warpmanager/templates"
)

func HandleBudgetView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		budgetID := e.Request.PathValue("id")

		rec, err := app.FindRecordById("budgets", budgetID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Orçamento não encontrado")
		}

		products, err := app.FindRecordsByFilter(
			"budget_products",
			"budget = {:budget}",
			"sort_order",
			0, 0,
			map[string]any{"budget": budgetID},
		)
		if err != nil {
			log.Printf("budget_view: could not query products for %s: %v", budgetID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível carregar o orçamento")
		}

		data := templates.BudgetViewData{
			ID:           rec.Id,
			Number:       rec.GetString("number"),
			Status:       rec.GetString("status"),
			IssueDate:    services.FormatDateBR(rec.GetDateTime("issue_date").Time()),
			ClientName:   rec.GetString("client_name"),
			ClientPhone:  rec.GetString("client_phone"),
			PaymentTerms: rec.GetString("payment_terms"),
			Warranty:     rec.GetString("warranty"),
			Notes:        rec.GetString("notes"),
		}
		for _, p := range products {
			product := services.BudgetProduct{
				Description: p.GetString("description"),
				Quantity:    p.GetFloat("quantity"),
				Unit:        p.GetString("unit"),
				UnitPrice:   p.GetFloat("unit_price"),
			}
			product.Total = product.UnitPrice * product.Quantity
			data.Total += product.Total
			data.Products = append(data.Products, templates.BudgetProductRow{
				ID:      p.Id,
				Product: product,
			})
		}

		return render(e, "Orçamento "+data.Number, templates.BudgetView(data))
	}
}
