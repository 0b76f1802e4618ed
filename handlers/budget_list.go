package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"warpmanager/services"
	"warpmanager/templates"
)

func HandleBudgetList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("budgets", "id != ''", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("budget_list: could not query budgets: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível carregar os orçamentos")
		}

		data := templates.BudgetListData{}
		for _, rec := range records {
			total, err := budgetTotal(app, rec.Id)
			if err != nil {
				log.Printf("budget_list: could not total budget %s: %v", rec.Id, err)
				return ErrorToast(e, http.StatusInternalServerError, "Não foi possível carregar os orçamentos")
			}
			data.Budgets = append(data.Budgets, templates.BudgetRow{
				ID:          rec.Id,
				Number:      rec.GetString("number"),
				ClientName:  rec.GetString("client_name"),
				StatusLabel: services.BudgetStatusLabel(rec.GetString("status")),
				IssueDate:   services.FormatDateBR(rec.GetDateTime("issue_date").Time()),
				Total:       total,
			})
		}

		return render(e, "Orçamentos", templates.BudgetList(data))
	}
}

// budgetTotal sums unit_price * quantity over the budget's product lines.
func budgetTotal(app *pocketbase.PocketBase, budgetID string) (float64, error) {
	products, err := app.FindRecordsByFilter(
		"budget_products",
		"budget = {:budget}",
		"sort_order",
		0, 0,
		map[string]any{"budget": budgetID},
	)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, p := range products {
		total += p.GetFloat("unit_price") * p.GetFloat("quantity")
	}
	return total, nil
}
