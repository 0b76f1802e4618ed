package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"warpmanager/services"
)

// HandleQuotationConvert turns a quotation into a budget. The conversion
// reads the persisted worksheet, so any unsaved edits in the browser do
// not leak into the generated document.
func HandleQuotationConvert(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")

		quotation, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Cotação não encontrada")
		}

		_, inputs, err := loadQuotationItems(app, quotationID)
		if err != nil {
			log.Printf("quotation_convert: could not load items for %s: %v", quotationID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível carregar os itens")
		}
		if len(inputs) == 0 {
			return ErrorToast(e, http.StatusBadRequest, "A cotação não tem itens para gerar um orçamento")
		}

		globalPercent := quotation.GetFloat("global_profit_percent")
		priced := services.PriceItems(inputs, globalPercent)
		conversion := services.ConvertQuotation(priced, globalPercent)

		number := services.GenerateBudgetNumber(app, time.Now())

		budgetCol, err := app.FindCollectionByNameOrId("budgets")
		if err != nil {
			log.Printf("quotation_convert: could not find budgets collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		budget := core.NewRecord(budgetCol)
		budget.Set("number", number)
		budget.Set("status", services.BudgetStatusOpen)
		budget.Set("issue_date", time.Now().Format("2006-01-02"))
		budget.Set("global_profit_percent", conversion.GlobalProfitPercent)
		budget.Set("source_quotation", quotationID)

		if clientID := quotation.GetString("client"); clientID != "" {
			if client, err := app.FindRecordById("clients", clientID); err == nil {
				budget.Set("client", clientID)
				budget.Set("client_name", client.GetString("name"))
				budget.Set("client_document", client.GetString("document"))
				budget.Set("client_phone", client.GetString("phone"))
				budget.Set("client_address", client.GetString("address"))
			}
		}
		if budget.GetString("client_name") == "" {
			budget.Set("client_name", quotation.GetString("name"))
		}

		if err := app.Save(budget); err != nil {
			log.Printf("quotation_convert: could not save budget: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível salvar o orçamento")
		}

		productCol, err := app.FindCollectionByNameOrId("budget_products")
		if err != nil {
			log.Printf("quotation_convert: could not find budget_products collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		for i, product := range conversion.Products {
			rec := core.NewRecord(productCol)
			rec.Set("budget", budget.Id)
			rec.Set("sort_order", i)
			rec.Set("description", product.Description)
			rec.Set("quantity", product.Quantity)
			rec.Set("unit", product.Unit)
			rec.Set("unit_price", product.UnitPrice)
			if err := app.Save(rec); err != nil {
				log.Printf("quotation_convert: could not save budget product %d: %v", i, err)
				return ErrorToast(e, http.StatusInternalServerError, "Não foi possível salvar os produtos do orçamento")
			}
		}

		SetToast(e, "success", "Orçamento "+number+" gerado")
		return redirect(e, "/budgets/"+budget.Id)
	}
}
