package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"warpmanager/services"
	"warpmanager/templates"
)

func HandleQuotationList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("quotations", "id != ''", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("quotation_list: could not query quotations: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível carregar as cotações")
		}

		data := templates.QuotationListData{}
		for _, rec := range records {
			_, inputs, err := loadQuotationItems(app, rec.Id)
			if err != nil {
				log.Printf("quotation_list: could not load items for %s: %v", rec.Id, err)
				return ErrorToast(e, http.StatusInternalServerError, "Não foi possível carregar as cotações")
			}
			priced := services.PriceItems(inputs, rec.GetFloat("global_profit_percent"))
			totals := services.CalcQuotationTotals(priced)

			data.Quotations = append(data.Quotations, templates.QuotationRow{
				ID:             rec.Id,
				Name:           rec.GetString("name"),
				StatusLabel:    services.QuotationStatusLabel(rec.GetString("status")),
				TotalSalePrice: totals.TotalSalePrice,
				TotalProfit:    totals.TotalProfit,
			})
		}

		return render(e, "Cotações", templates.QuotationList(data))
	}
}
