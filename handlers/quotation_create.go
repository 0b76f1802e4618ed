package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"warpmanager/services"
	"warpmanager/templates"
)

const defaultGlobalPercent = 40

func HandleQuotationCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return render(e, "Nova cotação", templates.QuotationCreateForm("", make(map[string]string)))
	}
}

func HandleQuotationSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Formulário inválido")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			errs := map[string]string{"name": "Informe o nome da cotação"}
			SetToast(e, "warning", "Corrija os campos destacados")
			return render(e, "Nova cotação", templates.QuotationCreateForm(name, errs))
		}

		globalPercent := services.ParseAmount(e.Request.FormValue("global_profit_percent"))
		if e.Request.FormValue("global_profit_percent") == "" {
			globalPercent = defaultGlobalPercent
		}

		col, err := app.FindCollectionByNameOrId("quotations")
		if err != nil {
			log.Printf("quotation_create: could not find quotations collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		record := core.NewRecord(col)
		record.Set("name", name)
		record.Set("global_profit_percent", globalPercent)
		record.Set("status", services.QuotationStatusInQuotation)

		if err := app.Save(record); err != nil {
			log.Printf("quotation_create: could not save quotation: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível salvar a cotação")
		}

		SetToast(e, "success", "Cotação criada")
		return redirect(e, "/quotations/"+record.Id)
	}
}
