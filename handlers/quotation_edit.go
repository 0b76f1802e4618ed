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

func HandleQuotationEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")

		quotation, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Cotação não encontrada")
		}

		data, err := buildQuotationEditData(app, quotation)
		if err != nil {
			log.Printf("quotation_edit: could not build edit data for %s: %v", quotationID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível carregar a cotação")
		}

		return render(e, "Cotação "+data.Name, templates.QuotationEdit(data))
	}
}

// HandleQuotationUpdate saves the worksheet header: name, global margin
// and status. Every item is repriced against the new global margin, so
// items without an override follow it immediately.
func HandleQuotationUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")

		quotation, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Cotação não encontrada")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Formulário inválido")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Informe o nome da cotação")
		}

		status := e.Request.FormValue("status")
		if !validChoice(status, services.QuotationStatuses) {
			status = services.QuotationStatusInQuotation
		}

		quotation.Set("name", name)
		quotation.Set("global_profit_percent", services.ParseAmount(e.Request.FormValue("global_profit_percent")))
		quotation.Set("status", status)

		if err := app.Save(quotation); err != nil {
			log.Printf("quotation_edit: could not save quotation %s: %v", quotationID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível salvar a cotação")
		}

		SetToast(e, "success", "Cotação atualizada")
		return redirect(e, "/quotations/"+quotationID)
	}
}

func HandleQuotationDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")

		quotation, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Cotação não encontrada")
		}

		if err := app.Delete(quotation); err != nil {
			log.Printf("quotation_edit: could not delete quotation %s: %v", quotationID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível excluir a cotação")
		}

		SetToast(e, "success", "Cotação excluída")
		return e.String(http.StatusOK, "")
	}
}

// validChoice reports whether value is one of the allowed keys.
func validChoice(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}
