package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"warpmanager/services"
)

// HandleBudgetExportPDF generates the customer-facing budget document.
func HandleBudgetExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		budgetID := e.Request.PathValue("id")

		data, err := services.BuildBudgetDocumentData(app, budgetID)
		if err != nil {
			log.Printf("budget_export: could not build document data for %s: %v", budgetID, err)
			return ErrorToast(e, http.StatusNotFound, "Orçamento não encontrado")
		}

		pdf, err := services.GenerateBudgetPDF(*data)
		if err != nil {
			log.Printf("budget_export: could not generate pdf for %s: %v", budgetID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível gerar o PDF")
		}

		filename := sanitizeFilename(fmt.Sprintf("orcamento-%s.pdf", data.Number))
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		_, err = e.Response.Write(pdf)
		return err
	}
}
