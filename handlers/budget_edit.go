package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"warpmanager/templates"
)

func HandleBudgetEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		budgetID := e.Request.PathValue("id")

		rec, err := app.FindRecordById("budgets", budgetID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Orçamento não encontrado")
		}

		data := templates.BudgetFormData{
			ID:             rec.Id,
			ClientName:     rec.GetString("client_name"),
			ClientDocument: rec.GetString("client_document"),
			ClientPhone:    rec.GetString("client_phone"),
			ClientAddress:  rec.GetString("client_address"),
			Status:         rec.GetString("status"),
			PaymentTerms:   rec.GetString("payment_terms"),
			Warranty:       rec.GetString("warranty"),
			Notes:          rec.GetString("notes"),
			Errors:         make(map[string]string),
		}

		return render(e, "Editar orçamento", templates.BudgetForm(data))
	}
}

func HandleBudgetUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		budgetID := e.Request.PathValue("id")

		rec, err := app.FindRecordById("budgets", budgetID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Orçamento não encontrado")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Formulário inválido")
		}

		data := budgetFormFromRequest(e)
		data.ID = budgetID

		if data.ClientName == "" {
			data.Errors["client_name"] = "Informe o nome do cliente"
			SetToast(e, "warning", "Corrija os campos destacados")
			return render(e, "Editar orçamento", templates.BudgetForm(data))
		}

		setBudgetFields(rec, data)

		if err := app.Save(rec); err != nil {
			log.Printf("budget_edit: could not save budget %s: %v", budgetID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível salvar o orçamento")
		}

		SetToast(e, "success", "Orçamento atualizado")
		return redirect(e, "/budgets/"+budgetID)
	}
}

func HandleBudgetDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		budgetID := e.Request.PathValue("id")

		rec, err := app.FindRecordById("budgets", budgetID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Orçamento não encontrado")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("budget_edit: could not delete budget %s: %v", budgetID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível excluir o orçamento")
		}

		SetToast(e, "success", "Orçamento excluído")
		return e.String(http.StatusOK, "")
	}
}
