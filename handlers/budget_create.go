package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"warpmanager/services"
	"warpmanager/templates"
)

func HandleBudgetCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.BudgetFormData{
			Status: services.BudgetStatusOpen,
			Errors: make(map[string]string),
		}
		return render(e, "Novo orçamento", templates.BudgetForm(data))
	}
}

// HandleBudgetSave creates a budget straight from the form, without a
// source quotation. Product lines are added later on the edit screen.
func HandleBudgetSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Formulário inválido")
		}

		data := budgetFormFromRequest(e)
		if data.ClientName == "" {
			data.Errors["client_name"] = "Informe o nome do cliente"
			SetToast(e, "warning", "Corrija os campos destacados")
			return render(e, "Novo orçamento", templates.BudgetForm(data))
		}

		col, err := app.FindCollectionByNameOrId("budgets")
		if err != nil {
			log.Printf("budget_create: could not find budgets collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		record := core.NewRecord(col)
		record.Set("number", services.GenerateBudgetNumber(app, time.Now()))
		record.Set("issue_date", time.Now().Format("2006-01-02"))
		setBudgetFields(record, data)

		if err := app.Save(record); err != nil {
			log.Printf("budget_create: could not save budget: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível salvar o orçamento")
		}

		SetToast(e, "success", "Orçamento criado")
		return redirect(e, "/budgets/"+record.Id)
	}
}

func budgetFormFromRequest(e *core.RequestEvent) templates.BudgetFormData {
	status := e.Request.FormValue("status")
	if !validChoice(status, services.BudgetStatuses) {
		status = services.BudgetStatusOpen
	}
	return templates.BudgetFormData{
		ClientName:     strings.TrimSpace(e.Request.FormValue("client_name")),
		ClientDocument: strings.TrimSpace(e.Request.FormValue("client_document")),
		ClientPhone:    strings.TrimSpace(e.Request.FormValue("client_phone")),
		ClientAddress:  strings.TrimSpace(e.Request.FormValue("client_address")),
		Status:         status,
		PaymentTerms:   strings.TrimSpace(e.Request.FormValue("payment_terms")),
		Warranty:       strings.TrimSpace(e.Request.FormValue("warranty")),
		Notes:          strings.TrimSpace(e.Request.FormValue("notes")),
		Errors:         make(map[string]string),
	}
}

func setBudgetFields(record *core.Record, data templates.BudgetFormData) {
	record.Set("client_name", data.ClientName)
	record.Set("client_document", data.ClientDocument)
	record.Set("client_phone", data.ClientPhone)
	record.Set("client_address", data.ClientAddress)
	record.Set("status", data.Status)
	record.Set("payment_terms", data.PaymentTerms)
	record.Set("warranty", data.Warranty)
	record.Set("notes", data.Notes)
}
