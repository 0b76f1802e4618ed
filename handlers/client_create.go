package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"warpmanager/templates"
)

func HandleClientCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.ClientFormData{Errors: make(map[string]string)}
		return render(e, "Novo cliente", templates.ClientForm(data))
	}
}

func HandleClientSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Formulário inválido")
		}

		data := clientFormFromRequest(e)

		if data.Name == "" {
			data.Errors["name"] = "Informe o nome do cliente"
			SetToast(e, "warning", "Corrija os campos destacados")
			return render(e, "Novo cliente", templates.ClientForm(data))
		}

		col, err := app.FindCollectionByNameOrId("clients")
		if err != nil {
			log.Printf("client_create: could not find clients collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		record := core.NewRecord(col)
		setClientFields(record, data)

		if err := app.Save(record); err != nil {
			log.Printf("client_create: could not save client: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível salvar o cliente")
		}

		SetToast(e, "success", "Cliente criado")
		return redirect(e, "/clients")
	}
}

// clientFormFromRequest reads the client form fields from the request.
func clientFormFromRequest(e *core.RequestEvent) templates.ClientFormData {
	return templates.ClientFormData{
		Name:     strings.TrimSpace(e.Request.FormValue("name")),
		Document: strings.TrimSpace(e.Request.FormValue("document")),
		Phone:    strings.TrimSpace(e.Request.FormValue("phone")),
		Email:    strings.TrimSpace(e.Request.FormValue("email")),
		Address:  strings.TrimSpace(e.Request.FormValue("address")),
		City:     strings.TrimSpace(e.Request.FormValue("city")),
		Notes:    strings.TrimSpace(e.Request.FormValue("notes")),
		Errors:   make(map[string]string),
	}
}

func setClientFields(record *core.Record, data templates.ClientFormData) {
	record.Set("name", data.Name)
	record.Set("document", data.Document)
	record.Set("phone", data.Phone)
	record.Set("email", data.Email)
	record.Set("address", data.Address)
	record.Set("city", data.City)
	record.Set("notes", data.Notes)
}
