package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"warpmanager/templates"
)

func HandleClientEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientID := e.Request.PathValue("id")

		rec, err := app.FindRecordById("clients", clientID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Cliente não encontrado")
		}

		data := templates.ClientFormData{
			ID:       rec.Id,
			Name:     rec.GetString("name"),
			Document: rec.GetString("document"),
			Phone:    rec.GetString("phone"),
			Email:    rec.GetString("email"),
			Address:  rec.GetString("address"),
			City:     rec.GetString("city"),
			Notes:    rec.GetString("notes"),
			Errors:   make(map[string]string),
		}

		return render(e, "Editar cliente", templates.ClientForm(data))
	}
}

func HandleClientUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientID := e.Request.PathValue("id")

		rec, err := app.FindRecordById("clients", clientID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Cliente não encontrado")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Formulário inválido")
		}

		data := clientFormFromRequest(e)
		data.ID = clientID

		if data.Name == "" {
			data.Errors["name"] = "Informe o nome do cliente"
			SetToast(e, "warning", "Corrija os campos destacados")
			return render(e, "Editar cliente", templates.ClientForm(data))
		}

		setClientFields(rec, data)

		if err := app.Save(rec); err != nil {
			log.Printf("client_edit: could not save client %s: %v", clientID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível salvar o cliente")
		}

		SetToast(e, "success", "Cliente atualizado")
		return redirect(e, "/clients")
	}
}
