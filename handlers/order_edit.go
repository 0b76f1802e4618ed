package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"warpmanager/templates"
)

func HandleOrderEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		orderID := e.Request.PathValue("id")

		rec, err := app.FindRecordById("service_orders", orderID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Ordem de serviço não encontrada")
		}

		scheduled := ""
		if d := rec.GetDateTime("scheduled_date"); !d.IsZero() {
			scheduled = d.Time().Format("2006-01-02")
		}

		data := templates.OrderFormData{
			ID:              rec.Id,
			ClientName:      rec.GetString("client_name"),
			Action:          rec.GetString("action"),
			System:          rec.GetString("system"),
			MaintenanceKind: rec.GetString("maintenance_kind"),
			Status:          rec.GetString("status"),
			ScheduledDate:   scheduled,
			Technician:      rec.GetString("technician"),
			EquipmentNotes:  rec.GetString("equipment_notes"),
			Errors:          make(map[string]string),
		}

		return render(e, "Editar ordem de serviço", templates.OrderForm(data))
	}
}

func HandleOrderUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		orderID := e.Request.PathValue("id")

		rec, err := app.FindRecordById("service_orders", orderID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Ordem de serviço não encontrada")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Formulário inválido")
		}

		data := orderFormFromRequest(e)
		data.ID = orderID

		if data.ClientName == "" {
			data.Errors["client_name"] = "Informe o nome do cliente"
			SetToast(e, "warning", "Corrija os campos destacados")
			return render(e, "Editar ordem de serviço", templates.OrderForm(data))
		}

		setOrderFields(rec, data)

		if err := app.Save(rec); err != nil {
			log.Printf("order_edit: could not save service order %s: %v", orderID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível salvar a ordem de serviço")
		}

		SetToast(e, "success", "Ordem de serviço atualizada")
		return redirect(e, "/orders")
	}
}

func HandleOrderDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		orderID := e.Request.PathValue("id")

		rec, err := app.FindRecordById("service_orders", orderID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Ordem de serviço não encontrada")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("order_edit: could not delete service order %s: %v", orderID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível excluir a ordem de serviço")
		}

		SetToast(e, "success", "Ordem de serviço excluída")
		return e.String(http.StatusOK, "")
	}
}
