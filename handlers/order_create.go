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

func HandleOrderCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.OrderFormData{
			Action: services.ActionInstallation,
			System: services.SystemAlarm,
			Status: services.OrderStatusScheduled,
			Errors: make(map[string]string),
		}
		return render(e, "Nova ordem de serviço", templates.OrderForm(data))
	}
}

func HandleOrderSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Formulário inválido")
		}

		data := orderFormFromRequest(e)
		if data.ClientName == "" {
			data.Errors["client_name"] = "Informe o nome do cliente"
			SetToast(e, "warning", "Corrija os campos destacados")
			return render(e, "Nova ordem de serviço", templates.OrderForm(data))
		}

		col, err := app.FindCollectionByNameOrId("service_orders")
		if err != nil {
			log.Printf("order_create: could not find service_orders collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		record := core.NewRecord(col)
		record.Set("number", services.GenerateOrderNumber(app, time.Now()))
		setOrderFields(record, data)

		if err := app.Save(record); err != nil {
			log.Printf("order_create: could not save service order: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível salvar a ordem de serviço")
		}

		SetToast(e, "success", "Ordem de serviço criada")
		return redirect(e, "/orders")
	}
}

func orderFormFromRequest(e *core.RequestEvent) templates.OrderFormData {
	action := e.Request.FormValue("action")
	if !validChoice(action, services.ServiceActions) {
		action = services.ActionInstallation
	}
	system := e.Request.FormValue("system")
	if !validChoice(system, services.SecuritySystems) {
		system = services.SystemAlarm
	}
	status := e.Request.FormValue("status")
	if !validChoice(status, services.OrderStatuses) {
		status = services.OrderStatusScheduled
	}
	kind := e.Request.FormValue("maintenance_kind")
	if action != services.ActionMaintenance || !validChoice(kind, services.MaintenanceKinds) {
		kind = ""
	}
	return templates.OrderFormData{
		ClientName:      strings.TrimSpace(e.Request.FormValue("client_name")),
		Action:          action,
		System:          system,
		MaintenanceKind: kind,
		Status:          status,
		ScheduledDate:   strings.TrimSpace(e.Request.FormValue("scheduled_date")),
		Technician:      strings.TrimSpace(e.Request.FormValue("technician")),
		EquipmentNotes:  strings.TrimSpace(e.Request.FormValue("equipment_notes")),
		Errors:          make(map[string]string),
	}
}

func setOrderFields(record *core.Record, data templates.OrderFormData) {
	record.Set("client_name", data.ClientName)
	record.Set("action", data.Action)
	record.Set("system", data.System)
	record.Set("maintenance_kind", data.MaintenanceKind)
	record.Set("status", data.Status)
	record.Set("scheduled_date", data.ScheduledDate)
	record.Set("technician", data.Technician)
	record.Set("equipment_notes", data.EquipmentNotes)
}
