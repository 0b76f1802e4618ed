package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"warpmanager/services"
	"warpmanager/templates"
)

func HandleOrderList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("service_orders", "id != ''", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("order_list: could not query service orders: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível carregar as ordens de serviço")
		}

		data := templates.OrderListData{}
		for _, rec := range records {
			data.Orders = append(data.Orders, templates.OrderRow{
				ID:         rec.Id,
				Number:     rec.GetString("number"),
				ClientName: rec.GetString("client_name"),
				ServiceLabel: services.ServiceLabel(
					rec.GetString("action"),
					rec.GetString("system"),
					rec.GetString("maintenance_kind"),
				),
				StatusLabel:   services.OrderStatusLabel(rec.GetString("status")),
				ScheduledDate: services.FormatDateBR(rec.GetDateTime("scheduled_date").Time()),
				Technician:    rec.GetString("technician"),
			})
		}

		return render(e, "Ordens de serviço", templates.OrderList(data))
	}
}
