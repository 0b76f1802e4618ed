package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"warpmanager/templates"
)

func HandleClientList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("clients", "id != ''", "name", 0, 0, nil)
		if err != nil {
			log.Printf("client_list: could not query clients: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível carregar os clientes")
		}

		data := templates.ClientListData{}
		for _, rec := range records {
			data.Clients = append(data.Clients, templates.ClientRow{
				ID:    rec.Id,
				Name:  rec.GetString("name"),
				Phone: rec.GetString("phone"),
				Email: rec.GetString("email"),
				City:  rec.GetString("city"),
			})
		}

		return render(e, "Clientes", templates.ClientList(data))
	}
}
