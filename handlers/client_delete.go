package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleClientDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientID := e.Request.PathValue("id")

		rec, err := app.FindRecordById("clients", clientID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Cliente não encontrado")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("client_delete: could not delete client %s: %v", clientID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível excluir o cliente")
		}

		SetToast(e, "success", "Cliente excluído")
		return e.String(http.StatusOK, "")
	}
}
