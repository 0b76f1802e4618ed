package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"warpmanager/templates"
)

type contextKey string

const NavDataKey contextKey = "navData"

// GetNavData extracts the pre-built NavData from the request context.
func GetNavData(r *http.Request) templates.NavData {
	if val, ok := r.Context().Value(NavDataKey).(templates.NavData); ok {
		return val
	}
	return templates.NavData{}
}

// NavMiddleware counts the main record sets and stores a NavData in the
// request context so every full-page render shows up-to-date sidebar badges.
func NavMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		nav := templates.NavData{
			ClientCount:    countRecords(app, "clients"),
			QuotationCount: countRecords(app, "quotations"),
			BudgetCount:    countRecords(app, "budgets"),
			OrderCount:     countRecords(app, "service_orders"),
		}

		ctx := context.WithValue(e.Request.Context(), NavDataKey, nav)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}

func countRecords(app *pocketbase.PocketBase, collection string) int {
	records, err := app.FindRecordsByFilter(collection, "id != ''", "", 0, 0, nil)
	if err != nil {
		return 0
	}
	return len(records)
}
