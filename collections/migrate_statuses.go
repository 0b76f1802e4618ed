package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"

	"warpmanager/services"
)

// MigrateMissingStatuses backfills the status field of records imported
// from the previous system, which stored some documents without one.
func MigrateMissingStatuses(app *pocketbase.PocketBase) error {
	migrated := 0

	defaults := []struct {
		collection string
		status     string
	}{
		{"quotations", services.QuotationStatusInQuotation},
		{"budgets", services.BudgetStatusOpen},
		{"service_orders", services.OrderStatusScheduled},
	}

	for _, d := range defaults {
		records, err := app.FindRecordsByFilter(d.collection, "status = ''", "", 0, 0, nil)
		if err != nil {
			return fmt.Errorf("migrate statuses: query %s: %w", d.collection, err)
		}
		for _, rec := range records {
			rec.Set("status", d.status)
			if err := app.Save(rec); err != nil {
				return fmt.Errorf("migrate statuses: save %s %s: %w", d.collection, rec.Id, err)
			}
			migrated++
		}
	}

	if migrated > 0 {
		log.Printf("migrate: backfilled status on %d records", migrated)
	}
	return nil
}
