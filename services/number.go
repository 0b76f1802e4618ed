package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
)

// formatDocumentNumber constructs a document number from its components,
// e.g. ORC-2026-007.
func formatDocumentNumber(prefix string, year int, sequence int) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, year, sequence)
}

// nextDocumentNumber counts existing records in a collection whose number
// matches the prefix for the current year and returns the next one in the
// sequence. Sequences restart every calendar year.
func nextDocumentNumber(app *pocketbase.PocketBase, collection, prefix string, now time.Time) string {
	year := now.Year()
	yearPrefix := fmt.Sprintf("%s-%d-", prefix, year)

	existing, err := app.FindRecordsByFilter(
		collection,
		"number ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{"prefix": yearPrefix + "%"},
	)
	if err != nil {
		existing = nil
	}

	return formatDocumentNumber(prefix, year, len(existing)+1)
}

// GenerateBudgetNumber creates the next budget number, format ORC-{year}-{seq}.
func GenerateBudgetNumber(app *pocketbase.PocketBase, now time.Time) string {
	return nextDocumentNumber(app, "budgets", "ORC", now)
}

// GenerateOrderNumber creates the next service-order number, format OS-{year}-{seq}.
func GenerateOrderNumber(app *pocketbase.PocketBase, now time.Time) string {
	return nextDocumentNumber(app, "service_orders", "OS", now)
}
