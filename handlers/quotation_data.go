package handlers

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"warpmanager/services"
	"warpmanager/templates"
)

// loadQuotationItems returns the quotation's item records sorted by
// sort_order, together with the pricing inputs built from them.
func loadQuotationItems(app *pocketbase.PocketBase, quotationID string) ([]*core.Record, []services.ItemInput, error) {
	records, err := app.FindRecordsByFilter(
		"quotation_items",
		"quotation = {:quotation}",
		"sort_order",
		0, 0,
		map[string]any{"quotation": quotationID},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("could not query quotation items: %w", err)
	}

	inputs := make([]services.ItemInput, 0, len(records))
	for _, rec := range records {
		inputs = append(inputs, itemInputFromRecord(rec))
	}
	return records, inputs, nil
}

// itemInputFromRecord converts a stored quotation item into a pricing input.
// profit_percent is kept as text so an empty string can mean "use the
// quotation's global percent".
func itemInputFromRecord(rec *core.Record) services.ItemInput {
	return services.ItemInput{
		Description:   rec.GetString("description"),
		Supplier:      rec.GetString("supplier"),
		Quantity:      rec.GetFloat("quantity"),
		UnitCost:      rec.GetFloat("unit_cost"),
		ProfitPercent: services.ParseOptionalPercent(rec.GetString("profit_percent")),
		ZeroCost:      rec.GetBool("zero_cost"),
		UnitSalePrice: rec.GetFloat("unit_sale_price"),
	}
}

// buildQuotationEditData assembles the full edit screen data for a
// quotation: the priced item rows and the recalculated totals.
func buildQuotationEditData(app *pocketbase.PocketBase, quotation *core.Record) (templates.QuotationEditData, error) {
	records, inputs, err := loadQuotationItems(app, quotation.Id)
	if err != nil {
		return templates.QuotationEditData{}, err
	}

	globalPercent := quotation.GetFloat("global_profit_percent")
	priced := services.PriceItems(inputs, globalPercent)

	data := templates.QuotationEditData{
		ID:            quotation.Id,
		Name:          quotation.GetString("name"),
		GlobalPercent: globalPercent,
		Status:        quotation.GetString("status"),
		Totals:        services.CalcQuotationTotals(priced),
		Errors:        make(map[string]string),
	}
	for i, rec := range records {
		data.Items = append(data.Items, templates.QuotationItemRow{
			ID:     rec.Id,
			Priced: priced[i],
		})
	}
	return data, nil
}
