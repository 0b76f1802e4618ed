package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"warpmanager/services"
)

type itemDef struct {
	sortOrder     int
	description   string
	supplier      string
	quantity      float64
	unitCost      float64
	profitPercent string
	zeroCost      bool
	unitSalePrice float64
}

type quotationDef struct {
	name          string
	globalPercent float64
	status        string
	items         []itemDef
}

// Seed creates a demo client and quotation the first time the app starts,
// so new installs have something to open. It is a no-op once any client
// exists.
func Seed(app *pocketbase.PocketBase) error {
	existing, err := app.FindRecordsByFilter("clients", "id != ''", "", 1, 0, nil)
	if err != nil {
		return fmt.Errorf("seed: check clients: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	clientsCol, err := app.FindCollectionByNameOrId("clients")
	if err != nil {
		return fmt.Errorf("seed: clients collection: %w", err)
	}

	client := core.NewRecord(clientsCol)
	client.Set("name", "Condomínio Exemplo")
	client.Set("phone", "(31) 99999-0000")
	client.Set("address", "Av. Principal, 1000")
	client.Set("city", "Belo Horizonte")
	if err := app.Save(client); err != nil {
		return fmt.Errorf("seed: save client: %w", err)
	}

	demo := quotationDef{
		name:          "CFTV portaria - Condomínio Exemplo",
		globalPercent: 40,
		status:        services.QuotationStatusInQuotation,
		items: []itemDef{
			{sortOrder: 1, description: "Câmera dome 2MP", supplier: "Distribuidora A", quantity: 4, unitCost: 180},
			{sortOrder: 2, description: "DVR 8 canais", supplier: "Distribuidora A", quantity: 1, unitCost: 650},
			{sortOrder: 3, description: "Cabo coaxial (metro)", supplier: "Distribuidora B", quantity: 100, unitCost: 2.2, profitPercent: "25"},
			{sortOrder: 4, description: "Mão de obra de instalação", quantity: 1, unitCost: 0, zeroCost: true, unitSalePrice: 600},
		},
	}

	quotationsCol, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		return fmt.Errorf("seed: quotations collection: %w", err)
	}

	quotation := core.NewRecord(quotationsCol)
	quotation.Set("name", demo.name)
	quotation.Set("client", client.Id)
	quotation.Set("global_profit_percent", demo.globalPercent)
	quotation.Set("status", demo.status)
	if err := app.Save(quotation); err != nil {
		return fmt.Errorf("seed: save quotation: %w", err)
	}

	itemsCol, err := app.FindCollectionByNameOrId("quotation_items")
	if err != nil {
		return fmt.Errorf("seed: quotation_items collection: %w", err)
	}

	for _, def := range demo.items {
		item := core.NewRecord(itemsCol)
		item.Set("quotation", quotation.Id)
		item.Set("sort_order", def.sortOrder)
		item.Set("description", def.description)
		item.Set("supplier", def.supplier)
		item.Set("quantity", def.quantity)
		item.Set("unit_cost", def.unitCost)
		item.Set("profit_percent", def.profitPercent)
		item.Set("zero_cost", def.zeroCost)
		item.Set("unit_sale_price", def.unitSalePrice)
		if err := app.Save(item); err != nil {
			return fmt.Errorf("seed: save item %q: %w", def.description, err)
		}
	}

	return nil
}
