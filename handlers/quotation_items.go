package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"warpmanager/services"
	"warpmanager/templates"
)

// HandleQuotationItemAdd appends a line to the worksheet and answers with
// the re-rendered items section so the table and totals update in place.
func HandleQuotationItemAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")

		quotation, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Cotação não encontrada")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Formulário inválido")
		}

		description := strings.TrimSpace(e.Request.FormValue("description"))
		if description == "" {
			return ErrorToast(e, http.StatusBadRequest, "Informe a descrição do item")
		}

		existing, _, err := loadQuotationItems(app, quotationID)
		if err != nil {
			log.Printf("quotation_items: could not load items for %s: %v", quotationID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível carregar os itens")
		}

		col, err := app.FindCollectionByNameOrId("quotation_items")
		if err != nil {
			log.Printf("quotation_items: could not find quotation_items collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		record := core.NewRecord(col)
		record.Set("quotation", quotationID)
		record.Set("sort_order", len(existing))
		record.Set("description", description)
		record.Set("supplier", strings.TrimSpace(e.Request.FormValue("supplier")))
		record.Set("quantity", services.ParseAmount(e.Request.FormValue("quantity")))
		record.Set("unit_cost", services.ParseAmount(e.Request.FormValue("unit_cost")))
		record.Set("profit_percent", strings.TrimSpace(e.Request.FormValue("profit_percent")))
		record.Set("zero_cost", e.Request.FormValue("zero_cost") != "")
		record.Set("unit_sale_price", services.ParseAmount(e.Request.FormValue("unit_sale_price")))

		if err := app.Save(record); err != nil {
			log.Printf("quotation_items: could not save item: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível salvar o item")
		}

		SetToast(e, "success", "Item adicionado")
		return renderItemsSection(app, e, quotation)
	}
}

// HandleQuotationItemUpdate patches a single line in place. Only the
// submitted fields change; the whole worksheet is repriced afterwards.
func HandleQuotationItemUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		itemID := e.Request.PathValue("itemId")

		quotation, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Cotação não encontrada")
		}

		item, err := app.FindRecordById("quotation_items", itemID)
		if err != nil || item.GetString("quotation") != quotationID {
			return ErrorToast(e, http.StatusNotFound, "Item não encontrado")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Formulário inválido")
		}

		for field := range e.Request.PostForm {
			value := strings.TrimSpace(e.Request.FormValue(field))
			switch field {
			case "description":
				if value != "" {
					item.Set("description", value)
				}
			case "supplier":
				item.Set("supplier", value)
			case "quantity", "unit_cost", "unit_sale_price":
				item.Set(field, services.ParseAmount(value))
			case "profit_percent":
				item.Set("profit_percent", value)
			case "zero_cost":
				item.Set("zero_cost", value == "true" || value == "on")
			}
		}

		if err := app.Save(item); err != nil {
			log.Printf("quotation_items: could not save item %s: %v", itemID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível salvar o item")
		}

		return renderItemsSection(app, e, quotation)
	}
}

func HandleQuotationItemDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		itemID := e.Request.PathValue("itemId")

		quotation, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Cotação não encontrada")
		}

		item, err := app.FindRecordById("quotation_items", itemID)
		if err != nil || item.GetString("quotation") != quotationID {
			return ErrorToast(e, http.StatusNotFound, "Item não encontrado")
		}

		if err := app.Delete(item); err != nil {
			log.Printf("quotation_items: could not delete item %s: %v", itemID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível excluir o item")
		}

		SetToast(e, "success", "Item excluído")
		return renderItemsSection(app, e, quotation)
	}
}

func renderItemsSection(app *pocketbase.PocketBase, e *core.RequestEvent, quotation *core.Record) error {
	data, err := buildQuotationEditData(app, quotation)
	if err != nil {
		log.Printf("quotation_items: could not rebuild items for %s: %v", quotation.Id, err)
		return ErrorToast(e, http.StatusInternalServerError, "Não foi possível recarregar os itens")
	}
	return templates.QuotationItemsSection(data).Render(e.Request.Context(), e.Response)
}
