package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"warpmanager/testhelpers"
)

func TestHandleQuotationItemAdd_PricesNewLine(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quotation := testhelpers.CreateTestQuotation(t, app, "Alarme residência", 40)

	handler := HandleQuotationItemAdd(app)

	form := url.Values{}
	form.Set("description", "Sensor de presença")
	form.Set("supplier", "Distribuidora XYZ")
	form.Set("quantity", "3")
	form.Set("unit_cost", "50")
	form.Set("profit_percent", "10")

	req := httptest.NewRequest(http.MethodPost, "/quotations/"+quotation.Id+"/items", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", quotation.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	// qty 3 at cost 50 with the 10% override: unit sale 55, total cost
	// 150, total sale 165, profit 15.
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Sensor de presença",
		"R$ 55,00",
		"R$ 150,00",
		"R$ 165,00",
		"R$ 15,00",
	)

	records, err := app.FindRecordsByFilter("quotation_items", "quotation = {:q}", "", 0, 0, map[string]any{"q": quotation.Id})
	if err != nil || len(records) != 1 {
		t.Fatalf("expected 1 saved item, got %d (err %v)", len(records), err)
	}
	if got := records[0].GetString("profit_percent"); got != "10" {
		t.Errorf("expected profit_percent to stay %q, got %q", "10", got)
	}
}

func TestHandleQuotationItemAdd_ZeroCostLine(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quotation := testhelpers.CreateTestQuotation(t, app, "Instalação portaria", 40)

	handler := HandleQuotationItemAdd(app)

	form := url.Values{}
	form.Set("description", "Mão de obra")
	form.Set("quantity", "1")
	form.Set("unit_cost", "80")
	form.Set("zero_cost", "on")
	form.Set("unit_sale_price", "600")

	req := httptest.NewRequest(http.MethodPost, "/quotations/"+quotation.Id+"/items", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", quotation.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	// Zero-cost line: the stored sale price wins, cost drops out and the
	// whole sale amount is profit.
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Mão de obra",
		"R$ 600,00",
		"R$ 0,00",
	)
}

func TestHandleQuotationItemAdd_RequiresDescription(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quotation := testhelpers.CreateTestQuotation(t, app, "Sem descrição", 40)

	handler := HandleQuotationItemAdd(app)

	form := url.Values{}
	form.Set("quantity", "1")
	form.Set("unit_cost", "10")

	req := httptest.NewRequest(http.MethodPost, "/quotations/"+quotation.Id+"/items", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", quotation.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}

	records, _ := app.FindRecordsByFilter("quotation_items", "quotation = {:q}", "", 0, 0, map[string]any{"q": quotation.Id})
	if len(records) != 0 {
		t.Errorf("expected no item to be saved, got %d", len(records))
	}
}

func TestHandleQuotationItemUpdate_ChangesOnlySubmittedFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quotation := testhelpers.CreateTestQuotation(t, app, "Ajuste fino", 40)
	item := testhelpers.CreateTestQuotationItem(t, app, quotation.Id, 0, testhelpers.QuotationItemSpec{
		Description: "DVR 8 canais",
		Supplier:    "Fornecedor A",
		Quantity:    1,
		UnitCost:    650,
	})

	handler := HandleQuotationItemUpdate(app)

	form := url.Values{}
	form.Set("quantity", "2")

	req := httptest.NewRequest(http.MethodPatch, "/quotations/"+quotation.Id+"/items/"+item.Id, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", quotation.Id)
	req.SetPathValue("itemId", item.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	updated, err := app.FindRecordById("quotation_items", item.Id)
	if err != nil {
		t.Fatalf("could not reload item: %v", err)
	}
	if got := updated.GetFloat("quantity"); got != 2 {
		t.Errorf("expected quantity 2, got %v", got)
	}
	if got := updated.GetString("description"); got != "DVR 8 canais" {
		t.Errorf("expected description untouched, got %q", got)
	}
	if got := updated.GetString("supplier"); got != "Fornecedor A" {
		t.Errorf("expected supplier untouched, got %q", got)
	}
}

func TestHandleQuotationItemUpdate_RejectsForeignItem(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	mine := testhelpers.CreateTestQuotation(t, app, "Minha cotação", 40)
	other := testhelpers.CreateTestQuotation(t, app, "Outra cotação", 40)
	item := testhelpers.CreateTestQuotationItem(t, app, other.Id, 0, testhelpers.QuotationItemSpec{
		Description: "Item alheio",
		Quantity:    1,
		UnitCost:    10,
	})

	handler := HandleQuotationItemUpdate(app)

	form := url.Values{}
	form.Set("quantity", "99")

	req := httptest.NewRequest(http.MethodPatch, "/quotations/"+mine.Id+"/items/"+item.Id, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", mine.Id)
	req.SetPathValue("itemId", item.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}

	untouched, _ := app.FindRecordById("quotation_items", item.Id)
	if got := untouched.GetFloat("quantity"); got != 1 {
		t.Errorf("expected quantity untouched, got %v", got)
	}
}

func TestHandleQuotationItemDelete_UpdatesTotals(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quotation := testhelpers.CreateTestQuotation(t, app, "Com dois itens", 40)
	keep := testhelpers.CreateTestQuotationItem(t, app, quotation.Id, 0, testhelpers.QuotationItemSpec{
		Description: "Fica",
		Quantity:    2,
		UnitCost:    100,
	})
	remove := testhelpers.CreateTestQuotationItem(t, app, quotation.Id, 1, testhelpers.QuotationItemSpec{
		Description: "Sai",
		Quantity:    1,
		UnitCost:    1000,
	})

	handler := HandleQuotationItemDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/quotations/"+quotation.Id+"/items/"+remove.Id, nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", quotation.Id)
	req.SetPathValue("itemId", remove.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if _, err := app.FindRecordById("quotation_items", remove.Id); err == nil {
		t.Error("expected item to be deleted, but it still exists")
	}
	if _, err := app.FindRecordById("quotation_items", keep.Id); err != nil {
		t.Error("expected remaining item to survive")
	}

	// Only the surviving line feeds the totals now.
	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Fica", "R$ 280,00")
	if strings.Contains(body, "Sai") {
		t.Error("expected deleted line to be gone from the rendered section")
	}
}
