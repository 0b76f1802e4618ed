package handlers

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"warpmanager/testhelpers"
)

func TestHandleQuotationConvert_CreatesBudgetWithProducts(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quotation := testhelpers.CreateTestQuotation(t, app, "CFTV portaria", 40)
	testhelpers.CreateTestQuotationItem(t, app, quotation.Id, 0, testhelpers.QuotationItemSpec{
		Description: "Câmera dome",
		Quantity:    2,
		UnitCost:    100,
	})
	testhelpers.CreateTestQuotationItem(t, app, quotation.Id, 1, testhelpers.QuotationItemSpec{
		Description:   "Mão de obra",
		Quantity:      1,
		UnitCost:      80,
		ZeroCost:      true,
		UnitSalePrice: 600,
	})

	handler := HandleQuotationConvert(app)

	req := httptest.NewRequest(http.MethodPost, "/quotations/"+quotation.Id+"/convert", nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", quotation.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	budgets, err := app.FindRecordsByFilter("budgets", "id != ''", "", 0, 0, nil)
	if err != nil || len(budgets) != 1 {
		t.Fatalf("expected 1 budget, got %d (err %v)", len(budgets), err)
	}
	budget := budgets[0]

	wantPrefix := "ORC-" + time.Now().Format("2006") + "-"
	if number := budget.GetString("number"); !strings.HasPrefix(number, wantPrefix) {
		t.Errorf("expected number prefixed %q, got %q", wantPrefix, number)
	}
	if got := budget.GetString("status"); got != "open" {
		t.Errorf("expected status open, got %q", got)
	}
	if got := budget.GetString("source_quotation"); got != quotation.Id {
		t.Errorf("expected source_quotation %q, got %q", quotation.Id, got)
	}

	products, err := app.FindRecordsByFilter("budget_products", "budget = {:b}", "sort_order", 0, 0, map[string]any{"b": budget.Id})
	if err != nil || len(products) != 2 {
		t.Fatalf("expected 2 products, got %d (err %v)", len(products), err)
	}

	// The customer document carries only unit sale prices, never costs
	// or margins.
	first := products[0]
	if got := first.GetString("description"); got != "Câmera dome" {
		t.Errorf("expected first product description, got %q", got)
	}
	if got := first.GetString("unit"); got != "UN" {
		t.Errorf("expected unit UN, got %q", got)
	}
	if got := first.GetFloat("unit_price"); math.Abs(got-140) > 0.001 {
		t.Errorf("expected unit price 140, got %v", got)
	}

	second := products[1]
	if got := second.GetFloat("unit_price"); math.Abs(got-600) > 0.001 {
		t.Errorf("expected zero-cost line priced at 600, got %v", got)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/budgets/"+budget.Id)
}

func TestHandleQuotationConvert_CopiesClientSnapshot(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Condomínio das Flores")
	quotation := testhelpers.CreateTestQuotation(t, app, "Interfone", 40)
	quotation.Set("client", client.Id)
	if err := app.Save(quotation); err != nil {
		t.Fatalf("could not link client: %v", err)
	}
	testhelpers.CreateTestQuotationItem(t, app, quotation.Id, 0, testhelpers.QuotationItemSpec{
		Description: "Central de interfone",
		Quantity:    1,
		UnitCost:    300,
	})

	handler := HandleQuotationConvert(app)

	req := httptest.NewRequest(http.MethodPost, "/quotations/"+quotation.Id+"/convert", nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", quotation.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	budgets, _ := app.FindRecordsByFilter("budgets", "id != ''", "", 0, 0, nil)
	if len(budgets) != 1 {
		t.Fatalf("expected 1 budget, got %d", len(budgets))
	}
	if got := budgets[0].GetString("client_name"); got != "Condomínio das Flores" {
		t.Errorf("expected client name snapshot, got %q", got)
	}
	if got := budgets[0].GetString("client_phone"); got != "(31) 90000-0000" {
		t.Errorf("expected client phone snapshot, got %q", got)
	}
}

func TestHandleQuotationConvert_RejectsEmptyWorksheet(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quotation := testhelpers.CreateTestQuotation(t, app, "Vazia", 40)

	handler := HandleQuotationConvert(app)

	req := httptest.NewRequest(http.MethodPost, "/quotations/"+quotation.Id+"/convert", nil)
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

	budgets, _ := app.FindRecordsByFilter("budgets", "id != ''", "", 0, 0, nil)
	if len(budgets) != 0 {
		t.Errorf("expected no budget for an empty quotation, got %d", len(budgets))
	}
}

func TestHandleQuotationConvert_SequentialNumbers(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	for i, name := range []string{"Primeira", "Segunda"} {
		quotation := testhelpers.CreateTestQuotation(t, app, name, 40)
		testhelpers.CreateTestQuotationItem(t, app, quotation.Id, 0, testhelpers.QuotationItemSpec{
			Description: "Item",
			Quantity:    1,
			UnitCost:    100,
		})

		req := httptest.NewRequest(http.MethodPost, "/quotations/"+quotation.Id+"/convert", nil)
		req.Header.Set("HX-Request", "true")
		req.SetPathValue("id", quotation.Id)
		rec := httptest.NewRecorder()

		if err := HandleQuotationConvert(app)(newTestRequestEvent(app, req, rec)); err != nil {
			t.Fatalf("convert %d returned error: %v", i, err)
		}
	}

	year := time.Now().Format("2006")
	budgets, _ := app.FindRecordsByFilter("budgets", "id != ''", "number", 0, 0, nil)
	if len(budgets) != 2 {
		t.Fatalf("expected 2 budgets, got %d", len(budgets))
	}
	if got := budgets[0].GetString("number"); got != "ORC-"+year+"-001" {
		t.Errorf("expected first number ORC-%s-001, got %q", year, got)
	}
	if got := budgets[1].GetString("number"); got != "ORC-"+year+"-002" {
		t.Errorf("expected second number ORC-%s-002, got %q", year, got)
	}
}
