package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"warpmanager/templates"
	"warpmanager/testhelpers"
)

func TestGetNavData_FromContext(t *testing.T) {
	expected := templates.NavData{ClientCount: 3, QuotationCount: 1}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), NavDataKey, expected)
	req = req.WithContext(ctx)

	got := GetNavData(req)
	if got.ClientCount != 3 {
		t.Errorf("expected ClientCount 3, got %d", got.ClientCount)
	}
	if got.QuotationCount != 1 {
		t.Errorf("expected QuotationCount 1, got %d", got.QuotationCount)
	}
}

func TestGetNavData_NotInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	got := GetNavData(req)
	if got.ClientCount != 0 || got.BudgetCount != 0 {
		t.Errorf("expected zero counts, got %+v", got)
	}
}

func TestCountRecords(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestClient(t, app, "Um")
	testhelpers.CreateTestClient(t, app, "Dois")

	if got := countRecords(app, "clients"); got != 2 {
		t.Errorf("expected 2 clients, got %d", got)
	}
	if got := countRecords(app, "budgets"); got != 0 {
		t.Errorf("expected 0 budgets, got %d", got)
	}
}
