package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"warpmanager/testhelpers"
)

func TestHandleBudgetExportPDF_ReturnsDocument(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	budget := testhelpers.CreateTestBudget(t, app, "ORC-2026-001", "Condomínio Exemplo")
	testhelpers.CreateTestBudgetProduct(t, app, budget.Id, 0, "Câmera dome", 2, 140)

	handler := HandleBudgetExportPDF(app)

	req := httptest.NewRequest(http.MethodGet, "/budgets/"+budget.Id+"/export/pdf", nil)
	req.SetPathValue("id", budget.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("expected Content-Type application/pdf, got %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "orcamento-ORC-2026-001.pdf") {
		t.Errorf("expected filename in Content-Disposition, got %q", got)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF-") {
		t.Error("expected response body to be a PDF document")
	}
}

func TestHandleBudgetExportPDF_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleBudgetExportPDF(app)

	req := httptest.NewRequest(http.MethodGet, "/budgets/missing/export/pdf", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}
