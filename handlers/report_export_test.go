package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"warpmanager/testhelpers"
)

func TestHandleReportExportCSV_DownloadsReport(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	budget := testhelpers.CreateTestBudget(t, app, "ORC-2026-001", "Condomínio Exemplo")
	testhelpers.CreateTestBudgetProduct(t, app, budget.Id, 0, "Câmera dome", 2, 140)
	testhelpers.CreateTestServiceOrder(t, app, "OS-2026-001", "Loja Centro")

	handler := HandleReportExportCSV(app)

	req := httptest.NewRequest(http.MethodGet, "/reports/export/csv", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if got := rec.Header().Get("Content-Type"); got != "text/csv; charset=utf-8" {
		t.Errorf("expected CSV content type, got %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "relatorio-completo-") {
		t.Errorf("expected report filename in Content-Disposition, got %q", got)
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, "\xEF\xBB\xBF") {
		t.Error("expected CSV to start with the UTF-8 BOM")
	}
	testhelpers.AssertHTMLContains(t, body,
		`"ORC-2026-001"`,
		`"Câmera dome"`,
		`"OS-2026-001"`,
		`"N/A"`,
	)
}

func TestHandleReportExportHTML_DownloadsReport(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestBudget(t, app, "ORC-2026-002", "Residencial Alfa")

	handler := HandleReportExportHTML(app)

	req := httptest.NewRequest(http.MethodGet, "/reports/export/html", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "relatorio-warp-") {
		t.Errorf("expected report filename in Content-Disposition, got %q", got)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"<!DOCTYPE html>",
		"Relatório completo",
		"ORC-2026-002",
		"Residencial Alfa",
	)
}

func TestHandleReportExportExcel_DownloadsWorkbook(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestBudget(t, app, "ORC-2026-003", "Loja Savassi")

	handler := HandleReportExportExcel(app)

	req := httptest.NewRequest(http.MethodGet, "/reports/export/excel", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if got := rec.Header().Get("Content-Type"); got != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("expected xlsx content type, got %q", got)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected a non-empty workbook")
	}
	// xlsx files are zip archives.
	if !strings.HasPrefix(rec.Body.String(), "PK") {
		t.Error("expected workbook bytes to start with the zip signature")
	}
}
