package services

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateReportHTML_Structure(t *testing.T) {
	out := string(GenerateReportHTML(sampleReportData()))

	for _, fragment := range []string{
		"<!DOCTYPE html>",
		"<h2>Orçamentos</h2>",
		"<h2>Ordens de serviço</h2>",
		"ORC-2026-001",
		"OS-2026-003",
		"Condomínio Sol Nascente",
		"Manutenção corretiva - Alarme",
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("HTML report missing %q", fragment)
		}
	}
}

func TestGenerateReportHTML_LocalizedFormatting(t *testing.T) {
	out := string(GenerateReportHTML(sampleReportData()))

	if !strings.Contains(out, "R$ 140,00") {
		t.Error("unit price not formatted as BRL currency")
	}
	if !strings.Contains(out, "12/08/2026") {
		t.Error("issue date not formatted as dd/mm/yyyy")
	}
	if !strings.Contains(out, "Aberto") {
		t.Error("budget status not rendered with its pt-BR label")
	}
}

func TestGenerateReportHTML_EscapesFreeText(t *testing.T) {
	data := ReportData{
		Budgets: []ReportBudget{
			{
				Number:     "ORC-2026-004",
				ClientName: `<script>alert("x")</script>`,
				Status:     BudgetStatusOpen,
				Products: []ReportProduct{
					{Description: "a <b> & c", Quantity: 1, Unit: "UN", UnitPrice: 1, Total: 1},
				},
			},
		},
		Orders: []ReportOrder{
			{Number: "OS-2026-004", ClientName: "ok", Technician: "<img src=x>"},
		},
	}

	out := string(GenerateReportHTML(data))

	if strings.Contains(out, "<script>") {
		t.Error("client name was interpolated without escaping")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Error("expected escaped script tag in output")
	}
	if !strings.Contains(out, "a &lt;b&gt; &amp; c") {
		t.Error("product description not escaped")
	}
	if strings.Contains(out, "<img src=x>") {
		t.Error("technician field was interpolated without escaping")
	}
}

func TestGenerateReportHTML_GeneratedDate(t *testing.T) {
	data := ReportData{GeneratedAt: time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)}
	out := string(GenerateReportHTML(data))
	if !strings.Contains(out, "Gerado em 30/08/2026") {
		t.Error("generated-at date missing from report header")
	}
}
