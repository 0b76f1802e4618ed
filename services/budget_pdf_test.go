package services

import (
	"testing"
)

func TestGenerateBudgetPDF(t *testing.T) {
	data := BudgetDocumentData{
		Number:        "ORC-2026-001",
		StatusLabel:   "Aberto",
		IssueDate:     "12/08/2026",
		ClientName:    "Condomínio Sol Nascente",
		ClientPhone:   "(31) 98888-7777",
		ClientAddress: "Rua das Acácias, 120",
		Products: []BudgetProduct{
			{Description: "Câmera dome", Quantity: 4, Unit: "UN", UnitPrice: 140, Total: 560},
			{Description: "Instalação", Quantity: 1, Unit: "UN", UnitPrice: 300, Total: 300},
		},
		Total:        860,
		PaymentTerms: "50% na aprovação, 50% na entrega",
		Warranty:     "12 meses",
	}

	result, err := GenerateBudgetPDF(data)
	if err != nil {
		t.Fatalf("GenerateBudgetPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateBudgetPDF() returned empty bytes")
	}
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGenerateBudgetPDF_NoProducts(t *testing.T) {
	data := BudgetDocumentData{
		Number:     "ORC-2026-002",
		ClientName: "Cliente Sem Itens",
		IssueDate:  "01/01/2026",
	}

	result, err := GenerateBudgetPDF(data)
	if err != nil {
		t.Fatalf("GenerateBudgetPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateBudgetPDF() returned empty bytes")
	}
}

func TestFormatQty(t *testing.T) {
	tests := []struct {
		input  float64
		expect string
	}{
		{4, "4"},
		{100, "100"},
		{2.5, "2.50"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := formatQty(tt.input); got != tt.expect {
			t.Errorf("formatQty(%v) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}
