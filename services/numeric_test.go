package services

import (
	"math"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect float64
	}{
		{"plain integer", "10", 10},
		{"decimal point", "1234.56", 1234.56},
		{"decimal comma", "1234,56", 1234.56},
		{"empty string", "", 0},
		{"whitespace only", "   ", 0},
		{"garbage", "abc", 0},
		{"mixed garbage", "12abc", 0},
		{"negative passes through", "-5", -5},
		{"NaN spelling rejected", "NaN", 0},
		{"lowercase nan rejected", "nan", 0},
		{"Inf spelling rejected", "Inf", 0},
		{"negative infinity rejected", "-inf", 0},
		{"overflowing exponent rejected", "1e999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAmount(tt.input); got != tt.expect {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}

func TestParseAmount_NeverNaN(t *testing.T) {
	for _, input := range []string{"", "NaN", "nan", "x", "1.2.3", "--", "+Inf", "-Inf", "infinity"} {
		got := ParseAmount(input)
		if got != got { // NaN is the only value not equal to itself
			t.Errorf("ParseAmount(%q) produced NaN", input)
		}
		if math.IsInf(got, 0) {
			t.Errorf("ParseAmount(%q) produced an infinity", input)
		}
	}
}

func TestParseAmount_NaNInputNeverReachesTotals(t *testing.T) {
	items := PriceItems([]ItemInput{
		{Description: "Typed garbage", Quantity: ParseAmount("NaN"), UnitCost: ParseAmount("Inf")},
		{Description: "Fine line", Quantity: 2, UnitCost: 100},
	}, 40)

	totals := CalcQuotationTotals(items)

	if totals.TotalCost != totals.TotalCost || math.IsInf(totals.TotalSalePrice, 0) {
		t.Fatalf("totals contaminated by garbage input: %+v", totals)
	}
	if math.Abs(totals.TotalSalePrice-280) > 0.001 {
		t.Errorf("TotalSalePrice = %v, want 280 from the valid line alone", totals.TotalSalePrice)
	}
}

func TestParseOptionalPercent(t *testing.T) {
	if got := ParseOptionalPercent(""); got != nil {
		t.Errorf("empty input should mean no override, got %v", *got)
	}
	if got := ParseOptionalPercent("  "); got != nil {
		t.Errorf("blank input should mean no override, got %v", *got)
	}
	if got := ParseOptionalPercent("15"); got == nil || *got != 15 {
		t.Errorf("ParseOptionalPercent(\"15\") = %v, want 15", got)
	}
	if got := ParseOptionalPercent("junk"); got == nil || *got != 0 {
		t.Errorf("unparsable override should coerce to 0, got %v", got)
	}
}
