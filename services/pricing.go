// Package services provides the pricing, conversion and export logic for
// quotations, budgets and service orders.
package services

// ItemInput holds the user-entered fields of one quotation line. Derived
// figures are never stored; they are recomputed from these inputs on every
// change (see PriceItems).
type ItemInput struct {
	Description string
	Supplier    string
	Quantity    float64
	UnitCost    float64
	// ProfitPercent overrides the quotation's global profit percent when set.
	ProfitPercent *float64
	// ZeroCost marks the line as "custo zerado": its cost contribution is
	// forced to zero and the whole sale price counts as profit.
	ZeroCost bool
	// UnitSalePrice is the last sale price entered for the line. It is only
	// authoritative in zero-cost mode; in normal mode it is recomputed.
	UnitSalePrice float64
}

// PricedItem is an ItemInput plus its derived figures.
type PricedItem struct {
	ItemInput
	EffectivePercent float64
	UnitSalePrice    float64
	TotalCost        float64
	TotalSalePrice   float64
	Profit           float64
}

// zeroCostSalePrice resolves the authoritative unit sale price of a
// zero-cost line: the previously entered sale price when one exists,
// otherwise the unit cost.
func zeroCostSalePrice(in ItemInput) float64 {
	if in.UnitSalePrice > 0 {
		return in.UnitSalePrice
	}
	return in.UnitCost
}

// PriceItem derives the cost, margin and sale figures of a single line.
// It is pure and idempotent: the same inputs always produce the same
// PricedItem.
func PriceItem(in ItemInput, globalPercent float64) PricedItem {
	out := PricedItem{ItemInput: in}

	if in.ZeroCost {
		out.UnitSalePrice = zeroCostSalePrice(in)
		out.TotalCost = 0
		out.TotalSalePrice = out.UnitSalePrice * in.Quantity
		out.Profit = out.TotalSalePrice
		return out
	}

	pct := globalPercent
	if in.ProfitPercent != nil {
		pct = *in.ProfitPercent
	}
	out.EffectivePercent = pct
	out.TotalCost = in.UnitCost * in.Quantity
	out.UnitSalePrice = in.UnitCost * (1 + pct/100)
	out.TotalSalePrice = out.UnitSalePrice * in.Quantity
	out.Profit = out.TotalSalePrice - out.TotalCost
	return out
}

// PriceItems reprices the whole item list. Handlers call it after any edit
// to any line or to the global percent, so lines that depend on the global
// percent never go stale.
func PriceItems(items []ItemInput, globalPercent float64) []PricedItem {
	priced := make([]PricedItem, len(items))
	for i, in := range items {
		priced[i] = PriceItem(in, globalPercent)
	}
	return priced
}

// QuotationTotals holds the aggregate figures of a quotation.
type QuotationTotals struct {
	TotalCost      float64
	TotalSalePrice float64
	TotalProfit    float64
}

// CalcQuotationTotals sums the derived figures of all lines. Totals are
// always view-derived, never mutated independently of the items.
func CalcQuotationTotals(items []PricedItem) QuotationTotals {
	var totals QuotationTotals
	for _, item := range items {
		totals.TotalCost += item.TotalCost
		totals.TotalSalePrice += item.TotalSalePrice
	}
	totals.TotalProfit = totals.TotalSalePrice - totals.TotalCost
	return totals
}
