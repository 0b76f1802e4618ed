package services

// DefaultProductUnit is used for products created from quotation lines;
// quotations carry no unit-of-measure concept.
const DefaultProductUnit = "UN"

// BudgetProduct is one product line of a budget. Budgets only expose the
// final unit price; the cost/margin breakdown of the source quotation is
// not visible downstream.
type BudgetProduct struct {
	Description string
	Quantity    float64
	Unit        string
	UnitPrice   float64
	Total       float64
}

// BudgetConversion is what the budget-creation screen receives when a
// quotation is converted.
type BudgetConversion struct {
	GlobalProfitPercent float64
	Products            []BudgetProduct
}

// BudgetProductsFromQuotation restates priced quotation lines as budget
// products. The mapping is one-way and non-destructive: the source
// quotation is not touched and no margin recomputation happens here.
// The unit price is exactly the unit sale price the calculator already
// derived, including the zero-cost fallback.
func BudgetProductsFromQuotation(items []PricedItem) []BudgetProduct {
	products := make([]BudgetProduct, len(items))
	for i, item := range items {
		products[i] = BudgetProduct{
			Description: item.Description,
			Quantity:    item.Quantity,
			Unit:        DefaultProductUnit,
			UnitPrice:   item.UnitSalePrice,
			Total:       item.UnitSalePrice * item.Quantity,
		}
	}
	return products
}

// ConvertQuotation bundles the converted product lines with the margin the
// quotation was priced at.
func ConvertQuotation(items []PricedItem, globalPercent float64) BudgetConversion {
	return BudgetConversion{
		GlobalProfitPercent: globalPercent,
		Products:            BudgetProductsFromQuotation(items),
	}
}
