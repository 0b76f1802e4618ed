package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/pocketbase/pocketbase"
)

// Company block printed on every budget document.
const (
	companyName    = "Warp Segurança Eletrônica"
	companyTagline = "Alarmes, CFTV, cercas elétricas e controle de acesso"
	companyPhone   = "(31) 3333-0000"
)

// BudgetDocumentData holds everything the client-facing budget PDF renders.
type BudgetDocumentData struct {
	Number         string
	StatusLabel    string
	IssueDate      string
	ClientName     string
	ClientDocument string
	ClientPhone    string
	ClientAddress  string
	Products       []BudgetProduct
	Total          float64
	PaymentTerms   string
	Warranty       string
	Notes          string
}

// BuildBudgetDocumentData assembles the PDF data from a persisted budget
// and its product lines.
func BuildBudgetDocumentData(app *pocketbase.PocketBase, budgetID string) (*BudgetDocumentData, error) {
	budget, err := app.FindRecordById("budgets", budgetID)
	if err != nil {
		return nil, fmt.Errorf("budget not found: %w", err)
	}

	data := &BudgetDocumentData{
		Number:         budget.GetString("number"),
		StatusLabel:    BudgetStatusLabel(budget.GetString("status")),
		IssueDate:      FormatDateBR(budget.GetDateTime("issue_date").Time()),
		ClientName:     budget.GetString("client_name"),
		ClientDocument: budget.GetString("client_document"),
		ClientPhone:    budget.GetString("client_phone"),
		ClientAddress:  budget.GetString("client_address"),
		PaymentTerms:   budget.GetString("payment_terms"),
		Warranty:       budget.GetString("warranty"),
		Notes:          budget.GetString("notes"),
	}

	products, err := app.FindRecordsByFilter(
		"budget_products",
		"budget = {:budgetId}",
		"sort_order",
		0,
		0,
		map[string]any{"budgetId": budgetID},
	)
	if err != nil {
		return nil, fmt.Errorf("fetch products of budget %s: %w", budgetID, err)
	}

	for _, p := range products {
		qty := p.GetFloat("quantity")
		unitPrice := p.GetFloat("unit_price")
		product := BudgetProduct{
			Description: p.GetString("description"),
			Quantity:    qty,
			Unit:        p.GetString("unit"),
			UnitPrice:   unitPrice,
			Total:       qty * unitPrice,
		}
		data.Products = append(data.Products, product)
		data.Total += product.Total
	}

	return data, nil
}

// GenerateBudgetPDF renders the client-facing budget document using maroto/v2.
func GenerateBudgetPDF(data BudgetDocumentData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addBudgetHeader(m, data)
	addClientBlock(m, data)
	addProductTableHeader(m)
	for _, p := range data.Products {
		addProductRow(m, p)
	}
	addBudgetTotal(m, data)
	addBudgetTerms(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

func addBudgetHeader(m core.Maroto, data BudgetDocumentData) {
	m.AddRows(
		row.New(10).Add(
			col.New(8).Add(
				text.New(companyName, props.Text{
					Size:  15,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(4).Add(
				text.New("Orçamento "+data.Number, props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(
		row.New(6).Add(
			col.New(8).Add(
				text.New(companyTagline+"  •  "+companyPhone, props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 90, Green: 90, Blue: 90},
				}),
			),
			col.New(4).Add(
				text.New("Emitido em "+data.IssueDate, props.Text{
					Size:  8,
					Align: align.Right,
					Color: &props.Color{Red: 90, Green: 90, Blue: 90},
				}),
			),
		),
	)

	m.AddRows(row.New(3).Add(col.New(12).Add(line.New())))
	m.AddRows(row.New(3))
}

func addClientBlock(m core.Maroto, data BudgetDocumentData) {
	labelText := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}
	valueText := props.Text{Size: 9, Align: align.Left}

	m.AddRows(
		row.New(6).Add(
			col.New(2).Add(text.New("Cliente", labelText)),
			col.New(6).Add(text.New(data.ClientName, valueText)),
			col.New(2).Add(text.New("CPF/CNPJ", labelText)),
			col.New(2).Add(text.New(data.ClientDocument, valueText)),
		),
	)
	m.AddRows(
		row.New(6).Add(
			col.New(2).Add(text.New("Endereço", labelText)),
			col.New(6).Add(text.New(data.ClientAddress, valueText)),
			col.New(2).Add(text.New("Telefone", labelText)),
			col.New(2).Add(text.New(data.ClientPhone, valueText)),
		),
	)
	m.AddRows(row.New(4))
}

func addProductTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New("Descrição", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Qtd.", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Un.", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Preço unit.", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Total", headerText),
			).WithStyle(&headerCell),
		),
	)
}

func addProductRow(m core.Maroto, p BudgetProduct) {
	baseText := props.Text{Size: 8, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(p.Description, leftText)),
			col.New(1).Add(text.New(formatQty(p.Quantity), rightText)),
			col.New(1).Add(text.New(p.Unit, baseText)),
			col.New(2).Add(text.New(FormatBRL(p.UnitPrice), rightText)),
			col.New(2).Add(text.New(FormatBRL(p.Total), rightText)),
		),
	)
}

func addBudgetTotal(m core.Maroto, data BudgetDocumentData) {
	totalBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	totalCell := &props.Cell{BackgroundColor: totalBg}

	m.AddRows(row.New(4))
	m.AddRows(
		row.New(9).Add(
			col.New(8).Add(
				text.New("Valor total", props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			).WithStyle(totalCell),
			col.New(4).Add(
				text.New(FormatBRL(data.Total), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			).WithStyle(totalCell),
		),
	)
}

func addBudgetTerms(m core.Maroto, data BudgetDocumentData) {
	labelText := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}
	valueText := props.Text{Size: 8, Align: align.Left}

	terms := []struct {
		label string
		value string
	}{
		{"Condições de pagamento", data.PaymentTerms},
		{"Garantia", data.Warranty},
		{"Observações", data.Notes},
	}

	m.AddRows(row.New(5))
	for _, term := range terms {
		if term.value == "" {
			continue
		}
		m.AddRows(
			row.New(6).Add(
				col.New(3).Add(text.New(term.label, labelText)),
				col.New(9).Add(text.New(term.value, valueText)),
			),
		)
	}
}

// formatQty renders a quantity without trailing zeros: whole numbers plain,
// fractional quantities with 2 decimals.
func formatQty(q float64) string {
	if q == float64(int64(q)) {
		return fmt.Sprintf("%d", int64(q))
	}
	return fmt.Sprintf("%.2f", q)
}
