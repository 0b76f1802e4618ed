package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateReportExcel renders the bulk report as a workbook with one sheet
// for budgets and one for service orders, mirroring the CSV column sets.
func GenerateReportExcel(data ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	budgetSheet := "Orcamentos"
	orderSheet := "Ordens de Servico"

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, budgetSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	if _, err := f.NewSheet(orderSheet); err != nil {
		return nil, fmt.Errorf("create order sheet: %w", err)
	}

	// Column header style: bold, white text, charcoal background.
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	cellStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create cell style: %w", err)
	}

	// ── Budgets sheet ───────────────────────────────────────────────────

	budgetCols := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}
	budgetWidths := []float64{14, 28, 14, 12, 40, 10, 8, 14, 14}
	for i, col := range budgetCols {
		if err := f.SetColWidth(budgetSheet, col, col, budgetWidths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	budgetHeader := []string{
		"Numero", "Cliente", "Status", "Data",
		"Produto", "Quantidade", "Unidade", "Preco Unitario", "Total",
	}
	for i, h := range budgetHeader {
		cell := fmt.Sprintf("%s1", budgetCols[i])
		f.SetCellValue(budgetSheet, cell, h)
	}
	f.SetCellStyle(budgetSheet, "A1", "I1", headerStyle)

	rowNum := 2
	for _, b := range data.Budgets {
		products := b.Products
		if len(products) == 0 {
			products = []ReportProduct{{}}
		}
		for _, p := range products {
			f.SetCellValue(budgetSheet, fmt.Sprintf("A%d", rowNum), sanitizeExcelCell(b.Number))
			f.SetCellValue(budgetSheet, fmt.Sprintf("B%d", rowNum), sanitizeExcelCell(b.ClientName))
			f.SetCellValue(budgetSheet, fmt.Sprintf("C%d", rowNum), BudgetStatusLabel(b.Status))
			f.SetCellValue(budgetSheet, fmt.Sprintf("D%d", rowNum), FormatDateBR(b.IssueDate))
			f.SetCellValue(budgetSheet, fmt.Sprintf("E%d", rowNum), sanitizeExcelCell(p.Description))
			f.SetCellValue(budgetSheet, fmt.Sprintf("F%d", rowNum), p.Quantity)
			f.SetCellValue(budgetSheet, fmt.Sprintf("G%d", rowNum), sanitizeExcelCell(p.Unit))
			f.SetCellValue(budgetSheet, fmt.Sprintf("H%d", rowNum), p.UnitPrice)
			f.SetCellValue(budgetSheet, fmt.Sprintf("I%d", rowNum), p.Total)
			f.SetCellStyle(budgetSheet, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("I%d", rowNum), cellStyle)
			rowNum++
		}
	}

	// ── Service orders sheet ────────────────────────────────────────────

	orderCols := []string{"A", "B", "C", "D", "E", "F"}
	orderWidths := []float64{14, 28, 34, 14, 14, 22}
	for i, col := range orderCols {
		if err := f.SetColWidth(orderSheet, col, col, orderWidths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	orderHeader := []string{
		"Numero", "Cliente", "Servico", "Status", "Data Agendada", "Tecnico",
	}
	for i, h := range orderHeader {
		cell := fmt.Sprintf("%s1", orderCols[i])
		f.SetCellValue(orderSheet, cell, h)
	}
	f.SetCellStyle(orderSheet, "A1", "F1", headerStyle)

	rowNum = 2
	for _, o := range data.Orders {
		f.SetCellValue(orderSheet, fmt.Sprintf("A%d", rowNum), sanitizeExcelCell(o.Number))
		f.SetCellValue(orderSheet, fmt.Sprintf("B%d", rowNum), sanitizeExcelCell(o.ClientName))
		f.SetCellValue(orderSheet, fmt.Sprintf("C%d", rowNum), sanitizeExcelCell(o.ServiceLabel))
		f.SetCellValue(orderSheet, fmt.Sprintf("D%d", rowNum), OrderStatusLabel(o.Status))
		f.SetCellValue(orderSheet, fmt.Sprintf("E%d", rowNum), FormatDateBR(o.ScheduledDate))
		f.SetCellValue(orderSheet, fmt.Sprintf("F%d", rowNum), sanitizeExcelCell(o.Technician))
		f.SetCellStyle(orderSheet, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("F%d", rowNum), cellStyle)
		rowNum++
	}

	var out []byte
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	out = buf.Bytes()
	return out, nil
}

// sanitizeExcelCell guards against formula injection when a cell begins
// with a character spreadsheet software would interpret.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#999999", Style: 1}
	}
	return borders
}
