package services

import (
	"bytes"
	"fmt"
	"strings"
)

// utf8BOM makes the file open with the right encoding in common
// spreadsheet software.
const utf8BOM = "\xEF\xBB\xBF"

// notApplicable fills priced columns on rows that carry no line items.
const notApplicable = "N/A"

var reportCSVHeader = []string{
	"Tipo",
	"Numero",
	"Cliente",
	"Status",
	"Data",
	"Produto/Servico",
	"Quantidade",
	"Unidade",
	"Preco Unitario",
	"Total",
}

// csvField quotes a single field. Every field is quoted and inner quotes
// are doubled so free text with commas, quotes or newlines survives the
// round trip into a spreadsheet.
func csvField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func csvRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = csvField(f)
	}
	return strings.Join(quoted, ",") + "\r\n"
}

func csvAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// GenerateReportCSV renders the bulk report as CSV. A budget with N
// products yields N rows, each repeating the budget-level fields; every
// service order yields one row with N/A in the priced columns.
func GenerateReportCSV(data ReportData) []byte {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	buf.WriteString(csvRow(reportCSVHeader))

	for _, b := range data.Budgets {
		if len(b.Products) == 0 {
			buf.WriteString(csvRow([]string{
				"Orcamento",
				b.Number,
				b.ClientName,
				BudgetStatusLabel(b.Status),
				FormatDateBR(b.IssueDate),
				"",
				"",
				"",
				"",
				csvAmount(0),
			}))
			continue
		}
		for _, p := range b.Products {
			buf.WriteString(csvRow([]string{
				"Orcamento",
				b.Number,
				b.ClientName,
				BudgetStatusLabel(b.Status),
				FormatDateBR(b.IssueDate),
				p.Description,
				csvAmount(p.Quantity),
				p.Unit,
				csvAmount(p.UnitPrice),
				csvAmount(p.Total),
			}))
		}
	}

	for _, o := range data.Orders {
		buf.WriteString(csvRow([]string{
			"Ordem de Servico",
			o.Number,
			o.ClientName,
			OrderStatusLabel(o.Status),
			FormatDateBR(o.ScheduledDate),
			o.ServiceLabel,
			notApplicable,
			notApplicable,
			notApplicable,
			notApplicable,
		}))
	}

	return buf.Bytes()
}
