package services

import (
	"bytes"
	"fmt"
	"html"
)

// GenerateReportHTML renders the bulk report as a standalone styled HTML
// document: one table for budgets, one for service orders. All free-text
// fields are escaped before interpolation.
func GenerateReportHTML(data ReportData) []byte {
	var buf bytes.Buffer

	buf.WriteString(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Relatório Warp Segurança Eletrônica</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; margin: 24px; color: #222; }
h1 { font-size: 20px; }
h2 { font-size: 16px; margin-top: 32px; border-bottom: 2px solid #333; padding-bottom: 4px; }
table { border-collapse: collapse; width: 100%; margin-top: 8px; font-size: 12px; }
th { background: #333; color: #fff; padding: 6px 8px; text-align: left; }
td { border: 1px solid #ccc; padding: 5px 8px; }
tr:nth-child(even) td { background: #f6f6f6; }
td.num { text-align: right; white-space: nowrap; }
p.meta { color: #666; font-size: 11px; }
</style>
</head>
<body>
`)

	fmt.Fprintf(&buf, "<h1>Relatório completo</h1>\n<p class=\"meta\">Gerado em %s</p>\n",
		html.EscapeString(FormatDateBR(data.GeneratedAt)))

	buf.WriteString("<h2>Orçamentos</h2>\n<table>\n<tr>" +
		"<th>Número</th><th>Cliente</th><th>Status</th><th>Data</th>" +
		"<th>Produto</th><th>Qtd.</th><th>Un.</th><th>Preço unitário</th><th>Total</th>" +
		"</tr>\n")

	for _, b := range data.Budgets {
		if len(b.Products) == 0 {
			fmt.Fprintf(&buf,
				"<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>-</td><td class=\"num\">-</td><td>-</td><td class=\"num\">-</td><td class=\"num\">%s</td></tr>\n",
				html.EscapeString(b.Number),
				html.EscapeString(b.ClientName),
				html.EscapeString(BudgetStatusLabel(b.Status)),
				FormatDateBR(b.IssueDate),
				html.EscapeString(FormatBRL(0)),
			)
			continue
		}
		for _, p := range b.Products {
			fmt.Fprintf(&buf,
				"<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td class=\"num\">%s</td><td>%s</td><td class=\"num\">%s</td><td class=\"num\">%s</td></tr>\n",
				html.EscapeString(b.Number),
				html.EscapeString(b.ClientName),
				html.EscapeString(BudgetStatusLabel(b.Status)),
				FormatDateBR(b.IssueDate),
				html.EscapeString(p.Description),
				html.EscapeString(fmt.Sprintf("%g", p.Quantity)),
				html.EscapeString(p.Unit),
				html.EscapeString(FormatBRL(p.UnitPrice)),
				html.EscapeString(FormatBRL(p.Total)),
			)
		}
	}
	buf.WriteString("</table>\n")

	buf.WriteString("<h2>Ordens de serviço</h2>\n<table>\n<tr>" +
		"<th>Número</th><th>Cliente</th><th>Serviço</th><th>Status</th><th>Data agendada</th><th>Técnico</th>" +
		"</tr>\n")

	for _, o := range data.Orders {
		fmt.Fprintf(&buf,
			"<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			html.EscapeString(o.Number),
			html.EscapeString(o.ClientName),
			html.EscapeString(o.ServiceLabel),
			html.EscapeString(OrderStatusLabel(o.Status)),
			FormatDateBR(o.ScheduledDate),
			html.EscapeString(o.Technician),
		)
	}
	buf.WriteString("</table>\n</body>\n</html>\n")

	return buf.Bytes()
}
