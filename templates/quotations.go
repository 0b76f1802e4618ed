package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"warpmanager/services"
)

// QuotationRow is one row of the quotation list.
type QuotationRow struct {
	ID             string
	Name           string
	StatusLabel    string
	TotalSalePrice float64
	TotalProfit    float64
}

// QuotationListData feeds the quotation list screen.
type QuotationListData struct {
	Quotations []QuotationRow
}

// QuotationItemRow is one priced line on the quotation edit screen.
type QuotationItemRow struct {
	ID     string
	Priced services.PricedItem
}

// QuotationEditData feeds the quotation worksheet screen.
type QuotationEditData struct {
	ID            string
	Name          string
	GlobalPercent float64
	Status        string
	Items         []QuotationItemRow
	Totals        services.QuotationTotals
	Errors        map[string]string
}

func QuotationList(data QuotationListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="panel">
<header class="panel-header"><h1>Cotações</h1>
<a class="btn btn-primary" href="/quotations/create">Nova cotação</a></header>
`); err != nil {
			return err
		}

		if len(data.Quotations) == 0 {
			_, err := io.WriteString(w, `<p class="empty">Nenhuma cotação cadastrada.</p></section>`)
			return err
		}

		if _, err := io.WriteString(w, `<table class="list">
<tr><th>Nome</th><th>Status</th><th>Valor de venda</th><th>Lucro</th><th></th></tr>
`); err != nil {
			return err
		}
		for _, q := range data.Quotations {
			if _, err := fmt.Fprintf(w,
				`<tr><td><a href="/quotations/%s">%s</a></td><td>%s</td>`+
					`<td class="num">%s</td><td class="num">%s</td>`+
					`<td><button class="btn btn-danger" hx-delete="/quotations/%s" hx-confirm="Excluir esta cotação?" hx-target="closest tr" hx-swap="outerHTML">Excluir</button></td></tr>
`,
				q.ID, esc(q.Name), esc(q.StatusLabel),
				services.FormatBRL(q.TotalSalePrice), services.FormatBRL(q.TotalProfit), q.ID); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</table></section>`)
		return err
	})
}

// QuotationCreateForm is the minimal form that opens a new worksheet.
func QuotationCreateForm(name string, errors map[string]string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="panel">
<header class="panel-header"><h1>Nova cotação</h1></header>
<form method="post" action="/quotations" class="form">
`); err != nil {
			return err
		}
		if err := field(w, "Nome", "name", "text", name, errors["name"]); err != nil {
			return err
		}
		if err := field(w, "Margem de lucro global (%)", "global_profit_percent", "text", "40", ""); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<footer class="form-actions">
<button type="submit" class="btn btn-primary">Criar</button>
<a class="btn" href="/quotations">Cancelar</a>
</footer>
</form></section>`)
		return err
	})
}

// QuotationEdit renders the whole worksheet: header fields, priced item
// table and totals.
func QuotationEdit(data QuotationEditData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="panel">
<header class="panel-header"><h1>Cotação</h1>
<form method="post" action="/quotations/%s/convert" class="inline">
<button type="submit" class="btn btn-primary">Gerar orçamento</button>
</form>
</header>
<form method="post" action="/quotations/%s/save" class="form form-row">
`, data.ID, data.ID); err != nil {
			return err
		}

		if err := field(w, "Nome", "name", "text", data.Name, data.Errors["name"]); err != nil {
			return err
		}
		if err := field(w, "Margem de lucro global (%)", "global_profit_percent", "text",
			trimFloat(data.GlobalPercent), ""); err != nil {
			return err
		}
		if err := selectField(w, "Status", "status", data.Status,
			services.QuotationStatuses, services.QuotationStatusLabel); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<footer class="form-actions">
<button type="submit" class="btn btn-primary">Salvar</button>
</footer>
</form>
`); err != nil {
			return err
		}

		if err := QuotationItemsSection(data).Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

// QuotationItemsSection is the HTMX partial re-rendered after every item
// change: the priced table, totals and the add-item form.
func QuotationItemsSection(data QuotationEditData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="items-section">
<table class="list items">
<tr><th>Descrição</th><th>Fornecedor</th><th>Qtd.</th><th>Custo unit.</th><th>Margem</th><th>Custo zerado</th><th>Venda unit.</th><th>Custo total</th><th>Venda total</th><th>Lucro</th><th></th></tr>
`); err != nil {
			return err
		}

		for _, row := range data.Items {
			p := row.Priced
			margin := fmt.Sprintf("%s%%", trimFloat(p.EffectivePercent))
			zeroMark := "-"
			if p.ZeroCost {
				margin = "-"
				zeroMark = "sim"
			}
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td class="num">%s</td><td class="num">%s</td><td class="num">%s</td><td>%s</td>`+
					`<td class="num">%s</td><td class="num">%s</td><td class="num">%s</td><td class="num">%s</td>`+
					`<td><button class="btn btn-danger" hx-delete="/quotations/%s/items/%s" hx-target="#items-section" hx-swap="outerHTML">Remover</button></td></tr>
`,
				esc(p.Description), esc(p.Supplier), trimFloat(p.Quantity),
				services.FormatBRL(p.UnitCost), margin, zeroMark,
				services.FormatBRL(p.UnitSalePrice), services.FormatBRL(p.TotalCost),
				services.FormatBRL(p.TotalSalePrice), services.FormatBRL(p.Profit),
				data.ID, row.ID); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `</table>
<div class="totals">
<span>Custo total: <strong>%s</strong></span>
<span>Venda total: <strong>%s</strong></span>
<span>Lucro total: <strong>%s</strong></span>
</div>
`,
			services.FormatBRL(data.Totals.TotalCost),
			services.FormatBRL(data.Totals.TotalSalePrice),
			services.FormatBRL(data.Totals.TotalProfit)); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<form hx-post="/quotations/%s/items" hx-target="#items-section" hx-swap="outerHTML" class="form form-row">
`, data.ID); err != nil {
			return err
		}
		if err := field(w, "Descrição", "description", "text", "", data.Errors["description"]); err != nil {
			return err
		}
		if err := field(w, "Fornecedor", "supplier", "text", "", ""); err != nil {
			return err
		}
		if err := field(w, "Qtd.", "quantity", "text", "1", ""); err != nil {
			return err
		}
		if err := field(w, "Custo unitário", "unit_cost", "text", "", ""); err != nil {
			return err
		}
		if err := field(w, "Margem do item (%)", "profit_percent", "text", "", ""); err != nil {
			return err
		}
		if err := field(w, "Venda unitária", "unit_sale_price", "text", "", ""); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<label class="field checkbox">Custo zerado<input type="checkbox" name="zero_cost" value="true"></label>
<footer class="form-actions"><button type="submit" class="btn">Adicionar item</button></footer>
</form>
</div>`); err != nil {
			return err
		}
		return nil
	})
}

// trimFloat renders a float without trailing zeros (4 -> "4", 2.5 -> "2.5").
func trimFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
