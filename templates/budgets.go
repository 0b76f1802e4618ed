package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"warpmanager/services"
)

// BudgetRow is one row of the budget list.
type BudgetRow struct {
	ID          string
	Number      string
	ClientName  string
	StatusLabel string
	IssueDate   string
	Total       float64
}

// BudgetListData feeds the budget list screen.
type BudgetListData struct {
	Budgets []BudgetRow
}

// BudgetProductRow is one product line on the budget view screen.
type BudgetProductRow struct {
	ID      string
	Product services.BudgetProduct
}

// BudgetViewData feeds the budget detail screen.
type BudgetViewData struct {
	ID           string
	Number       string
	Status       string
	IssueDate    string
	ClientName   string
	ClientPhone  string
	Products     []BudgetProductRow
	Total        float64
	PaymentTerms string
	Warranty     string
	Notes        string
}

// BudgetFormData feeds the create/edit budget form.
type BudgetFormData struct {
	ID             string
	ClientName     string
	ClientDocument string
	ClientPhone    string
	ClientAddress  string
	Status         string
	PaymentTerms   string
	Warranty       string
	Notes          string
	Errors         map[string]string
}

func BudgetList(data BudgetListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="panel">
<header class="panel-header"><h1>Orçamentos</h1>
<a class="btn btn-primary" href="/budgets/create">Novo orçamento</a></header>
`); err != nil {
			return err
		}

		if len(data.Budgets) == 0 {
			_, err := io.WriteString(w, `<p class="empty">Nenhum orçamento cadastrado.</p></section>`)
			return err
		}

		if _, err := io.WriteString(w, `<table class="list">
<tr><th>Número</th><th>Cliente</th><th>Status</th><th>Data</th><th>Total</th><th></th></tr>
`); err != nil {
			return err
		}
		for _, b := range data.Budgets {
			if _, err := fmt.Fprintf(w,
				`<tr><td><a href="/budgets/%s">%s</a></td><td>%s</td><td>%s</td><td>%s</td><td class="num">%s</td>`+
					`<td><button class="btn btn-danger" hx-delete="/budgets/%s" hx-confirm="Excluir este orçamento?" hx-target="closest tr" hx-swap="outerHTML">Excluir</button></td></tr>
`,
				b.ID, esc(b.Number), esc(b.ClientName), esc(b.StatusLabel), esc(b.IssueDate),
				services.FormatBRL(b.Total), b.ID); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</table></section>`)
		return err
	})
}

func BudgetForm(data BudgetFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/budgets"
		heading := "Novo orçamento"
		if data.ID != "" {
			action = fmt.Sprintf("/budgets/%s/save", data.ID)
			heading = "Editar orçamento"
		}

		if _, err := fmt.Fprintf(w, `<section class="panel">
<header class="panel-header"><h1>%s</h1></header>
<form method="post" action="%s" class="form">
`, heading, action); err != nil {
			return err
		}

		if err := field(w, "Cliente", "client_name", "text", data.ClientName, data.Errors["client_name"]); err != nil {
			return err
		}
		if err := field(w, "CPF/CNPJ", "client_document", "text", data.ClientDocument, ""); err != nil {
			return err
		}
		if err := field(w, "Telefone", "client_phone", "text", data.ClientPhone, ""); err != nil {
			return err
		}
		if err := field(w, "Endereço", "client_address", "text", data.ClientAddress, ""); err != nil {
			return err
		}
		if err := selectField(w, "Status", "status", data.Status,
			services.BudgetStatuses, services.BudgetStatusLabel); err != nil {
			return err
		}
		if err := field(w, "Condições de pagamento", "payment_terms", "text", data.PaymentTerms, ""); err != nil {
			return err
		}
		if err := field(w, "Garantia", "warranty", "text", data.Warranty, ""); err != nil {
			return err
		}
		if err := field(w, "Observações", "notes", "text", data.Notes, ""); err != nil {
			return err
		}

		_, err := io.WriteString(w, `<footer class="form-actions">
<button type="submit" class="btn btn-primary">Salvar</button>
<a class="btn" href="/budgets">Cancelar</a>
</footer>
</form></section>`)
		return err
	})
}

func BudgetView(data BudgetViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="panel">
<header class="panel-header"><h1>Orçamento %s</h1>
<div class="actions">
<a class="btn" href="/budgets/%s/edit">Editar</a>
<a class="btn btn-primary" href="/budgets/%s/export/pdf">Baixar PDF</a>
</div>
</header>
<dl class="details">
<dt>Cliente</dt><dd>%s</dd>
<dt>Telefone</dt><dd>%s</dd>
<dt>Status</dt><dd>%s</dd>
<dt>Data de emissão</dt><dd>%s</dd>
</dl>
`,
			esc(data.Number), data.ID, data.ID,
			esc(data.ClientName), esc(data.ClientPhone),
			esc(services.BudgetStatusLabel(data.Status)), esc(data.IssueDate)); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<table class="list">
<tr><th>Descrição</th><th>Qtd.</th><th>Un.</th><th>Preço unit.</th><th>Total</th></tr>
`); err != nil {
			return err
		}
		for _, row := range data.Products {
			p := row.Product
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td class="num">%s</td><td>%s</td><td class="num">%s</td><td class="num">%s</td></tr>
`,
				esc(p.Description), trimFloat(p.Quantity), esc(p.Unit),
				services.FormatBRL(p.UnitPrice), services.FormatBRL(p.Total)); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintf(w, `</table>
<div class="totals"><span>Valor total: <strong>%s</strong></span></div>
</section>`, services.FormatBRL(data.Total))
		return err
	})
}
