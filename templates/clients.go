package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ClientRow is one row of the client list.
type ClientRow struct {
	ID      string
	Name    string
	Phone   string
	Email   string
	City    string
}

// ClientListData feeds the client list screen.
type ClientListData struct {
	Clients []ClientRow
}

// ClientFormData feeds the create/edit client form.
type ClientFormData struct {
	ID       string
	Name     string
	Document string
	Phone    string
	Email    string
	Address  string
	City     string
	Notes    string
	Errors   map[string]string
}

func ClientList(data ClientListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="panel">
<header class="panel-header"><h1>Clientes</h1>
<a class="btn btn-primary" href="/clients/create">Novo cliente</a></header>
`); err != nil {
			return err
		}

		if len(data.Clients) == 0 {
			_, err := io.WriteString(w, `<p class="empty">Nenhum cliente cadastrado.</p></section>`)
			return err
		}

		if _, err := io.WriteString(w, `<table class="list">
<tr><th>Nome</th><th>Telefone</th><th>E-mail</th><th>Cidade</th><th></th></tr>
`); err != nil {
			return err
		}
		for _, c := range data.Clients {
			if _, err := fmt.Fprintf(w,
				`<tr><td><a href="/clients/%s/edit">%s</a></td><td>%s</td><td>%s</td><td>%s</td>`+
					`<td><button class="btn btn-danger" hx-delete="/clients/%s" hx-confirm="Excluir este cliente?" hx-target="closest tr" hx-swap="outerHTML">Excluir</button></td></tr>
`,
				c.ID, esc(c.Name), esc(c.Phone), esc(c.Email), esc(c.City), c.ID); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</table></section>`)
		return err
	})
}

func ClientForm(data ClientFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/clients"
		heading := "Novo cliente"
		if data.ID != "" {
			action = fmt.Sprintf("/clients/%s/save", data.ID)
			heading = "Editar cliente"
		}

		if _, err := fmt.Fprintf(w, `<section class="panel">
<header class="panel-header"><h1>%s</h1></header>
<form method="post" action="%s" class="form">
`, heading, action); err != nil {
			return err
		}

		if err := field(w, "Nome", "name", "text", data.Name, data.Errors["name"]); err != nil {
			return err
		}
		if err := field(w, "CPF/CNPJ", "document", "text", data.Document, ""); err != nil {
			return err
		}
		if err := field(w, "Telefone", "phone", "text", data.Phone, ""); err != nil {
			return err
		}
		if err := field(w, "E-mail", "email", "text", data.Email, ""); err != nil {
			return err
		}
		if err := field(w, "Endereço", "address", "text", data.Address, ""); err != nil {
			return err
		}
		if err := field(w, "Cidade", "city", "text", data.City, ""); err != nil {
			return err
		}
		if err := field(w, "Observações", "notes", "text", data.Notes, ""); err != nil {
			return err
		}

		_, err := io.WriteString(w, `<footer class="form-actions">
<button type="submit" class="btn btn-primary">Salvar</button>
<a class="btn" href="/clients">Cancelar</a>
</footer>
</form></section>`)
		return err
	})
}
