package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"warpmanager/services"
)

// OrderRow is one row of the service-order list.
type OrderRow struct {
	ID            string
	Number        string
	ClientName    string
	ServiceLabel  string
	StatusLabel   string
	ScheduledDate string
	Technician    string
}

// OrderListData feeds the service-order list screen.
type OrderListData struct {
	Orders []OrderRow
}

// OrderFormData feeds the create/edit service-order form.
type OrderFormData struct {
	ID              string
	ClientName      string
	Action          string
	System          string
	MaintenanceKind string
	Status          string
	ScheduledDate   string
	Technician      string
	EquipmentNotes  string
	Errors          map[string]string
}

func OrderList(data OrderListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="panel">
<header class="panel-header"><h1>Ordens de serviço</h1>
<a class="btn btn-primary" href="/orders/create">Nova ordem</a></header>
`); err != nil {
			return err
		}

		if len(data.Orders) == 0 {
			_, err := io.WriteString(w, `<p class="empty">Nenhuma ordem de serviço cadastrada.</p></section>`)
			return err
		}

		if _, err := io.WriteString(w, `<table class="list">
<tr><th>Número</th><th>Cliente</th><th>Serviço</th><th>Status</th><th>Data agendada</th><th>Técnico</th><th></th></tr>
`); err != nil {
			return err
		}
		for _, o := range data.Orders {
			if _, err := fmt.Fprintf(w,
				`<tr><td><a href="/orders/%s/edit">%s</a></td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>`+
					`<td><button class="btn btn-danger" hx-delete="/orders/%s" hx-confirm="Excluir esta ordem?" hx-target="closest tr" hx-swap="outerHTML">Excluir</button></td></tr>
`,
				o.ID, esc(o.Number), esc(o.ClientName), esc(o.ServiceLabel),
				esc(o.StatusLabel), esc(o.ScheduledDate), esc(o.Technician), o.ID); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</table></section>`)
		return err
	})
}

func OrderForm(data OrderFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/orders"
		heading := "Nova ordem de serviço"
		if data.ID != "" {
			action = fmt.Sprintf("/orders/%s/save", data.ID)
			heading = "Editar ordem de serviço"
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
		if err := selectField(w, "Serviço", "action", data.Action,
			services.ServiceActions, services.ActionLabel); err != nil {
			return err
		}
		if err := selectField(w, "Sistema", "system", data.System,
			services.SecuritySystems, services.SystemLabel); err != nil {
			return err
		}
		if err := selectField(w, "Tipo de manutenção", "maintenance_kind", data.MaintenanceKind,
			services.MaintenanceKinds, services.MaintenanceLabel); err != nil {
			return err
		}
		if err := selectField(w, "Status", "status", data.Status,
			services.OrderStatuses, services.OrderStatusLabel); err != nil {
			return err
		}
		if err := field(w, "Data agendada", "scheduled_date", "date", data.ScheduledDate, ""); err != nil {
			return err
		}
		if err := field(w, "Técnico", "technician", "text", data.Technician, ""); err != nil {
			return err
		}
		if err := field(w, "Equipamentos", "equipment_notes", "text", data.EquipmentNotes, ""); err != nil {
			return err
		}

		_, err := io.WriteString(w, `<footer class="form-actions">
<button type="submit" class="btn btn-primary">Salvar</button>
<a class="btn" href="/orders">Cancelar</a>
</footer>
</form></section>`)
		return err
	})
}

// ReportsPage offers the bulk report downloads.
func ReportsPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="panel">
<header class="panel-header"><h1>Relatórios</h1></header>
<p>Exportação completa de orçamentos e ordens de serviço.</p>
<div class="actions">
<a class="btn btn-primary" href="/reports/export/csv">Baixar CSV</a>
<a class="btn btn-primary" href="/reports/export/html">Baixar HTML</a>
<a class="btn btn-primary" href="/reports/export/excel">Baixar Excel</a>
</div>
</section>`)
		return err
	})
}
