// Package templates holds the templ components for all screens.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// NavData carries the sidebar counts shown on every page.
type NavData struct {
	ClientCount    int
	QuotationCount int
	BudgetCount    int
	OrderCount     int
}

func esc(s string) string { return templ.EscapeString(s) }

// Page wraps content in the full HTML shell with the sidebar nav. Handlers
// use it for full-page loads; HTMX partial requests render the content
// component alone.
func Page(title string, nav NavData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s - Warp Segurança Eletrônica</title>
<link rel="stylesheet" href="/static/styles.css">
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="/static/toast.js" defer></script>
</head>
<body>
<div class="layout">
`, esc(title)); err != nil {
			return err
		}
		if err := navSidebar(nav).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main id="content" class="content">`); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>
</div>
<div id="toast-container"></div>
</body>
</html>
`)
		return err
	})
}

func navSidebar(nav NavData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		links := []struct {
			href  string
			label string
			count int
		}{
			{"/clients", "Clientes", nav.ClientCount},
			{"/quotations", "Cotações", nav.QuotationCount},
			{"/budgets", "Orçamentos", nav.BudgetCount},
			{"/orders", "Ordens de serviço", nav.OrderCount},
			{"/reports", "Relatórios", -1},
		}

		if _, err := io.WriteString(w, `<nav class="sidebar"><div class="brand">Warp</div><ul>`); err != nil {
			return err
		}
		for _, l := range links {
			badge := ""
			if l.count >= 0 {
				badge = fmt.Sprintf(` <span class="badge">%d</span>`, l.count)
			}
			if _, err := fmt.Fprintf(w, `<li><a href="%s">%s%s</a></li>`, l.href, esc(l.label), badge); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul></nav>`)
		return err
	})
}

// field renders one labeled form input with an optional validation error.
func field(w io.Writer, label, name, inputType, value, errMsg string) error {
	errHTML := ""
	if errMsg != "" {
		errHTML = fmt.Sprintf(`<span class="field-error">%s</span>`, esc(errMsg))
	}
	_, err := fmt.Fprintf(w,
		`<label class="field">%s<input type="%s" name="%s" value="%s">%s</label>`,
		esc(label), inputType, name, esc(value), errHTML)
	return err
}

// selectField renders a labeled select with the given value selected.
// options maps stored values to display labels, ordered by keys.
func selectField(w io.Writer, label, name, selected string, keys []string, labelFor func(string) string) error {
	if _, err := fmt.Fprintf(w, `<label class="field">%s<select name="%s">`, esc(label), name); err != nil {
		return err
	}
	for _, key := range keys {
		sel := ""
		if key == selected {
			sel = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, key, sel, esc(labelFor(key))); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</select></label>`)
	return err
}
