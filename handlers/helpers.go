package handlers

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"

	"warpmanager/templates"
)

// render writes content as an HTMX partial when the request came from HTMX,
// otherwise wrapped in the full page shell.
func render(e *core.RequestEvent, title string, content templ.Component) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = content
	} else {
		component = templates.Page(title, GetNavData(e.Request), content)
	}
	return component.Render(e.Request.Context(), e.Response)
}

// isHTMX reports whether the request was issued by HTMX.
func isHTMX(e *core.RequestEvent) bool {
	return e.Request.Header.Get("HX-Request") == "true"
}

// redirect answers an HTMX request with HX-Redirect and anything else with
// a regular 302.
func redirect(e *core.RequestEvent, url string) error {
	if isHTMX(e) {
		e.Response.Header().Set("HX-Redirect", url)
		return e.String(http.StatusOK, "")
	}
	return e.Redirect(http.StatusFound, url)
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}
