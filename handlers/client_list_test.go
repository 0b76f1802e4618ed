package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"warpmanager/testhelpers"
)

func TestHandleClientList_ShowsClients(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestClient(t, app, "Residencial Alfa")
	testhelpers.CreateTestClient(t, app, "Loja Centro")

	handler := HandleClientList(app)

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Residencial Alfa",
		"Loja Centro",
		"(31) 90000-0000",
	)
}

func TestHandleClientList_Empty(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleClientList(app)

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Nenhum cliente cadastrado.")
}
