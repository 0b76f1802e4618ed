package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSetToast_SetsTriggerAndCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	SetToast(e, "success", "Salvo")

	var events map[string]map[string]string
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &events); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	if events["showToast"]["message"] != "Salvo" || events["showToast"]["type"] != "success" {
		t.Errorf("unexpected showToast payload: %v", events["showToast"])
	}

	cookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, "flash_toast=") {
		t.Errorf("expected flash_toast cookie, got %q", cookie)
	}
}

func TestSetToast_MergesExistingTrigger(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	rec.Header().Set("HX-Trigger", `{"refreshList":true}`)
	SetToast(e, "warning", "Atenção")

	var events map[string]any
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &events); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	if _, ok := events["refreshList"]; !ok {
		t.Error("expected the pre-existing event to survive the merge")
	}
	if _, ok := events["showToast"]; !ok {
		t.Error("expected showToast to be added")
	}
}

func TestErrorToast_PreventsSwap(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	if err := ErrorToast(e, http.StatusBadRequest, "Deu ruim"); err != nil {
		t.Fatalf("ErrorToast returned error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
	if got := rec.Header().Get("HX-Reswap"); got != "none" {
		t.Errorf("expected HX-Reswap none, got %q", got)
	}
}
