package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Thanush1010/lex-quotation/services"
)

func TestHandleRowEdit(t *testing.T) {
	store := services.NewSessionStore()
	cat := testCatalog()
	token, _ := store.Create()

	handler := HandleRowEdit(cat, store)
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+token+"/rows/patent/0/edit", nil)
	req.SetPathValue("token", token)
	req.SetPathValue("serviceId", "patent")
	req.SetPathValue("subIndex", "0")
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var state services.RowState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if state.Stage != services.RowEditing {
		t.Errorf("stage = %q, want %q", state.Stage, services.RowEditing)
	}
}

func TestHandleRowEdit_UnknownRow(t *testing.T) {
	store := services.NewSessionStore()
	token, _ := store.Create()

	tests := []struct {
		name      string
		serviceID string
		subIndex  string
	}{
		{"unknown service", "copyright", "0"},
		{"index out of range", "patent", "9"},
		{"non-numeric index", "patent", "abc"},
	}

	handler := HandleRowEdit(testCatalog(), store)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+token+"/rows/x/edit", nil)
			req.SetPathValue("token", token)
			req.SetPathValue("serviceId", tt.serviceID)
			req.SetPathValue("subIndex", tt.subIndex)
			rec := httptest.NewRecorder()
			if err := handler(newTestRequestEvent(nil, req, rec)); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusNotFound {
				t.Errorf("expected 404, got %d", rec.Code)
			}
		})
	}
}

func TestHandleRowFees(t *testing.T) {
	store := services.NewSessionStore()
	cat := testCatalog()
	token, sess := store.Create()
	sess.StartEdit("patent", "Patentability Search")

	handler := HandleRowFees(cat, store)
	req := newJSONRequest(http.MethodPatch, "/api/sessions/"+token+"/rows/patent/0/fees",
		`{"professionalFee": 5000, "reimbursement": 300}`)
	req.SetPathValue("token", token)
	req.SetPathValue("serviceId", "patent")
	req.SetPathValue("subIndex", "0")
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var state services.RowState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if state.ProfessionalFee != 5000 || state.Reimbursement != 300 {
		t.Errorf("fees = (%v, %v), want (5000, 300)", state.ProfessionalFee, state.Reimbursement)
	}
}

func TestHandleRowFees_NotEditing(t *testing.T) {
	store := services.NewSessionStore()
	token, _ := store.Create()

	handler := HandleRowFees(testCatalog(), store)
	req := newJSONRequest(http.MethodPatch, "/api/sessions/"+token+"/rows/patent/0/fees",
		`{"professionalFee": 5000, "reimbursement": 300}`)
	req.SetPathValue("token", token)
	req.SetPathValue("serviceId", "patent")
	req.SetPathValue("subIndex", "0")
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}

func TestHandleRowConfirm(t *testing.T) {
	store := services.NewSessionStore()
	cat := testCatalog()
	token, sess := store.Create()
	sess.StartEdit("patent", "Patentability Search")
	sess.SetFees("patent", "Patentability Search", 5000, 300)

	handler := HandleRowConfirm(cat, store)
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+token+"/rows/patent/0/confirm", nil)
	req.SetPathValue("token", token)
	req.SetPathValue("serviceId", "patent")
	req.SetPathValue("subIndex", "0")
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Entry services.Entry    `json:"entry"`
		Row   services.RowState `json:"row"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body.Entry.Total != 6900 {
		t.Errorf("entry total = %v, want 6900", body.Entry.Total)
	}
	if body.Row.Stage != services.RowConfirmed {
		t.Errorf("row stage = %q, want %q", body.Row.Stage, services.RowConfirmed)
	}
	if !sess.IsSelected("patent", "Patentability Search") {
		t.Error("selection should be registered after confirm")
	}
}

func TestHandleRowConfirm_InvalidFees(t *testing.T) {
	store := services.NewSessionStore()
	cat := testCatalog()
	token, sess := store.Create()
	sess.StartEdit("patent", "Patentability Search")
	sess.SetFees("patent", "Patentability Search", 0, 300)

	handler := HandleRowConfirm(cat, store)
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+token+"/rows/patent/0/confirm", nil)
	req.SetPathValue("token", token)
	req.SetPathValue("serviceId", "patent")
	req.SetPathValue("subIndex", "0")
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	if !strings.Contains(rec.Body.String(), "enter valid fee values") {
		t.Errorf("response should carry the validation message: %s", rec.Body.String())
	}
	if sess.IsSelected("patent", "Patentability Search") {
		t.Error("registry must stay untouched on invalid fees")
	}
}

func TestHandleRowConfirm_NotEditing(t *testing.T) {
	store := services.NewSessionStore()
	token, _ := store.Create()

	handler := HandleRowConfirm(testCatalog(), store)
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+token+"/rows/patent/0/confirm", nil)
	req.SetPathValue("token", token)
	req.SetPathValue("serviceId", "patent")
	req.SetPathValue("subIndex", "0")
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}
