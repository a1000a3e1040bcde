package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Thanush1010/lex-quotation/services"
)

func totalsResponse(t *testing.T, rec *httptest.ResponseRecorder) (int, services.Totals) {
	t.Helper()
	var body struct {
		Count  int             `json:"count"`
		Totals services.Totals `json:"totals"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	return body.Count, body.Totals
}

func TestHandleTotals_WholeRegistry(t *testing.T) {
	store := services.NewSessionStore()
	cat := testCatalog()
	token, sess := store.Create()

	patent, _ := cat.ServiceByKey("patent")
	tm, _ := cat.ServiceByKey("trademark")
	confirmRow(sess, patent, patent.Subservices[0], 5000, 300)
	confirmRow(sess, tm, tm.Subservices[0], 1500, 0)

	handler := HandleTotals(store)
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+token+"/totals", nil)
	req.SetPathValue("token", token)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	count, totals := totalsResponse(t, rec)
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	// patent: 1600+5000+300, trademark: 0+1500+0
	if totals.Subtotal != 8400 {
		t.Errorf("subtotal = %v, want 8400", totals.Subtotal)
	}
	if totals.ProfessionalFees != 6500 {
		t.Errorf("professional fees = %v, want 6500", totals.ProfessionalFees)
	}
}

func TestHandleTotals_CategoryScoped(t *testing.T) {
	store := services.NewSessionStore()
	cat := testCatalog()
	token, sess := store.Create()

	patent, _ := cat.ServiceByKey("patent")
	tm, _ := cat.ServiceByKey("trademark")
	confirmRow(sess, patent, patent.Subservices[0], 5000, 300)
	confirmRow(sess, tm, tm.Subservices[0], 1500, 0)

	handler := HandleTotals(store)
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+token+"/totals?category=trademark", nil)
	req.SetPathValue("token", token)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	count, totals := totalsResponse(t, rec)
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if totals.Subtotal != 1500 || totals.ProfessionalFees != 1500 {
		t.Errorf("scoped totals = %+v, want trademark entry only", totals)
	}
}

func TestHandleTotals_EmptyCategory(t *testing.T) {
	store := services.NewSessionStore()
	token, _ := store.Create()

	handler := HandleTotals(store)
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+token+"/totals?category=copyright", nil)
	req.SetPathValue("token", token)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	count, totals := totalsResponse(t, rec)
	if count != 0 || totals.GrandTotal != 0 {
		t.Errorf("empty category should aggregate to zero, got count=%d totals=%+v", count, totals)
	}
}
