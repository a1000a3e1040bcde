package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/Thanush1010/lex-quotation/services"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newJSONRequest builds a request carrying a JSON body.
func newJSONRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// testCatalog is the fixture catalog used across handler tests.
func testCatalog() *services.Catalog {
	return services.NewCatalog([]services.Service{
		{
			ID:   "patent",
			Name: "Patent Services",
			Subservices: []services.Subservice{
				{Name: "Patentability Search", OfficialFee: 1600},
				{Name: "Provisional Filing", OfficialFee: 1750},
			},
		},
		{
			ID:   "trademark",
			Name: "Trademark Services",
			Subservices: []services.Subservice{
				{Name: "TM Search", OfficialFee: 0},
			},
		},
	})
}

// confirmRow drives a row through edit, fees, and confirm directly on the
// session, bypassing the HTTP surface.
func confirmRow(sess *services.Session, svc services.Service, sub services.Subservice, professional, reimbursement float64) {
	sess.StartEdit(svc.ID, sub.Name)
	sess.SetFees(svc.ID, sub.Name, professional, reimbursement)
	sess.Confirm(svc, sub)
}

// fakeTemplateStore serves an in-memory template per key and records the
// keys it was asked for.
type fakeTemplateStore struct {
	templates map[string][]byte
	requested []string
}

func (s *fakeTemplateStore) Get(key string) ([]byte, error) {
	s.requested = append(s.requested, key)
	if tpl, ok := s.templates[key]; ok {
		return tpl, nil
	}
	return nil, services.ErrTemplateNotFound
}
