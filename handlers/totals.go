package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"github.com/Thanush1010/lex-quotation/services"
)

// HandleTotals returns a handler that aggregates the session's selections.
// Without a query parameter it covers the whole registry; with
// ?category=<key> it is scoped to that category's entries only.
func HandleTotals(store *services.SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := sessionFromRequest(store, e)
		if err != nil {
			return e.String(http.StatusNotFound, "Session not found")
		}

		var entries []services.Entry
		if category := e.Request.URL.Query().Get("category"); category != "" {
			entries = sess.EntriesForCategory(category)
		} else {
			entries = sess.Entries()
		}

		return e.JSON(http.StatusOK, map[string]any{
			"count":  len(entries),
			"totals": services.CalcTotals(entries),
		})
	}
}
