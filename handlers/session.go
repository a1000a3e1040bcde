// Package handlers implements the JSON API for quotation composition:
// catalog browsing, session lifecycle, per-row fee editing, selection
// management, aggregation, and document synthesis downloads.
package handlers

import (
	"errors"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"github.com/Thanush1010/lex-quotation/services"
)

var errSessionNotFound = errors.New("session not found")

// sessionFromRequest resolves the session for the {token} path parameter.
func sessionFromRequest(store *services.SessionStore, e *core.RequestEvent) (*services.Session, error) {
	token := e.Request.PathValue("token")
	if token == "" {
		return nil, errSessionNotFound
	}
	sess, ok := store.Get(token)
	if !ok {
		return nil, errSessionNotFound
	}
	return sess, nil
}

// HandleSessionCreate returns a handler that starts a new quotation session
// and returns its token.
func HandleSessionCreate(store *services.SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		token, _ := store.Create()
		return e.JSON(http.StatusCreated, map[string]any{"token": token})
	}
}

// HandleSessionView returns a handler that reports the full session state:
// touched rows, confirmed selections, whole-set totals, and the client
// record if captured.
func HandleSessionView(store *services.SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := sessionFromRequest(store, e)
		if err != nil {
			return e.String(http.StatusNotFound, "Session not found")
		}

		entries := sess.Entries()
		payload := map[string]any{
			"rows":       sess.Rows(),
			"selections": entries,
			"totals":     services.CalcTotals(entries),
		}
		if client, ok := sess.Client(); ok {
			payload["client"] = client
		}
		return e.JSON(http.StatusOK, payload)
	}
}

// HandleSessionReset returns a handler that empties the session for a new
// quotation: selections, row states, and client record are all dropped.
func HandleSessionReset(store *services.SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := sessionFromRequest(store, e)
		if err != nil {
			return e.String(http.StatusNotFound, "Session not found")
		}
		sess.Reset()
		return e.NoContent(http.StatusNoContent)
	}
}
