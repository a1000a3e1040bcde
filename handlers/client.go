package handlers

import (
	"errors"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"github.com/Thanush1010/lex-quotation/services"
)

// HandleClientSave returns a handler that captures the client details for
// the session. Both fields are required; everything else about them is
// opaque to this service.
func HandleClientSave(store *services.SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := sessionFromRequest(store, e)
		if err != nil {
			return e.String(http.StatusNotFound, "Session not found")
		}

		var client services.ClientRecord
		if err := e.BindBody(&client); err != nil {
			return e.String(http.StatusBadRequest, "Invalid client payload")
		}

		if err := sess.SetClient(client); err != nil {
			if errors.Is(err, services.ErrClientRequired) {
				return e.String(http.StatusUnprocessableEntity, "Client name and address are required")
			}
			return e.String(http.StatusInternalServerError, "Internal error")
		}
		return e.JSON(http.StatusOK, client)
	}
}
