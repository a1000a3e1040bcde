package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase/core"

	"github.com/Thanush1010/lex-quotation/services"
)

// HandleSelectionRemove returns a handler that deletes the selection at
// the given index. The matching catalog row drops back to idle so it can
// be selected again from scratch.
func HandleSelectionRemove(store *services.SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := sessionFromRequest(store, e)
		if err != nil {
			return e.String(http.StatusNotFound, "Session not found")
		}

		index, err := strconv.Atoi(e.Request.PathValue("index"))
		if err != nil {
			return e.String(http.StatusBadRequest, "Invalid selection index")
		}

		removed, err := sess.Remove(index)
		if errors.Is(err, services.ErrEntryNotFound) {
			return e.String(http.StatusNotFound, "Selection entry not found")
		}
		if err != nil {
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		return e.JSON(http.StatusOK, map[string]any{"removed": removed})
	}
}
