package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase/core"

	"github.com/Thanush1010/lex-quotation/services"
)

// rowFromRequest resolves the {serviceId}/{subIndex} path parameters
// against the catalog snapshot.
func rowFromRequest(cat *services.Catalog, e *core.RequestEvent) (services.Service, services.Subservice, bool) {
	serviceID := e.Request.PathValue("serviceId")
	index, err := strconv.Atoi(e.Request.PathValue("subIndex"))
	if err != nil {
		return services.Service{}, services.Subservice{}, false
	}
	return cat.SubserviceAt(serviceID, index)
}

// feePayload is the request body for fee updates.
type feePayload struct {
	ProfessionalFee float64 `json:"professionalFee"`
	Reimbursement   float64 `json:"reimbursement"`
}

// HandleRowEdit returns a handler that moves a row into the editing stage.
// It starts a fresh row from idle and reopens a confirmed row for changes;
// any prior validation error is cleared.
func HandleRowEdit(cat *services.Catalog, store *services.SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := sessionFromRequest(store, e)
		if err != nil {
			return e.String(http.StatusNotFound, "Session not found")
		}
		svc, sub, ok := rowFromRequest(cat, e)
		if !ok {
			return e.String(http.StatusNotFound, "Unknown catalog row")
		}

		state := sess.StartEdit(svc.ID, sub.Name)
		return e.JSON(http.StatusOK, state)
	}
}

// HandleRowFees returns a handler that records new fee values on an
// editing row. Fees are rejected outside the editing stage because idle
// and confirmed rows are read-only.
func HandleRowFees(cat *services.Catalog, store *services.SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := sessionFromRequest(store, e)
		if err != nil {
			return e.String(http.StatusNotFound, "Session not found")
		}
		svc, sub, ok := rowFromRequest(cat, e)
		if !ok {
			return e.String(http.StatusNotFound, "Unknown catalog row")
		}

		var fees feePayload
		if err := e.BindBody(&fees); err != nil {
			return e.String(http.StatusBadRequest, "Invalid fee payload")
		}

		state, err := sess.SetFees(svc.ID, sub.Name, fees.ProfessionalFee, fees.Reimbursement)
		if errors.Is(err, services.ErrRowNotEditing) {
			return e.String(http.StatusConflict, "Row is not in editing stage")
		}
		if err != nil {
			log.Printf("rows: set fees for %s/%s: %v", svc.ID, sub.Name, err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}
		return e.JSON(http.StatusOK, state)
	}
}

// HandleRowConfirm returns a handler that commits an editing row: fees are
// validated, and on success the selection is upserted into the registry
// and the row becomes confirmed. A failed validation leaves the registry
// untouched and reports the row's error.
func HandleRowConfirm(cat *services.Catalog, store *services.SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := sessionFromRequest(store, e)
		if err != nil {
			return e.String(http.StatusNotFound, "Session not found")
		}
		svc, sub, ok := rowFromRequest(cat, e)
		if !ok {
			return e.String(http.StatusNotFound, "Unknown catalog row")
		}

		entry, err := sess.Confirm(svc, sub)
		switch {
		case errors.Is(err, services.ErrRowNotEditing):
			return e.String(http.StatusConflict, "Row is not in editing stage")
		case errors.Is(err, services.ErrInvalidFees):
			return e.JSON(http.StatusUnprocessableEntity, map[string]any{
				"error": services.ErrInvalidFees.Error(),
				"row":   sess.Row(svc.ID, sub.Name),
			})
		case err != nil:
			log.Printf("rows: confirm %s/%s: %v", svc.ID, sub.Name, err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"entry": entry,
			"row":   sess.Row(svc.ID, sub.Name),
		})
	}
}
