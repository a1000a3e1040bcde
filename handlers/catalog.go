package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"github.com/Thanush1010/lex-quotation/services"
)

// HandleCatalog returns a handler that serves the full service catalog
// snapshot in display order.
func HandleCatalog(cat *services.Catalog) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, map[string]any{"services": cat.Services()})
	}
}
