package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/Thanush1010/lex-quotation/collections"
	"github.com/Thanush1010/lex-quotation/handlers"
	"github.com/Thanush1010/lex-quotation/services"
)

func main() {
	app := pocketbase.New()

	sessions := services.NewSessionStore()

	templatesDir := os.Getenv("QUOTATION_TEMPLATES_DIR")
	if templatesDir == "" {
		templatesDir = "./templates"
	}
	templates := &services.DirTemplateStore{Dir: templatesDir}

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Create collections and seed the catalog before the first load
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}

		catalog, err := services.LoadCatalog(app)
		if err != nil {
			return err
		}

		// ── Catalog ──────────────────────────────────────────────
		se.Router.GET("/api/catalog", handlers.HandleCatalog(catalog))

		// ── Session lifecycle ────────────────────────────────────
		se.Router.POST("/api/sessions", handlers.HandleSessionCreate(sessions))
		se.Router.GET("/api/sessions/{token}", handlers.HandleSessionView(sessions))
		se.Router.POST("/api/sessions/{token}/reset", handlers.HandleSessionReset(sessions))

		// ── Row editing and confirmation ─────────────────────────
		se.Router.POST("/api/sessions/{token}/rows/{serviceId}/{subIndex}/edit",
			handlers.HandleRowEdit(catalog, sessions))
		se.Router.PATCH("/api/sessions/{token}/rows/{serviceId}/{subIndex}/fees",
			handlers.HandleRowFees(catalog, sessions))
		se.Router.POST("/api/sessions/{token}/rows/{serviceId}/{subIndex}/confirm",
			handlers.HandleRowConfirm(catalog, sessions))

		// ── Selection registry ───────────────────────────────────
		se.Router.DELETE("/api/sessions/{token}/selections/{index}",
			handlers.HandleSelectionRemove(sessions))

		// ── Client details and totals ────────────────────────────
		se.Router.PUT("/api/sessions/{token}/client", handlers.HandleClientSave(sessions))
		se.Router.GET("/api/sessions/{token}/totals", handlers.HandleTotals(sessions))

		// ── Document synthesis ───────────────────────────────────
		se.Router.GET("/api/sessions/{token}/summary/excel",
			handlers.HandleSummaryExcel(sessions))
		se.Router.GET("/api/sessions/{token}/quotations/{category}/pdf",
			handlers.HandleQuotationPDF(app, sessions))
		se.Router.GET("/api/sessions/{token}/quotations/{category}",
			handlers.HandleQuotationDocx(app, sessions, templates))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
