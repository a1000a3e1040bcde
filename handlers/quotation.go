package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/Thanush1010/lex-quotation/services"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// templateDescriptor is the per-category label and fixed terms list loaded
// from the quotation_templates collection.
type templateDescriptor struct {
	Key    string
	Label  string
	Terms  []string
	Footer string
}

// findDescriptor loads the template descriptor for a category key.
func findDescriptor(app *pocketbase.PocketBase, key string) (templateDescriptor, error) {
	record, err := app.FindFirstRecordByFilter(
		"quotation_templates",
		"key = {:key}",
		map[string]any{"key": key},
	)
	if err != nil {
		return templateDescriptor{}, fmt.Errorf("descriptor for %q: %w", key, err)
	}

	desc := templateDescriptor{
		Key:    record.GetString("key"),
		Label:  record.GetString("label"),
		Footer: record.GetString("footer"),
	}
	if err := record.UnmarshalJSONField("terms", &desc.Terms); err != nil {
		return templateDescriptor{}, fmt.Errorf("descriptor terms for %q: %w", key, err)
	}
	return desc, nil
}

// HandleQuotationDocx returns a handler that synthesizes the quotation
// document for one category and streams it as a download.
//
// The category's selections are snapshotted before the template is
// fetched, so concurrent edits to the session cannot change the document
// mid-synthesis. The registry itself is never mutated here.
func HandleQuotationDocx(app *pocketbase.PocketBase, store *services.SessionStore, templates services.TemplateStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := sessionFromRequest(store, e)
		if err != nil {
			return e.String(http.StatusNotFound, "Session not found")
		}

		category := strings.ToLower(e.Request.PathValue("category"))
		desc, err := findDescriptor(app, category)
		if err != nil {
			log.Printf("quotation: %v", err)
			return e.String(http.StatusNotFound, "Unknown quotation category")
		}

		client, ok := sess.Client()
		if !ok {
			return e.String(http.StatusConflict, "Client details required before generating a quotation")
		}

		// Snapshot before any I/O.
		entries := sess.EntriesForCategory(category)
		if len(entries) == 0 {
			return e.String(http.StatusUnprocessableEntity,
				fmt.Sprintf("No services selected for %s", desc.Label))
		}

		template, err := templates.Get(category)
		if errors.Is(err, services.ErrTemplateNotFound) {
			return e.String(http.StatusNotFound,
				fmt.Sprintf("Template not found for %s", desc.Label))
		}
		if err != nil {
			log.Printf("quotation: fetch template %s: %v", category, err)
			return e.String(http.StatusInternalServerError, "Failed to load quotation template")
		}

		quotation := services.BuildQuotation(category, desc.Label, desc.Terms, client, entries, time.Now())
		quotation.Footer = desc.Footer
		out, err := services.RenderDocx(template, quotation)
		if err != nil {
			log.Printf("quotation: render %s: %v", category, err)
			return e.String(http.StatusInternalServerError,
				fmt.Sprintf("Document generation failed: %v", err))
		}

		return writeDownload(e, docxContentType, sanitizeFilename(quotation.Filename("docx")), out)
	}
}
