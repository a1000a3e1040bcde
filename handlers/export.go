package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/Thanush1010/lex-quotation/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// writeDownload streams a generated artifact as a file attachment.
func writeDownload(e *core.RequestEvent, contentType, filename string, data []byte) error {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	_, err := e.Response.Write(data)
	return err
}

// HandleSummaryExcel returns a handler that downloads an Excel workbook of
// the session's full selection registry with its whole-set totals.
func HandleSummaryExcel(store *services.SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := sessionFromRequest(store, e)
		if err != nil {
			return e.String(http.StatusNotFound, "Session not found")
		}

		entries := sess.Entries()
		if len(entries) == 0 {
			return e.String(http.StatusUnprocessableEntity, "No services selected")
		}

		data := services.SummaryData{
			Date:    services.FormatQuotationDate(time.Now()),
			Entries: entries,
			Totals:  services.CalcTotals(entries),
		}
		if client, ok := sess.Client(); ok {
			data.ClientName = client.ClientName
		}

		xlsxBytes, err := services.GenerateSummaryExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Quotation-Summary-%d.xlsx", time.Now().Year())
		return writeDownload(e, xlsxContentType, filename, xlsxBytes)
	}
}

// HandleQuotationPDF returns a handler that downloads a PDF rendition of
// one category's quotation. It shares the docx pipeline's rules: client
// details first, snapshot before generation, empty categories refused.
func HandleQuotationPDF(app *pocketbase.PocketBase, store *services.SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := sessionFromRequest(store, e)
		if err != nil {
			return e.String(http.StatusNotFound, "Session not found")
		}

		category := strings.ToLower(e.Request.PathValue("category"))
		desc, err := findDescriptor(app, category)
		if err != nil {
			log.Printf("export_pdf: %v", err)
			return e.String(http.StatusNotFound, "Unknown quotation category")
		}

		client, ok := sess.Client()
		if !ok {
			return e.String(http.StatusConflict, "Client details required before generating a quotation")
		}

		entries := sess.EntriesForCategory(category)
		if len(entries) == 0 {
			return e.String(http.StatusUnprocessableEntity,
				fmt.Sprintf("No services selected for %s", desc.Label))
		}

		quotation := services.BuildQuotation(category, desc.Label, desc.Terms, client, entries, time.Now())
		quotation.Footer = desc.Footer
		pdfBytes, err := services.GenerateQuotationPDF(quotation)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		return writeDownload(e, "application/pdf", sanitizeFilename(quotation.Filename("pdf")), pdfBytes)
	}
}
