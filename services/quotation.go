package services

import (
	"strconv"
	"time"
)

// QuotationLine is one line item of a generated quotation, with all amounts
// already formatted for document binding.
type QuotationLine struct {
	SrNo            int    `json:"srNo"`
	Name            string `json:"name"`
	OfficialFee     string `json:"officialFee"`
	ProfessionalFee string `json:"professionalFee"`
	MiscFee         string `json:"miscFee"`
	Total           string `json:"total"`
}

// Quotation is the ephemeral synthesis output bound into a document
// template. It is derived per invocation and never stored.
type Quotation struct {
	CategoryKey     string          `json:"categoryKey"`
	CategoryLabel   string          `json:"categoryLabel"`
	ClientName      string          `json:"clientName"`
	ClientAddress   string          `json:"clientAddress"`
	QuotationNumber string          `json:"quotationNumber"`
	QuotationDate   string          `json:"quotationDate"`
	Lines           []QuotationLine `json:"lines"`
	Subtotal        string          `json:"subtotal"`
	GST             string          `json:"gst"`
	TDS             string          `json:"tds"`
	GrandTotal      string          `json:"grandTotal"`
	Terms           []string        `json:"terms"`
	Footer          string          `json:"footer,omitempty"`
}

// GenerateQuotationNumber creates a short human-presentable identifier,
// unique per invocation: "LXR-" followed by the last six digits of the
// current unix-millisecond timestamp.
func GenerateQuotationNumber(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "LXR-" + ms
}

// FormatQuotationDate renders the quotation date in long form:
// numeric day, full month name, year (e.g. "3 September 2026").
func FormatQuotationDate(now time.Time) string {
	return now.Format("2 January 2006")
}

// BuildQuotation projects a category-filtered selection snapshot into a
// quotation: ordered line items with 1-based serial numbers, aggregated and
// formatted totals, and the category's fixed terms. The entries slice must
// already be filtered to the category; aggregation here is category-scoped
// by construction.
func BuildQuotation(key, label string, terms []string, client ClientRecord, entries []Entry, now time.Time) Quotation {
	totals := CalcTotals(entries)

	lines := make([]QuotationLine, 0, len(entries))
	for i, e := range entries {
		lines = append(lines, QuotationLine{
			SrNo:            i + 1,
			Name:            e.Subservice,
			OfficialFee:     FormatAmount(e.OfficialFee),
			ProfessionalFee: FormatAmount(e.ProfessionalFee),
			MiscFee:         FormatAmount(e.MiscFee),
			Total:           FormatAmount(e.Total),
		})
	}

	return Quotation{
		CategoryKey:     key,
		CategoryLabel:   label,
		ClientName:      client.ClientName,
		ClientAddress:   client.ClientAddress,
		QuotationNumber: GenerateQuotationNumber(now),
		QuotationDate:   FormatQuotationDate(now),
		Lines:           lines,
		Subtotal:        FormatAmount(totals.Subtotal),
		GST:             FormatAmount(totals.GST),
		TDS:             FormatAmount(totals.TDS),
		GrandTotal:      FormatAmount(totals.GrandTotal),
		Terms:           terms,
	}
}

// Filename composes the download filename for the quotation document:
// Quotation-<CategoryLabel>-<QuotationNumber>.<ext>
func (q Quotation) Filename(ext string) string {
	return "Quotation-" + q.CategoryLabel + "-" + q.QuotationNumber + "." + ext
}
