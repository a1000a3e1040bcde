package services

// Tax rates applied to the professional-fee component only. Official fees
// and reimbursements are never taxed.
const (
	GSTRate = 0.18
	TDSRate = 0.10
)

// Totals is the aggregation result over a list of selection entries.
type Totals struct {
	Subtotal         float64 `json:"subtotal"`
	ProfessionalFees float64 `json:"professionalFees"`
	GST              float64 `json:"gst"`
	TDS              float64 `json:"tds"`
	GrandTotal       float64 `json:"grandTotal"`
}

// CalcTotals aggregates the given entries. GST and TDS are computed on the
// professional-fee sum only; the grand total adds GST and deducts TDS from
// the subtotal. Fee validity is enforced at commit time, so inputs are
// assumed non-negative.
func CalcTotals(entries []Entry) Totals {
	var t Totals
	for _, e := range entries {
		t.Subtotal += e.Total
		t.ProfessionalFees += e.ProfessionalFee
	}
	t.GST = t.ProfessionalFees * GSTRate
	t.TDS = t.ProfessionalFees * TDSRate
	t.GrandTotal = t.Subtotal + t.GST - t.TDS
	return t
}
