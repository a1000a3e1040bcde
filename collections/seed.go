package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type subserviceDef struct {
	name        string
	officialFee float64
	description string
}

type serviceDef struct {
	key  string
	name string
	icon string
	note string
	subs []subserviceDef
}

type templateDef struct {
	key    string
	label  string
	terms  []string
	footer string
}

// Seed populates the catalog and template-descriptor collections with the
// fixed Lextria Research IP service offerings. It is safe to call on every
// startup because it returns early if any service records already exist.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if services already exist ──────────────────
	servicesCol, err := app.FindCollectionByNameOrId("services")
	if err != nil {
		return fmt.Errorf("seed: could not find services collection: %w", err)
	}
	existing, err := app.FindAllRecords(servicesCol)
	if err != nil {
		return fmt.Errorf("seed: could not query services: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: services collection is empty, inserting catalog data")

	subservicesCol, err := app.FindCollectionByNameOrId("subservices")
	if err != nil {
		return fmt.Errorf("seed: could not find subservices collection: %w", err)
	}
	templatesCol, err := app.FindCollectionByNameOrId("quotation_templates")
	if err != nil {
		return fmt.Errorf("seed: could not find quotation_templates collection: %w", err)
	}

	for i, def := range catalogDefs() {
		svc := core.NewRecord(servicesCol)
		svc.Set("key", def.key)
		svc.Set("name", def.name)
		svc.Set("icon", def.icon)
		svc.Set("note", def.note)
		svc.Set("sort_order", i+1)
		if err := app.Save(svc); err != nil {
			return fmt.Errorf("seed: save service %q: %w", def.key, err)
		}

		for j, sub := range def.subs {
			r := core.NewRecord(subservicesCol)
			r.Set("service", svc.Id)
			r.Set("sort_order", j+1)
			r.Set("name", sub.name)
			r.Set("official_fee", sub.officialFee)
			if sub.description != "" {
				r.Set("description", sub.description)
			}
			if err := app.Save(r); err != nil {
				return fmt.Errorf("seed: save subservice %q/%q: %w", def.key, sub.name, err)
			}
		}
	}

	for _, def := range templateDefs() {
		r := core.NewRecord(templatesCol)
		r.Set("key", def.key)
		r.Set("label", def.label)
		r.Set("terms", def.terms)
		r.Set("footer", def.footer)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save template descriptor %q: %w", def.key, err)
		}
	}

	log.Println("seed: catalog data inserted.")
	return nil
}

// catalogDefs returns the fixed IP service catalog, in display order.
func catalogDefs() []serviceDef {
	return []serviceDef{
		{
			key:  "ip",
			name: "All IP",
			icon: "⚖️",
			note: "Payment shall be made in stages. Hearing costs apply only if required. GST will be charged separately.",
			subs: []subserviceDef{
				{name: "Patent searching with written opinion (Optional)", officialFee: 0, description: "Optional service"},
				{name: "Patent searching with oral opinion, Provisional specification drafting, filing", officialFee: 1600, description: "Stage 1 service"},
				{name: "Complete specification drafting, filing and request for early publication", officialFee: 6500, description: "Inclusive of Govt fees"},
				{name: "Response to Examination", officialFee: 0, description: "If objections are raised"},
				{name: "Attending hearing and filing written submission", officialFee: 0, description: "If required"},
			},
		},
		{
			key:  "patent",
			name: "Patent",
			icon: "📜",
			note: "Payment shall be made in stages. Additional costs will be quoted separately. GST will be charged separately.",
			subs: []subserviceDef{
				{name: "Patent searching with written opinion (Optional)", officialFee: 0, description: "Optional service"},
				{name: "Provisional specification drafting and filing", officialFee: 1600, description: "Stage 1 service"},
				{name: "Complete specification and expedited examination", officialFee: 6500, description: "Inclusive of Govt fees"},
				{name: "Response to Examination Report", officialFee: 0, description: "If objections are raised"},
				{name: "Hearing attendance and written submission", officialFee: 0, description: "If required"},
			},
		},
		{
			key:  "trademark",
			name: "Trademark",
			icon: "™️",
			note: "Payment shall be made stage wise. Stamp duty, notary, and bank charges will be communicated separately.",
			subs: []subserviceDef{
				{name: "Trademark Search (optional)", officialFee: 0, description: "Trademark search with result"},
				{name: "Trademark filing", officialFee: 4500, description: "Trademark filing at TMO (Startup/Individual)"},
				{name: "Response to objection", officialFee: 800, description: "Filing response to objection"},
				{name: "Attending objection hearing", officialFee: 800},
				{name: "Filing written submission", officialFee: 0},
			},
		},
		{
			key:  "design",
			name: "Design",
			icon: "🎨",
			note: "Payment shall be made in stages. Hearing costs apply only if required. GST will be charged separately.",
			subs: []subserviceDef{
				{name: "Design search with written opinion (Optional)", officialFee: 0, description: "Optional service"},
				{name: "Design filing with early publication", officialFee: 1000, description: "Inclusive of Govt Fees"},
				{name: "Response to Examination Report", officialFee: 0, description: "If objections are raised"},
				{name: "Hearing attendance and submission", officialFee: 0, description: "If required"},
			},
		},
		{
			key:  "copyright",
			name: "Copyright",
			icon: "©️",
			note: "Payment shall be made stage wise. GST will be charged separately.",
			subs: []subserviceDef{
				{name: "Copyright filing", officialFee: 500, description: "Copyright filing at CRO"},
				{name: "Response to objection", officialFee: 0, description: "Filing response to objection"},
				{name: "Hearing attendance and submission", officialFee: 0, description: "If required"},
			},
		},
	}
}

// templateDefs returns the per-category template descriptors. Keys match
// the lowercase service keys so a chosen service always resolves to its
// descriptor.
func templateDefs() []templateDef {
	return []templateDef{
		{
			key:   "ip",
			label: "All IP Quotation",
			terms: []string{
				"Payment shall be made in stages as work progresses",
				"GST @18% will be charged on professional fees",
				"TDS @10% will be deducted as per government regulations",
				"Any additional government fees will be billed separately",
				"This quotation is valid for 30 days from the date of issue",
			},
			footer: "Lextria Research - Your trusted IP partner",
		},
		{
			key:   "patent",
			label: "Patent Quotation",
			terms: []string{
				"Includes patent search and filing for one application",
				"Response to examination report billed separately if required",
				"Hearing attendance costs will be quoted separately if needed",
				"GST @18% applicable on professional fees",
				"Additional claims may incur extra charges",
			},
			footer: "Lextria Research - Patent Specialists",
		},
		{
			key:   "trademark",
			label: "Trademark Quotation",
			terms: []string{
				"Includes trademark search and filing for one class",
				"Additional classes will be charged separately",
				"Response to objections billed as additional service",
				"GST @18% applicable on professional fees",
				"Opposition proceedings not included in this quotation",
			},
			footer: "Lextria Research - Trademark Experts",
		},
		{
			key:   "design",
			label: "Design Quotation",
			terms: []string{
				"Includes design search and filing for one application",
				"Response to examination report billed separately if required",
				"Hearing attendance costs will be quoted separately if needed",
				"GST @18% applicable on professional fees",
				"Multiple designs will be charged separately",
			},
			footer: "Lextria Research - Design Protection Specialists",
		},
		{
			key:   "copyright",
			label: "Copyright Quotation",
			terms: []string{
				"Includes copyright filing for one work",
				"Response to objections billed separately if required",
				"GST @18% applicable on professional fees",
				"Additional documentation may require separate charges",
				"Registration timeline subject to government processing times",
			},
			footer: "Lextria Research - Copyright Services",
		},
	}
}
