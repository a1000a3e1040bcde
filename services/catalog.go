// Package services provides the quotation composition core: the service
// catalog snapshot, the selection registry, per-row edit state, fee
// aggregation, formatting, and document generation.
package services

import (
	"fmt"
	"strings"

	"github.com/pocketbase/pocketbase"
)

// Subservice is a single catalog offering under a service. The official fee
// is fixed by the catalog and is never editable.
type Subservice struct {
	Name        string  `json:"name"`
	OfficialFee float64 `json:"officialFee"`
	Description string  `json:"description,omitempty"`
}

// Service is a category of IP service offerings (patent, trademark, ...).
type Service struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Icon        string       `json:"icon,omitempty"`
	Note        string       `json:"note,omitempty"`
	Subservices []Subservice `json:"subservices"`
}

// Key returns the lowercase category key for the service, used for
// selection filtering and template lookup.
func (s Service) Key() string {
	return strings.ToLower(s.ID)
}

// Catalog is an immutable snapshot of the seeded services/subservices
// collections, loaded once at serve time.
type Catalog struct {
	services []Service
	byKey    map[string]int
}

// NewCatalog builds a catalog from an ordered service list.
func NewCatalog(svcs []Service) *Catalog {
	c := &Catalog{
		services: svcs,
		byKey:    make(map[string]int, len(svcs)),
	}
	for i, s := range svcs {
		c.byKey[s.Key()] = i
	}
	return c
}

// LoadCatalog reads the services and subservices collections into an
// in-memory snapshot, preserving the seeded sort order.
func LoadCatalog(app *pocketbase.PocketBase) (*Catalog, error) {
	serviceRecords, err := app.FindRecordsByFilter("services", "sort_order >= 0", "sort_order", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("load catalog: query services: %w", err)
	}

	var svcs []Service
	for _, sr := range serviceRecords {
		subRecords, err := app.FindRecordsByFilter(
			"subservices",
			"service = {:serviceId}",
			"sort_order",
			0,
			0,
			map[string]any{"serviceId": sr.Id},
		)
		if err != nil {
			return nil, fmt.Errorf("load catalog: query subservices for %s: %w", sr.GetString("key"), err)
		}

		svc := Service{
			ID:   sr.GetString("key"),
			Name: sr.GetString("name"),
			Icon: sr.GetString("icon"),
			Note: sr.GetString("note"),
		}
		for _, sub := range subRecords {
			svc.Subservices = append(svc.Subservices, Subservice{
				Name:        sub.GetString("name"),
				OfficialFee: sub.GetFloat("official_fee"),
				Description: sub.GetString("description"),
			})
		}
		svcs = append(svcs, svc)
	}

	return NewCatalog(svcs), nil
}

// Services returns the ordered service list.
func (c *Catalog) Services() []Service {
	return c.services
}

// ServiceByKey looks up a service by its lowercase category key.
func (c *Catalog) ServiceByKey(key string) (Service, bool) {
	i, ok := c.byKey[strings.ToLower(key)]
	if !ok {
		return Service{}, false
	}
	return c.services[i], true
}

// SubserviceAt returns the subservice at the given index within a service.
func (c *Catalog) SubserviceAt(key string, index int) (Service, Subservice, bool) {
	svc, ok := c.ServiceByKey(key)
	if !ok || index < 0 || index >= len(svc.Subservices) {
		return Service{}, Subservice{}, false
	}
	return svc, svc.Subservices[index], true
}
