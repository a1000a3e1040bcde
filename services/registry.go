package services

import (
	"errors"
	"strings"
)

// ErrEntryNotFound is returned when a removal index is out of range.
var ErrEntryNotFound = errors.New("selection entry not found")

// Entry is one confirmed (service, subservice) selection with its fee
// overrides. Total is always kept equal to the sum of the three fee
// components.
type Entry struct {
	ServiceID       string  `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	Subservice      string  `json:"subservice"`
	OfficialFee     float64 `json:"officialFee"`
	ProfessionalFee float64 `json:"professionalFee"`
	MiscFee         float64 `json:"miscFee"`
	Total           float64 `json:"total"`
}

// Registry holds the ordered set of confirmed selections. Entries are
// uniquely identified by the (service id, subservice name) pair; confirming
// the same pair again updates the existing entry in place.
//
// Registry is not safe for concurrent use on its own; Session serializes
// access to it.
type Registry struct {
	entries []Entry
}

// Upsert inserts or updates the entry for the given pair. An existing entry
// keeps its position; a new entry is appended. The returned entry carries
// the recomputed total.
func (r *Registry) Upsert(svc Service, sub Subservice, professionalFee, miscFee float64) Entry {
	total := sub.OfficialFee + professionalFee + miscFee
	for i := range r.entries {
		if r.entries[i].ServiceID == svc.ID && r.entries[i].Subservice == sub.Name {
			r.entries[i].OfficialFee = sub.OfficialFee
			r.entries[i].ProfessionalFee = professionalFee
			r.entries[i].MiscFee = miscFee
			r.entries[i].Total = total
			return r.entries[i]
		}
	}

	entry := Entry{
		ServiceID:       svc.ID,
		ServiceName:     svc.Name,
		Subservice:      sub.Name,
		OfficialFee:     sub.OfficialFee,
		ProfessionalFee: professionalFee,
		MiscFee:         miscFee,
		Total:           total,
	}
	r.entries = append(r.entries, entry)
	return entry
}

// RemoveAt removes the entry at the given position, shifting subsequent
// entries down. It returns the removed entry, or ErrEntryNotFound when the
// index is out of range.
func (r *Registry) RemoveAt(index int) (Entry, error) {
	if index < 0 || index >= len(r.entries) {
		return Entry{}, ErrEntryNotFound
	}
	removed := r.entries[index]
	r.entries = append(r.entries[:index], r.entries[index+1:]...)
	return removed, nil
}

// Clear empties the registry.
func (r *Registry) Clear() {
	r.entries = nil
}

// IsSelected reports whether the pair is currently in the registry.
func (r *Registry) IsSelected(serviceID, subserviceName string) bool {
	for _, e := range r.entries {
		if e.ServiceID == serviceID && e.Subservice == subserviceName {
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns a copy of the registry contents in selection order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// ForCategory returns a copy of the entries whose lowercase service id
// matches the given category key.
func (r *Registry) ForCategory(key string) []Entry {
	key = strings.ToLower(key)
	var out []Entry
	for _, e := range r.entries {
		if strings.ToLower(e.ServiceID) == key {
			out = append(out, e)
		}
	}
	return out
}
