package services

import (
	"errors"
	"testing"
)

var (
	testPatent = Service{ID: "patent", Name: "Patent Services"}
	testTM     = Service{ID: "trademark", Name: "Trademark Services"}

	testSearch   = Subservice{Name: "Patentability Search", OfficialFee: 1600}
	testFiling   = Subservice{Name: "Provisional Filing", OfficialFee: 1750}
	testTMSearch = Subservice{Name: "TM Search", OfficialFee: 0}
)

func TestRegistryUpsert_Insert(t *testing.T) {
	var r Registry

	entry := r.Upsert(testPatent, testSearch, 5000, 300)

	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
	if entry.Total != 6900 {
		t.Errorf("Total = %v, want 6900", entry.Total)
	}
	if entry.ServiceName != "Patent Services" {
		t.Errorf("ServiceName = %q, want 'Patent Services'", entry.ServiceName)
	}
}

func TestRegistryUpsert_UpdateKeepsPosition(t *testing.T) {
	var r Registry
	r.Upsert(testPatent, testSearch, 5000, 0)
	r.Upsert(testPatent, testFiling, 3000, 0)

	// Re-confirming the first pair must update it in place, not append.
	entry := r.Upsert(testPatent, testSearch, 7000, 500)

	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	entries := r.Entries()
	if entries[0].Subservice != "Patentability Search" {
		t.Errorf("entry 0 = %q, want the updated pair to keep position 0", entries[0].Subservice)
	}
	if entries[0].ProfessionalFee != 7000 || entries[0].MiscFee != 500 {
		t.Errorf("entry 0 fees = (%v, %v), want (7000, 500)",
			entries[0].ProfessionalFee, entries[0].MiscFee)
	}
	if entry.Total != 1600+7000+500 {
		t.Errorf("Total = %v, want %v", entry.Total, 1600+7000+500)
	}
}

func TestRegistryUpsert_SameNameDifferentService(t *testing.T) {
	var r Registry
	shared := Subservice{Name: "Renewal", OfficialFee: 1000}

	r.Upsert(testPatent, shared, 2000, 0)
	r.Upsert(testTM, shared, 3000, 0)

	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2 distinct entries for the same subservice name", r.Len())
	}
}

func TestRegistryRemoveAt(t *testing.T) {
	var r Registry
	r.Upsert(testPatent, testSearch, 5000, 0)
	r.Upsert(testPatent, testFiling, 3000, 0)
	r.Upsert(testTM, testTMSearch, 1500, 0)

	removed, err := r.RemoveAt(1)
	if err != nil {
		t.Fatalf("RemoveAt(1) error = %v", err)
	}
	if removed.Subservice != "Provisional Filing" {
		t.Errorf("removed = %q, want 'Provisional Filing'", removed.Subservice)
	}

	entries := r.Entries()
	if len(entries) != 2 {
		t.Fatalf("Len() = %d, want 2", len(entries))
	}
	if entries[0].Subservice != "Patentability Search" || entries[1].Subservice != "TM Search" {
		t.Errorf("entries after removal = [%q, %q], want shift-down order",
			entries[0].Subservice, entries[1].Subservice)
	}
}

func TestRegistryRemoveAt_OutOfRange(t *testing.T) {
	var r Registry
	r.Upsert(testPatent, testSearch, 5000, 0)

	for _, index := range []int{-1, 1, 99} {
		if _, err := r.RemoveAt(index); !errors.Is(err, ErrEntryNotFound) {
			t.Errorf("RemoveAt(%d) error = %v, want ErrEntryNotFound", index, err)
		}
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want registry untouched", r.Len())
	}
}

func TestRegistryIsSelected(t *testing.T) {
	var r Registry
	r.Upsert(testPatent, testSearch, 5000, 0)

	if !r.IsSelected("patent", "Patentability Search") {
		t.Error("IsSelected should report a confirmed pair")
	}
	if r.IsSelected("patent", "Provisional Filing") {
		t.Error("IsSelected should not report an unconfirmed pair")
	}
}

func TestRegistryForCategory(t *testing.T) {
	var r Registry
	r.Upsert(testPatent, testSearch, 5000, 0)
	r.Upsert(testTM, testTMSearch, 1500, 0)
	r.Upsert(testPatent, testFiling, 3000, 0)

	got := r.ForCategory("PATENT")
	if len(got) != 2 {
		t.Fatalf("ForCategory returned %d entries, want 2", len(got))
	}
	if got[0].Subservice != "Patentability Search" || got[1].Subservice != "Provisional Filing" {
		t.Errorf("ForCategory order = [%q, %q], want selection order preserved",
			got[0].Subservice, got[1].Subservice)
	}

	if got := r.ForCategory("copyright"); len(got) != 0 {
		t.Errorf("ForCategory('copyright') returned %d entries, want 0", len(got))
	}
}

func TestRegistryEntries_Copy(t *testing.T) {
	var r Registry
	r.Upsert(testPatent, testSearch, 5000, 0)

	entries := r.Entries()
	entries[0].ProfessionalFee = 99999

	if r.Entries()[0].ProfessionalFee != 5000 {
		t.Error("mutating the returned slice must not affect the registry")
	}
}

func TestRegistryClear(t *testing.T) {
	var r Registry
	r.Upsert(testPatent, testSearch, 5000, 0)
	r.Upsert(testTM, testTMSearch, 1500, 0)

	r.Clear()

	if r.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", r.Len())
	}
}
