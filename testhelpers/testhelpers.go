// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/Thanush1010/lex-quotation/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestService creates a service record and returns it.
func CreateTestService(t *testing.T, app *pocketbase.PocketBase, key, name string, sortOrder int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("services")
	if err != nil {
		t.Fatalf("failed to find services collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("key", key)
	record.Set("name", name)
	record.Set("sort_order", sortOrder)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test service: %v", err)
	}

	return record
}

// CreateTestSubservice creates a subservice record linked to a service.
func CreateTestSubservice(t *testing.T, app *pocketbase.PocketBase, serviceID, name string, officialFee float64, sortOrder int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("subservices")
	if err != nil {
		t.Fatalf("failed to find subservices collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("service", serviceID)
	record.Set("name", name)
	record.Set("official_fee", officialFee)
	record.Set("sort_order", sortOrder)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test subservice: %v", err)
	}

	return record
}

// CreateTestDescriptor creates a quotation template descriptor record.
func CreateTestDescriptor(t *testing.T, app *pocketbase.PocketBase, key, label string, terms []string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotation_templates")
	if err != nil {
		t.Fatalf("failed to find quotation_templates collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("key", key)
	record.Set("label", label)
	record.Set("terms", terms)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test descriptor: %v", err)
	}

	return record
}

// BuildTestDocx assembles a minimal docx archive whose word/document.xml
// holds the given body markup.
func BuildTestDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	entries := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
		"word/document.xml":   documentXML,
	}
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close docx archive: %v", err)
	}
	return buf.Bytes()
}
