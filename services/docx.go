package services

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// ErrRender is the sentinel for template binding/rendering failures:
// malformed archives, missing document parts, or unresolved placeholders.
var ErrRender = errors.New("template render failed")

const documentPart = "word/document.xml"

// leftoverTagRe matches any placeholder tag that survived substitution.
var leftoverTagRe = regexp.MustCompile(`\{[#/]?[A-Za-z.][A-Za-z0-9.]*\}`)

// RenderDocx binds a quotation into a .docx template and returns the
// rendered document. The template uses docxtemplater-style placeholders:
// scalar tags like {clientName}, a repeating {#services}...{/services}
// block with per-line tags (srNo, name, officialFee, professionalFee,
// miscFee, total), and a repeating {#terms}...{/terms} block where {.} is
// the term text.
//
// The function is a pure transform: template bytes in, document bytes out.
// Any leftover placeholder after binding is reported as a render error so
// a template/binding mismatch never produces a silently broken document.
func RenderDocx(template []byte, q Quotation) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(template), int64(len(template)))
	if err != nil {
		return nil, fmt.Errorf("%w: not a valid docx archive: %v", ErrRender, err)
	}

	var docXML string
	found := false
	for _, f := range zr.File {
		if f.Name == documentPart {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("%w: open %s: %v", ErrRender, documentPart, err)
			}
			raw, err := io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return nil, fmt.Errorf("%w: read %s: %v", ErrRender, documentPart, err)
			}
			docXML = string(raw)
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: template has no %s", ErrRender, documentPart)
	}

	rendered, err := bindDocument(docXML, q)
	if err != nil {
		return nil, err
	}

	// Rebuild the archive, swapping in the rendered document part and
	// copying everything else verbatim.
	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	for _, f := range zr.File {
		w, err := zw.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: rewrite %s: %v", ErrRender, f.Name, err)
		}
		if f.Name == documentPart {
			if _, err := w.Write([]byte(rendered)); err != nil {
				return nil, fmt.Errorf("%w: write %s: %v", ErrRender, f.Name, err)
			}
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: open %s: %v", ErrRender, f.Name, err)
		}
		if _, err := io.Copy(w, rc); err != nil {
			rc.Close()
			return nil, fmt.Errorf("%w: copy %s: %v", ErrRender, f.Name, err)
		}
		rc.Close()
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: finalize archive: %v", ErrRender, err)
	}

	return out.Bytes(), nil
}

// bindDocument expands the repeating blocks and substitutes the scalar
// placeholders in the document XML.
func bindDocument(doc string, q Quotation) (string, error) {
	doc = expandBlock(doc, "services", len(q.Lines), func(body string, i int) string {
		line := q.Lines[i]
		r := strings.NewReplacer(
			"{srNo}", strconv.Itoa(line.SrNo),
			"{name}", escapeXML(line.Name),
			"{officialFee}", line.OfficialFee,
			"{professionalFee}", line.ProfessionalFee,
			"{miscFee}", line.MiscFee,
			"{total}", line.Total,
		)
		return r.Replace(body)
	})

	doc = expandBlock(doc, "terms", len(q.Terms), func(body string, i int) string {
		return strings.ReplaceAll(body, "{.}", escapeXML(q.Terms[i]))
	})

	scalars := strings.NewReplacer(
		"{clientName}", escapeXML(q.ClientName),
		"{clientAddress}", escapeXML(q.ClientAddress),
		"{quotationNumber}", q.QuotationNumber,
		"{quotationDate}", q.QuotationDate,
		"{subtotal}", q.Subtotal,
		"{gst}", q.GST,
		"{tds}", q.TDS,
		"{grandTotal}", q.GrandTotal,
		"{footer}", escapeXML(q.Footer),
	)
	doc = scalars.Replace(doc)

	if tag := leftoverTagRe.FindString(doc); tag != "" {
		return "", fmt.Errorf("%w: unresolved placeholder %s", ErrRender, tag)
	}
	return doc, nil
}

// expandBlock repeats the {#name}...{/name} section count times, running
// fill over each copy. A template without the block is left untouched.
func expandBlock(doc, name string, count int, fill func(body string, i int) string) string {
	re := regexp.MustCompile(`(?s)\{#` + regexp.QuoteMeta(name) + `\}(.*?)\{/` + regexp.QuoteMeta(name) + `\}`)
	return re.ReplaceAllStringFunc(doc, func(match string) string {
		body := re.FindStringSubmatch(match)[1]
		var b strings.Builder
		for i := 0; i < count; i++ {
			b.WriteString(fill(body, i))
		}
		return b.String()
	})
}

// escapeXML escapes the five XML special characters in user-supplied text
// before it is spliced into the document part.
func escapeXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}
