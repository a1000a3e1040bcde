package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotationPDF creates a PDF rendition of a category quotation
// using maroto/v2. It returns the raw PDF bytes or an error.
func GenerateQuotationPDF(q Quotation) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuotationHeader(m, q)
	addQuotationTableHeader(m)
	for _, line := range q.Lines {
		addQuotationTableRow(m, line)
	}
	addQuotationSummary(m, q)
	addQuotationTerms(m, q)
	addQuotationFooter(m, q)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuotationHeader adds the category label, quotation number/date and
// client block to the PDF.
func addQuotationHeader(m core.Maroto, q Quotation) {
	// Title row
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(q.CategoryLabel, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	// Quotation number and date row
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Quotation No: %s", q.QuotationNumber), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", q.QuotationDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	// Client block
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("To: %s", q.ClientName), props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New(q.ClientAddress, props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addQuotationTableHeader adds the column header row for the line-item
// table.
func addQuotationTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(
				text.New("#", headerText),
			).WithStyle(&headerCell),
			col.New(4).Add(
				text.New("Particulars", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Official Fee", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Professional Fee", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Reimb.", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Total", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addQuotationTableRow adds a single line item to the table.
func addQuotationTableRow(m core.Maroto, line QuotationLine) {
	baseText := props.Text{
		Size:  8,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", line.SrNo), baseText)),
			col.New(4).Add(text.New(line.Name, leftText)),
			col.New(2).Add(text.New(line.OfficialFee, rightText)),
			col.New(2).Add(text.New(line.ProfessionalFee, rightText)),
			col.New(1).Add(text.New(line.MiscFee, rightText)),
			col.New(2).Add(text.New(line.Total, rightText)),
		),
	)
}

// addQuotationSummary adds the subtotal, tax, and grand total rows.
func addQuotationSummary(m core.Maroto, q Quotation) {
	// Spacer before summary
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	summary := []struct {
		label string
		value string
	}{
		{"Subtotal", q.Subtotal},
		{"GST (18%)", q.GST},
		{"TDS (10%)", q.TDS},
		{"Grand Total", q.GrandTotal},
	}
	for _, s := range summary {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(
					text.New(s.label, labelStyle),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(s.value, valueStyle),
				).WithStyle(summaryCell),
			),
		)
	}
}

// addQuotationFooter adds the category's footer line, if any.
func addQuotationFooter(m core.Maroto, q Quotation) {
	if q.Footer == "" {
		return
	}

	m.AddRows(row.New(8))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(q.Footer, props.Text{
					Size:  8,
					Style: fontstyle.Italic,
					Align: align.Center,
					Color: &props.Color{Red: 120, Green: 120, Blue: 120},
				}),
			),
		),
	)
}

// addQuotationTerms adds the category's fixed terms and conditions list.
func addQuotationTerms(m core.Maroto, q Quotation) {
	if len(q.Terms) == 0 {
		return
	}

	m.AddRows(row.New(6))
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New("Terms & Conditions", props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	for i, term := range q.Terms {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New(fmt.Sprintf("%d. %s", i+1, term), props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 80, Green: 80, Blue: 80},
					}),
				),
			),
		)
	}
}
