// Package report renders the aggregated results as text tables,
// HTML tables, and a quarterly bar chart.
package report

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"fecflow/internal/pipeline"
	"fecflow/pkg/currency"
)

// Table is a labeled table ready for rendering: a title, relabeled
// column headers, pre-formatted cells, and a source-citation footer.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Footer  string
}

// Text renders the table with display-width-aligned columns.
func (t *Table) Text() string {
	colCount := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	// Column widths by display width, not byte length.
	widths := make([]int, colCount)

	measure := func(row []string) {
		for i := 0; i < len(row) && i < colCount; i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	measure(t.Headers)

	for _, row := range t.Rows {
		measure(row)
	}

	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(t.Title)
		sb.WriteString("\n")
	}

	writeRow := func(row []string) {
		sb.WriteString("|")

		for j := 0; j < colCount; j++ {
			content := ""
			if j < len(row) {
				content = row[j]
			}

			sb.WriteString(" ")
			sb.WriteString(content)

			if padding := widths[j] - runewidth.StringWidth(content); padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}

			sb.WriteString(" |")
		}

		sb.WriteString("\n")
	}

	writeRow(t.Headers)

	sb.WriteString("|")

	for j := 0; j < colCount; j++ {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", widths[j]))
		sb.WriteString(" |")
	}

	sb.WriteString("\n")

	for _, row := range t.Rows {
		writeRow(row)
	}

	if t.Footer != "" {
		sb.WriteString(t.Footer)
		sb.WriteString("\n")
	}

	return sb.String()
}

// PartyCashTable builds the top-parties-by-cash table.
func PartyCashTable(ranked []pipeline.PartyCash, sourceNote string) *Table {
	t := &Table{
		Title:   "Cash on Hand by Party",
		Headers: []string{"Party", "Candidates", "Cash on Hand"},
		Footer:  sourceNote,
	}

	for _, row := range ranked {
		t.Rows = append(t.Rows, []string{
			row.Party.String(),
			strconv.Itoa(row.Candidates),
			currency.Format(row.Total),
		})
	}

	return t
}

// CrosstabTable builds the wide-form quarter-by-party count table.
func CrosstabTable(ct *pipeline.Crosstab, title, sourceNote string) *Table {
	headers := []string{"Quarter"}
	for _, p := range ct.Parties {
		headers = append(headers, p.String())
	}

	t := &Table{
		Title:   title,
		Headers: headers,
		Footer:  sourceNote,
	}

	for _, q := range ct.Quarters {
		row := []string{q}
		for _, p := range ct.Parties {
			row = append(row, strconv.Itoa(ct.Count(q, p)))
		}

		t.Rows = append(t.Rows, row)
	}

	return t
}

// TotalsTable builds the pre-join raw-contributions summary.
func TotalsTable(totals pipeline.Totals, sourceNote string) *Table {
	return &Table{
		Title:   "All Reported Contributions",
		Headers: []string{"Contributions", "Total Amount"},
		Rows: [][]string{{
			strconv.Itoa(totals.Count),
			currency.Format(totals.Amount),
		}},
		Footer: sourceNote,
	}
}
