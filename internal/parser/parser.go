// Package parser reads the pipe-delimited bulk extracts. Each
// extract has a fixed positional schema with no header row; a Spec
// names the subset of positions a load cares about and everything
// else is dropped unread.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Parser errors.
var ErrUnknownColumnType = errors.New("unknown column type")

// ColumnType is the primitive type a selected column is coerced to.
type ColumnType int

// Supported column types.
const (
	String ColumnType = iota
	Decimal
	Date
)

// Column selects one positional field from an extract and gives it a
// semantic name.
type Column struct {
	Pos  int // 1-based position in the extract
	Name string
	Type ColumnType
}

// Spec declares the selected columns for one extract.
type Spec struct {
	Name    string
	Columns []Column
}

// maxPos returns the highest selected position; rows shorter than
// this are skipped.
func (s *Spec) maxPos() int {
	max := 0
	for _, c := range s.Columns {
		if c.Pos > max {
			max = c.Pos
		}
	}

	return max
}

// Record is one parsed row, keyed by semantic column name. A field
// absent from a typed map failed coercion and was left at its absent
// value.
type Record struct {
	Strings  map[string]string
	Decimals map[string]decimal.Decimal
	Dates    map[string]time.Time
}

// Stats reports what a load did with its input. Coercion failures
// never abort the load; they are counted per column and the row is
// kept with the field absent.
type Stats struct {
	Rows             int
	Skipped          int
	CoercionFailures map[string]int
}

// Parser parses pipe-delimited positional records against a Spec.
type Parser struct {
	spec *Spec
}

// NewParser creates a parser for the given spec.
func NewParser(spec *Spec) *Parser {
	return &Parser{spec: spec}
}

// Parse reads all rows from r. The delimiter is a literal pipe with
// no escaping; double quotes in the data are ordinary characters and
// pass through untouched.
func (p *Parser) Parse(r io.Reader) ([]Record, *Stats, error) {
	stats := &Stats{CoercionFailures: make(map[string]int)}
	minFields := p.spec.maxPos()

	var records []Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) < minFields {
			stats.Skipped++

			continue
		}

		rec := Record{
			Strings:  make(map[string]string),
			Decimals: make(map[string]decimal.Decimal),
			Dates:    make(map[string]time.Time),
		}

		for _, col := range p.spec.Columns {
			raw := strings.TrimSpace(fields[col.Pos-1])

			switch col.Type {
			case String:
				rec.Strings[col.Name] = raw
			case Decimal:
				if raw == "" {
					continue
				}

				d, err := decimal.NewFromString(raw)
				if err != nil {
					stats.CoercionFailures[col.Name]++

					continue
				}

				rec.Decimals[col.Name] = d
			case Date:
				if raw == "" {
					continue
				}

				t, err := parseDate(raw)
				if err != nil {
					stats.CoercionFailures[col.Name]++

					continue
				}

				rec.Dates[col.Name] = t
			default:
				return nil, nil, fmt.Errorf("%w: column %s", ErrUnknownColumnType, col.Name)
			}
		}

		records = append(records, rec)
		stats.Rows++
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read %s extract: %w", p.spec.Name, err)
	}

	return records, stats, nil
}

// parseDate accepts the extract's native MMDDYYYY form and falls
// back to ISO dates, which appear in resubmitted filings.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("01022006", raw); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", raw)
}
