package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/torysaewoo/ticketb/seat"
)

// Diagnostic reports one malformed field encountered while parsing.
// The row itself is still loaded with the field zeroed out.
type Diagnostic struct {
	Line    int
	Field   string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s: %s", d.Line, d.Field, d.Message)
}

// columnIndexes maps recognized seat fields to header positions.
// -1 means the column is absent from the source.
type columnIndexes struct {
	zone  int
	floor int
	grade int
	price int
	date  int
	note  int
}

// Parse reads a delimited seat table. Malformed rows pass through with
// zero-value fields plus a diagnostic; only an empty table or an
// unrecognizable header is a hard failure. CSV syntax errors in one row,
// such as a stray quote, spoil that row alone, not the table.
func Parse(r io.Reader) ([]seat.Record, []Diagnostic, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrEmptyTable
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read seat table header: %w", err)
	}

	cols, ok := resolveColumns(header)
	if !ok {
		return nil, nil, ErrNoColumns
	}

	var records []seat.Record
	var diags []Diagnostic
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, nil, fmt.Errorf("read seat table: %w", err)
			}
			// The reader resumes on the next line, so the broken row still
			// passes through with whatever fields survived zeroed or kept.
			diags = append(diags, Diagnostic{
				Line:    parseErr.Line,
				Field:   "row",
				Message: parseErr.Err.Error(),
			})
			record, rowDiags := parseRow(row, cols, parseErr.Line)
			records = append(records, record)
			diags = append(diags, rowDiags...)
			continue
		}

		line, _ := cr.FieldPos(0)
		record, rowDiags := parseRow(row, cols, line)
		records = append(records, record)
		diags = append(diags, rowDiags...)
	}
	if len(records) == 0 {
		return nil, nil, ErrEmptyTable
	}
	return records, diags, nil
}

func parseRow(row []string, cols columnIndexes, line int) (seat.Record, []Diagnostic) {
	record := seat.Record{
		Zone:         cell(row, cols.zone),
		Floor:        cell(row, cols.floor),
		Grade:        cell(row, cols.grade),
		ShowDateTime: cell(row, cols.date),
		SpecialNote:  cell(row, cols.note),
	}

	var diags []Diagnostic
	if raw := cell(row, cols.price); raw != "" {
		price, err := parsePrice(raw)
		if err != nil {
			diags = append(diags, Diagnostic{
				Line:    line,
				Field:   "price",
				Message: err.Error(),
			})
		} else {
			record.Price = price
		}
	}
	return record, diags
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parsePrice accepts plain numbers plus common currency decorations
// such as "¥150,000". Negative and non-finite values are rejected.
func parsePrice(raw string) (float64, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "¥")
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, nil
	}

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("not a finite number: %q", raw)
	}
	if price < 0 {
		return 0, fmt.Errorf("negative price: %q", raw)
	}
	return price, nil
}

func resolveColumns(header []string) (columnIndexes, bool) {
	cols := columnIndexes{zone: -1, floor: -1, grade: -1, price: -1, date: -1, note: -1}
	found := false

	for i, name := range header {
		switch normalizeHeader(name) {
		case "zone", "block":
			cols.zone = i
		case "floor", "tier":
			cols.floor = i
		case "grade", "class", "seatgrade":
			cols.grade = i
		case "price", "amount", "priceyen":
			cols.price = i
		case "showdatetime", "datetime", "showdate", "date":
			cols.date = i
		case "specialnote", "note", "remark", "remarks":
			cols.note = i
		default:
			continue
		}
		found = true
	}
	return cols, found
}

func normalizeHeader(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
