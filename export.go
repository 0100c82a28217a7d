package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/torysaewoo/ticketb/seat"
)

// ExportSnapshot is the exportable view of the current analysis: the active
// selection plus every dimension aggregate computed from the filtered set.
type ExportSnapshot struct {
	Source    string              `json:"source"`
	Selection seat.Selection      `json:"selection"`
	Overall   seat.PriceStats     `json:"overall"`
	Zones     []seat.AggregateRow `json:"zones"`
	Floors    []seat.AggregateRow `json:"floors"`
	Grades    []seat.AggregateRow `json:"grades"`
	Notes     []seat.AggregateRow `json:"notes"`
	Dates     []seat.AggregateRow `json:"dates"`
}

// ExportCSV writes every dimension aggregate as one flat CSV, a row per
// group tagged with its dimension.
func ExportCSV(path string, snapshot ExportSnapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv export: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write([]string{"dimension", "key", "count", "avg", "min", "max", "median"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	sections := []struct {
		name string
		rows []seat.AggregateRow
	}{
		{name: "zone", rows: snapshot.Zones},
		{name: "floor", rows: snapshot.Floors},
		{name: "grade", rows: snapshot.Grades},
		{name: "note", rows: snapshot.Notes},
		{name: "date", rows: snapshot.Dates},
	}
	for _, section := range sections {
		for _, row := range section.rows {
			record := []string{
				section.name,
				row.Key,
				fmt.Sprintf("%d", row.Count),
				fmt.Sprintf("%.0f", row.Avg),
				fmt.Sprintf("%.0f", row.Min),
				fmt.Sprintf("%.0f", row.Max),
				fmt.Sprintf("%.0f", row.Median),
			}
			if err := w.Write(record); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv export: %w", err)
	}
	return nil
}

// ExportJSON writes the full snapshot as indented JSON.
func ExportJSON(path string, snapshot ExportSnapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create json export: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		return fmt.Errorf("encode json export: %w", err)
	}
	return nil
}

// BuildExportPath names the export after the source and a timestamp so
// repeated exports never clobber each other.
func BuildExportPath(homeDir, source, ext string, now time.Time) string {
	sanitized := sanitizeFilename(sourceBaseName(source))
	if sanitized == "" {
		sanitized = "seats"
	}
	if ext == "" {
		ext = "csv"
	}
	name := fmt.Sprintf("ticketb-export-%s-%s.%s", sanitized, now.Format("20060102-150405"), ext)
	return filepath.Join(homeDir, name)
}

// sourceBaseName strips directory or URL structure down to the last path
// segment without its extension.
func sourceBaseName(source string) string {
	base := source
	if i := strings.LastIndexAny(base, "/\\"); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return base
}

func sanitizeFilename(raw string) string {
	trimmed := strings.TrimSpace(strings.ToLower(raw))
	if trimmed == "" {
		return ""
	}

	var b strings.Builder
	prevDash := false
	for _, r := range trimmed {
		isAlphaNum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlphaNum {
			b.WriteRune(r)
			prevDash = false
			continue
		}
		if !prevDash {
			b.WriteByte('-')
			prevDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if len(out) > 40 {
		out = strings.Trim(out[:40], "-")
	}
	return out
}
