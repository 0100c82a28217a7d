package seat

import "strings"

// Matches reports whether a record satisfies every non-"all" dimension of
// the selection. Zone, floor and grade match by equality; the date dimension
// matches when the show datetime contains the selected prefix anywhere.
// Records with a missing field never match a concrete selection value.
func Matches(r Record, s Selection) bool {
	if zone := normalizeFilterToken(s.Zone); zone != "" {
		if r.Zone == "" || r.Zone != zone {
			return false
		}
	}
	if floor := normalizeFilterToken(s.Floor); floor != "" {
		if r.Floor == "" || r.Floor != floor {
			return false
		}
	}
	if grade := normalizeFilterToken(s.Grade); grade != "" {
		if r.Grade == "" || r.Grade != grade {
			return false
		}
	}
	if date := normalizeFilterToken(s.DatePrefix); date != "" {
		if r.ShowDateTime == "" || !strings.Contains(r.ShowDateTime, date) {
			return false
		}
	}
	return true
}

// Apply returns the records matching the selection, preserving input order.
func Apply(in []Record, s Selection) []Record {
	if len(in) == 0 {
		return nil
	}
	if s.IsAll() {
		return append([]Record(nil), in...)
	}

	out := make([]Record, 0, len(in))
	for _, r := range in {
		if Matches(r, s) {
			out = append(out, r)
		}
	}
	return out
}

func normalizeFilterToken(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, FilterAll) {
		return ""
	}
	return trimmed
}

// DistinctValues collects the distinct non-empty key values of the table in
// first-occurrence order. It backs the selectable filter option lists.
func DistinctValues(in []Record, key func(Record) string) []string {
	seen := make(map[string]struct{}, len(in))
	var out []string
	for _, r := range in {
		v := key(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Zones returns the distinct zone values in first-occurrence order.
func Zones(in []Record) []string {
	return DistinctValues(in, func(r Record) string { return r.Zone })
}

// Floors returns the distinct floor values in first-occurrence order.
func Floors(in []Record) []string {
	return DistinctValues(in, func(r Record) string { return r.Floor })
}

// Grades returns the distinct grade values in first-occurrence order.
func Grades(in []Record) []string {
	return DistinctValues(in, func(r Record) string { return r.Grade })
}

// DateKeys returns the distinct date buckets in first-occurrence order.
// Records without a usable show datetime contribute nothing.
func DateKeys(in []Record) []string {
	return DistinctValues(in, Record.DateKey)
}

// NoteKeys returns the distinct special-note buckets in first-occurrence
// order, with blank notes folded into the NoteNone bucket.
func NoteKeys(in []Record) []string {
	return DistinctValues(in, Record.NoteKey)
}
