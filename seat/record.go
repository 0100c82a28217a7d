package seat

import "strings"

// FilterAll selects every value of a filter dimension.
const FilterAll = "all"

// NoteNone is the bucket key for seats carrying no special note.
const NoteNone = "no info"

// Date buckets are the leading "MM/DD" portion of the show datetime.
const dateKeyLen = 5

// Record represents a single priced seat from the loaded table.
type Record struct {
	Zone         string  // venue zone, e.g. "Arena A"
	Floor        string  // "floor seating" or a numbered tier
	Grade        string  // ticket class
	Price        float64 // smallest whole currency unit; 0 means unpriced
	ShowDateTime string  // free-form timestamp; "" means unknown
	SpecialNote  string  // free-text annotation; "" means none
}

// Priced reports whether the seat carries a usable price.
// Absent and zero prices are both treated as unpriced.
func (r Record) Priced() bool {
	return r.Price > 0
}

// DateKey returns the date bucket for the seat, or "" when the show
// datetime is missing or too short to carry a date.
func (r Record) DateKey() string {
	if len(r.ShowDateTime) < dateKeyLen {
		return ""
	}
	return r.ShowDateTime[:dateKeyLen]
}

// NoteKey returns the special-note bucket, normalizing blank notes to
// the NoteNone sentinel.
func (r Record) NoteKey() string {
	note := strings.TrimSpace(r.SpecialNote)
	if note == "" {
		return NoteNone
	}
	return note
}

// Selection holds the active filter values, one per dimension.
// Each field is either FilterAll or a concrete observed value.
type Selection struct {
	Zone       string
	Floor      string
	Grade      string
	DatePrefix string
}

// NewSelection returns the default all-"all" selection.
func NewSelection() Selection {
	return Selection{
		Zone:       FilterAll,
		Floor:      FilterAll,
		Grade:      FilterAll,
		DatePrefix: FilterAll,
	}
}

// IsAll reports whether the selection applies no constraints.
func (s Selection) IsAll() bool {
	return normalizeFilterToken(s.Zone) == "" &&
		normalizeFilterToken(s.Floor) == "" &&
		normalizeFilterToken(s.Grade) == "" &&
		normalizeFilterToken(s.DatePrefix) == ""
}
