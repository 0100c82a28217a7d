package seat

import (
	"sort"
	"strings"
)

// SortField selects which seat column to sort by.
type SortField string

const (
	SortFieldPrice SortField = "price"
	SortFieldZone  SortField = "zone"
	SortFieldFloor SortField = "floor"
	SortFieldGrade SortField = "grade"
	SortFieldDate  SortField = "date"
)

// SortDirection selects ascending or descending sort order.
type SortDirection string

const (
	SortDirectionAsc  SortDirection = "asc"
	SortDirectionDesc SortDirection = "desc"
)

// SortFields lists the seat-table sort fields in cycle order.
var SortFields = []SortField{
	SortFieldPrice,
	SortFieldZone,
	SortFieldFloor,
	SortFieldGrade,
	SortFieldDate,
}

// SortRecords returns a sorted copy of the input seats. Unknown fields fall
// back to price, unknown directions to ascending. The sort is stable, so
// records tied on the sort field keep their load order.
func SortRecords(in []Record, field SortField, dir SortDirection) []Record {
	if len(in) <= 1 {
		return append([]Record(nil), in...)
	}

	field = normalizeSortField(field)
	dir = normalizeSortDirection(dir)

	out := append([]Record(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareRecord(out[i], out[j], field)
		if cmp == 0 {
			return false
		}
		if dir == SortDirectionDesc {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

func normalizeSortField(field SortField) SortField {
	switch strings.ToLower(strings.TrimSpace(string(field))) {
	case string(SortFieldZone):
		return SortFieldZone
	case string(SortFieldFloor):
		return SortFieldFloor
	case string(SortFieldGrade):
		return SortFieldGrade
	case string(SortFieldDate):
		return SortFieldDate
	default:
		return SortFieldPrice
	}
}

func normalizeSortDirection(dir SortDirection) SortDirection {
	switch strings.ToLower(strings.TrimSpace(string(dir))) {
	case string(SortDirectionDesc):
		return SortDirectionDesc
	default:
		return SortDirectionAsc
	}
}

func compareRecord(a, b Record, field SortField) int {
	switch field {
	case SortFieldZone:
		return strings.Compare(a.Zone, b.Zone)
	case SortFieldFloor:
		return strings.Compare(a.Floor, b.Floor)
	case SortFieldGrade:
		return strings.Compare(a.Grade, b.Grade)
	case SortFieldDate:
		return strings.Compare(a.ShowDateTime, b.ShowDateTime)
	default:
		switch {
		case a.Price < b.Price:
			return -1
		case a.Price > b.Price:
			return 1
		default:
			return 0
		}
	}
}
