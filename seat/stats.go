package seat

import "sort"

// PriceStats holds the aggregate price figures for one group of seats.
type PriceStats struct {
	Count  int     // all seats in the group, unpriced included
	Avg    float64 // mean of priced seats; 0 when none
	Min    float64 // lowest priced seat; 0 when none
	Max    float64 // highest priced seat; 0 when none
	Median float64 // see StatsFor for the even-length tie-break
}

// StatsFor computes aggregate price figures over one group of seats.
// Unpriced seats count toward Count but are excluded from every price
// figure. The median is the element at index n/2 of the ascending priced
// list, so even-length groups report the upper middle value rather than
// the mean of the two middle values.
func StatsFor(records []Record) PriceStats {
	stats := PriceStats{Count: len(records)}

	var prices []float64
	var sum float64
	for _, r := range records {
		if !r.Priced() {
			continue
		}
		prices = append(prices, r.Price)
		sum += r.Price
	}
	if len(prices) == 0 {
		return stats
	}

	sort.Float64s(prices)
	stats.Min = prices[0]
	stats.Max = prices[len(prices)-1]
	stats.Avg = sum / float64(len(prices))
	stats.Median = prices[len(prices)/2]
	return stats
}

// GroupBy partitions records by the given key function. Every record lands
// in exactly one group, keyed by whatever the function returns, including "".
func GroupBy(records []Record, key func(Record) string) map[string][]Record {
	groups := make(map[string][]Record)
	for _, r := range records {
		k := key(r)
		groups[k] = append(groups[k], r)
	}
	return groups
}

// AggregateRow is one output row of a grouped price view.
type AggregateRow struct {
	Key string
	PriceStats
}

// aggregate runs GroupBy + StatsFor and returns one row per group,
// sorted descending by average price. Ties break on the key so repeated
// runs over the same table render identically.
func aggregate(records []Record, key func(Record) string) []AggregateRow {
	groups := GroupBy(records, key)
	rows := make([]AggregateRow, 0, len(groups))
	for k, members := range groups {
		rows = append(rows, AggregateRow{Key: k, PriceStats: StatsFor(members)})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Avg != rows[j].Avg {
			return rows[i].Avg > rows[j].Avg
		}
		return rows[i].Key < rows[j].Key
	})
	return rows
}

// ZonePriceStats aggregates the table per zone, highest average first.
func ZonePriceStats(records []Record) []AggregateRow {
	return aggregate(records, func(r Record) string { return r.Zone })
}

// FloorPriceStats aggregates the table per floor, highest average first.
func FloorPriceStats(records []Record) []AggregateRow {
	return aggregate(records, func(r Record) string { return r.Floor })
}

// GradePriceStats aggregates the table per grade, highest average first.
func GradePriceStats(records []Record) []AggregateRow {
	return aggregate(records, func(r Record) string { return r.Grade })
}

// NotePriceStats aggregates the table per special-note bucket, highest
// average first. Blank notes land in the NoteNone bucket.
func NotePriceStats(records []Record) []AggregateRow {
	return aggregate(records, Record.NoteKey)
}

// DatePriceStats aggregates the table per date bucket, sorted ascending by
// the bucket key so dates read chronologically. Records without a usable
// show datetime fall into the "" bucket, which is dropped from the view.
func DatePriceStats(records []Record) []AggregateRow {
	groups := GroupBy(records, Record.DateKey)
	rows := make([]AggregateRow, 0, len(groups))
	for k, members := range groups {
		if k == "" {
			continue
		}
		rows = append(rows, AggregateRow{Key: k, PriceStats: StatsFor(members)})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
	return rows
}

// CrossTab holds per-cell price stats for every observed floor×grade pair.
// Floors and Grades keep the first-occurrence order of the source records;
// combinations never observed have no cell at all.
type CrossTab struct {
	Floors []string
	Grades []string
	cells  map[string]map[string]PriceStats
}

// Cell returns the stats for a floor×grade pair and whether any seat was
// observed there. Absent combinations report no data, not a zero row.
func (ct CrossTab) Cell(floor, grade string) (PriceStats, bool) {
	row, ok := ct.cells[floor]
	if !ok {
		return PriceStats{}, false
	}
	stats, ok := row[grade]
	return stats, ok
}

// FloorGradeCrossTab cross-tabulates the records by floor and grade.
func FloorGradeCrossTab(records []Record) CrossTab {
	ct := CrossTab{
		Floors: Floors(records),
		Grades: Grades(records),
		cells:  make(map[string]map[string]PriceStats),
	}

	byPair := make(map[string]map[string][]Record)
	for _, r := range records {
		if r.Floor == "" || r.Grade == "" {
			continue
		}
		if byPair[r.Floor] == nil {
			byPair[r.Floor] = make(map[string][]Record)
		}
		byPair[r.Floor][r.Grade] = append(byPair[r.Floor][r.Grade], r)
	}

	for floor, grades := range byPair {
		ct.cells[floor] = make(map[string]PriceStats, len(grades))
		for grade, members := range grades {
			ct.cells[floor][grade] = StatsFor(members)
		}
	}
	return ct
}

// PriceRange returns the lowest and highest price across the priced seats
// of the given set. Both are 0 when no seat is priced. Heat bucketing feeds
// it the currently filtered set, so intensity is always filter-relative.
func PriceRange(records []Record) (lo, hi float64) {
	first := true
	for _, r := range records {
		if !r.Priced() {
			continue
		}
		if first {
			lo, hi = r.Price, r.Price
			first = false
			continue
		}
		if r.Price < lo {
			lo = r.Price
		}
		if r.Price > hi {
			hi = r.Price
		}
	}
	return lo, hi
}
