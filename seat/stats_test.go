package seat

import (
	"math/rand"
	"testing"
)

func TestStatsForEmpty(t *testing.T) {
	stats := StatsFor(nil)
	if stats.Count != 0 || stats.Avg != 0 || stats.Min != 0 || stats.Max != 0 || stats.Median != 0 {
		t.Fatalf("unexpected stats for empty group: %+v", stats)
	}
}

func TestStatsForCountsUnpricedSeats(t *testing.T) {
	stats := StatsFor([]Record{
		{Price: 100000},
		{Price: 0},
		{Price: 200000},
	})

	if stats.Count != 3 {
		t.Fatalf("expected count 3 including unpriced seats, got %d", stats.Count)
	}
	if stats.Avg != 150000 {
		t.Fatalf("expected avg over priced seats only, got %v", stats.Avg)
	}
	if stats.Min != 100000 || stats.Max != 200000 {
		t.Fatalf("unexpected min/max: %+v", stats)
	}
}

func TestStatsForAllUnpriced(t *testing.T) {
	stats := StatsFor([]Record{{Price: 0}, {Price: 0}})
	if stats.Count != 2 {
		t.Fatalf("expected count 2, got %d", stats.Count)
	}
	if stats.Avg != 0 || stats.Min != 0 || stats.Max != 0 || stats.Median != 0 {
		t.Fatalf("expected zero price figures for all-unpriced group: %+v", stats)
	}
}

// Even-length groups intentionally report the upper middle element, not the
// mean of the two middle values. The off-by-one is inherited behavior.
func TestStatsForMedianUpperMiddle(t *testing.T) {
	odd := StatsFor([]Record{{Price: 40}, {Price: 10}, {Price: 20}})
	if odd.Median != 20 {
		t.Fatalf("expected odd median 20, got %v", odd.Median)
	}

	even := StatsFor([]Record{{Price: 40}, {Price: 10}, {Price: 20}, {Price: 30}})
	if even.Median != 30 {
		t.Fatalf("expected even median to be the upper middle 30, got %v", even.Median)
	}

	two := StatsFor([]Record{{Price: 100000}, {Price: 200000}})
	if two.Median != 200000 {
		t.Fatalf("expected two-element median to be the upper value, got %v", two.Median)
	}
}

func TestStatsForOrderIndependent(t *testing.T) {
	records := []Record{
		{Price: 120000}, {Price: 65000}, {Price: 98000},
		{Price: 150000}, {Price: 0}, {Price: 80000},
	}
	want := StatsFor(records)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]Record(nil), records...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got := StatsFor(shuffled)
		if got != want {
			t.Fatalf("stats changed under shuffling: %+v vs %+v", got, want)
		}
	}
}

func TestGroupByPartitionCompleteness(t *testing.T) {
	records := filterFixture()
	keys := []func(Record) string{
		func(r Record) string { return r.Zone },
		func(r Record) string { return r.Floor },
		Record.DateKey,
		Record.NoteKey,
	}

	for _, key := range keys {
		groups := GroupBy(records, key)
		total := 0
		for _, members := range groups {
			total += len(members)
		}
		if total != len(records) {
			t.Fatalf("groups hold %d records, table has %d", total, len(records))
		}
	}
}

func TestZonePriceStats(t *testing.T) {
	rows := ZonePriceStats([]Record{
		{Zone: "A", Price: 100000},
		{Zone: "A", Price: 200000},
		{Zone: "B", Price: 150000},
	})

	if len(rows) != 2 {
		t.Fatalf("expected 2 zone rows, got %d", len(rows))
	}

	a := rows[0]
	if a.Key != "A" {
		t.Fatalf("expected zone A first (higher average), got %q", a.Key)
	}
	if a.Count != 2 || a.Avg != 150000 || a.Min != 100000 || a.Max != 200000 || a.Median != 200000 {
		t.Fatalf("unexpected zone A stats: %+v", a)
	}

	b := rows[1]
	if b.Count != 1 || b.Avg != 150000 || b.Min != 150000 || b.Max != 150000 || b.Median != 150000 {
		t.Fatalf("unexpected zone B stats: %+v", b)
	}
}

func TestDimensionViewsSortDescendingByAverage(t *testing.T) {
	rows := GradePriceStats([]Record{
		{Grade: "B", Price: 65000},
		{Grade: "S", Price: 150000},
		{Grade: "A", Price: 98000},
	})

	if len(rows) != 3 || rows[0].Key != "S" || rows[1].Key != "A" || rows[2].Key != "B" {
		t.Fatalf("expected grades ordered S, A, B by average, got %+v", rows)
	}
}

func TestDatePriceStatsSortsAscendingAndDropsUndated(t *testing.T) {
	rows := DatePriceStats([]Record{
		{ShowDateTime: "03/10 18:00", Price: 80000},
		{ShowDateTime: "03/09 18:00", Price: 100000},
		{ShowDateTime: "", Price: 50000},
	})

	if len(rows) != 2 {
		t.Fatalf("expected undated seats to be dropped from the date view, got %d rows", len(rows))
	}
	if rows[0].Key != "03/09" || rows[1].Key != "03/10" {
		t.Fatalf("expected chronological bucket order, got %+v", rows)
	}
}

func TestNotePriceStatsUsesSentinelBucket(t *testing.T) {
	rows := NotePriceStats([]Record{
		{SpecialNote: "", Price: 50000},
		{SpecialNote: "limited view", Price: 40000},
	})

	found := false
	for _, row := range rows {
		if row.Key == NoteNone {
			found = true
			if row.Count != 1 {
				t.Fatalf("expected one seat in the %q bucket, got %d", NoteNone, row.Count)
			}
		}
	}
	if !found {
		t.Fatalf("expected a %q bucket, got %+v", NoteNone, rows)
	}
}

func TestFloorGradeCrossTab(t *testing.T) {
	records := []Record{
		{Floor: "1F", Grade: "S", Price: 150000},
		{Floor: "1F", Grade: "S", Price: 130000},
		{Floor: "1F", Grade: "A", Price: 90000},
		{Floor: "2F", Grade: "A", Price: 70000},
	}

	ct := FloorGradeCrossTab(records)
	if len(ct.Floors) != 2 || len(ct.Grades) != 2 {
		t.Fatalf("unexpected axes: floors=%v grades=%v", ct.Floors, ct.Grades)
	}

	cell, ok := ct.Cell("1F", "S")
	if !ok {
		t.Fatal("expected data for 1F×S")
	}
	if cell.Count != 2 || cell.Avg != 140000 {
		t.Fatalf("unexpected 1F×S stats: %+v", cell)
	}

	if _, ok := ct.Cell("2F", "S"); ok {
		t.Fatal("expected no data for the unobserved 2F×S combination")
	}
}

func TestPriceRange(t *testing.T) {
	lo, hi := PriceRange([]Record{
		{Price: 98000},
		{Price: 0},
		{Price: 150000},
		{Price: 65000},
	})
	if lo != 65000 || hi != 150000 {
		t.Fatalf("expected range 65000..150000, got %v..%v", lo, hi)
	}

	lo, hi = PriceRange([]Record{{Price: 0}})
	if lo != 0 || hi != 0 {
		t.Fatalf("expected zero range for unpriced set, got %v..%v", lo, hi)
	}
}
