package main

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func TestFileRecentStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "recent.json")
	store := NewFileRecentStoreAt(path)

	entries := []RecentEntry{
		{Source: "seats.csv", Timestamp: time.Now().UTC(), RowCount: 120},
		{Source: "https://example.com/arena.csv", Timestamp: time.Now().UTC(), RowCount: 2400},
	}
	if err := store.Save(entries); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0].Source != "seats.csv" || got[1].RowCount != 2400 {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestFileRecentStoreMissingFile(t *testing.T) {
	store := NewFileRecentStoreAt(filepath.Join(t.TempDir(), "missing.json"))
	got, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %+v", got)
	}
}

func TestRememberRecentDeduplicates(t *testing.T) {
	entries := []RecentEntry{
		{Source: "a.csv", RowCount: 10},
		{Source: "b.csv", RowCount: 20},
	}

	got := rememberRecent(entries, RecentEntry{Source: "B.CSV", RowCount: 25})
	if len(got) != 2 {
		t.Fatalf("expected dedupe by source, got %+v", got)
	}
	if got[0].Source != "B.CSV" || got[0].RowCount != 25 {
		t.Fatalf("expected newest entry first, got %+v", got[0])
	}
}

func TestNormalizeRecentEntriesCapsAndDropsBlank(t *testing.T) {
	var entries []RecentEntry
	for i := 0; i < recentMaxEntries+5; i++ {
		entries = append(entries, RecentEntry{Source: fmt.Sprintf("src-%d.csv", i)})
	}
	entries = append(entries, RecentEntry{Source: "   "})

	got := normalizeRecentEntries(entries)
	if len(got) != recentMaxEntries {
		t.Fatalf("expected cap at %d, got %d", recentMaxEntries, len(got))
	}
	for _, e := range got {
		if e.Timestamp.IsZero() {
			t.Fatalf("expected zero timestamps to be filled: %+v", e)
		}
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{name: "zero", ts: time.Time{}, want: ""},
		{name: "seconds", ts: now.Add(-30 * time.Second), want: "just now"},
		{name: "minutes", ts: now.Add(-5 * time.Minute), want: "5m ago"},
		{name: "hours", ts: now.Add(-3 * time.Hour), want: "3h ago"},
		{name: "days", ts: now.Add(-48 * time.Hour), want: "2d ago"},
		{name: "old", ts: now.Add(-90 * 24 * time.Hour), want: "2025-12-09"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatRelativeTime(tc.ts, now); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
