package seat

import "testing"

func TestDateKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "full datetime", in: "03/09 18:00", want: "03/09"},
		{name: "exactly five chars", in: "03/09", want: "03/09"},
		{name: "too short", in: "03/9", want: ""},
		{name: "missing", in: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Record{ShowDateTime: tc.in}.DateKey()
			if got != tc.want {
				t.Fatalf("DateKey(%q): expected %q, got %q", tc.in, tc.want, got)
			}
		})
	}
}

func TestNoteKey(t *testing.T) {
	if got := (Record{SpecialNote: "obstructed view"}).NoteKey(); got != "obstructed view" {
		t.Fatalf("expected note to pass through, got %q", got)
	}
	if got := (Record{SpecialNote: "   "}).NoteKey(); got != NoteNone {
		t.Fatalf("expected blank note to normalize to %q, got %q", NoteNone, got)
	}
	if got := (Record{}).NoteKey(); got != NoteNone {
		t.Fatalf("expected missing note to normalize to %q, got %q", NoteNone, got)
	}
}

func TestPriced(t *testing.T) {
	if (Record{Price: 0}).Priced() {
		t.Fatal("zero price should be unpriced")
	}
	if !(Record{Price: 1500}).Priced() {
		t.Fatal("positive price should be priced")
	}
}

func TestNewSelectionIsAll(t *testing.T) {
	s := NewSelection()
	if !s.IsAll() {
		t.Fatalf("default selection should apply no constraints: %+v", s)
	}

	s.Grade = "S"
	if s.IsAll() {
		t.Fatal("selection with a concrete grade should not be all")
	}
}
