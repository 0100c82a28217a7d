package seat

import "testing"

func TestIntensityForBuckets(t *testing.T) {
	const lo, hi = 100000.0, 200000.0

	tests := []struct {
		name  string
		price float64
		want  Intensity
	}{
		{name: "unpriced", price: 0, want: IntensityNoData},
		{name: "at minimum", price: 100000, want: IntensityVeryLow},
		{name: "just below 0.2", price: 119000, want: IntensityVeryLow},
		{name: "at 0.2 boundary", price: 120000, want: IntensityLow},
		{name: "mid range", price: 150000, want: IntensityMid},
		{name: "at 0.6 boundary", price: 160000, want: IntensityHigh},
		{name: "at 0.8 boundary", price: 180000, want: IntensityVeryHigh},
		{name: "at maximum", price: 200000, want: IntensityVeryHigh},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := IntensityFor(tc.price, lo, hi)
			if got != tc.want {
				t.Fatalf("IntensityFor(%v): expected %v, got %v", tc.price, tc.want, got)
			}
		})
	}
}

func TestIntensityForZeroSpread(t *testing.T) {
	if got := IntensityFor(150000, 150000, 150000); got != IntensityVeryLow {
		t.Fatalf("expected zero-spread range to pin ratio at 0, got %v", got)
	}
}

func TestIntensityForNoDataIgnoresRange(t *testing.T) {
	if got := IntensityFor(0, 0, 0); got != IntensityNoData {
		t.Fatalf("expected no-data, got %v", got)
	}
	if got := IntensityFor(-1, 100, 200); got != IntensityNoData {
		t.Fatalf("expected no-data for non-positive price, got %v", got)
	}
}

func TestIntensityForMonotonic(t *testing.T) {
	const lo, hi = 50000.0, 250000.0

	prev := IntensityVeryLow
	for price := lo; price <= hi; price += 1000 {
		got := IntensityFor(price, lo, hi)
		if got < prev {
			t.Fatalf("intensity decreased at price %v: %v after %v", price, got, prev)
		}
		prev = got
	}
}

func TestIntensityString(t *testing.T) {
	tests := []struct {
		in   Intensity
		want string
	}{
		{in: IntensityNoData, want: "no-data"},
		{in: IntensityVeryLow, want: "very-low"},
		{in: IntensityLow, want: "low"},
		{in: IntensityMid, want: "mid"},
		{in: IntensityHigh, want: "high"},
		{in: IntensityVeryHigh, want: "very-high"},
	}
	for _, tc := range tests {
		if got := tc.in.String(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}
