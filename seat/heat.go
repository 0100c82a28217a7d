package seat

// Intensity is the relative-price heat bucket of a single seat against the
// price range of the currently filtered set.
type Intensity int

const (
	IntensityNoData Intensity = iota
	IntensityVeryLow
	IntensityLow
	IntensityMid
	IntensityHigh
	IntensityVeryHigh
)

func (i Intensity) String() string {
	switch i {
	case IntensityVeryLow:
		return "very-low"
	case IntensityLow:
		return "low"
	case IntensityMid:
		return "mid"
	case IntensityHigh:
		return "high"
	case IntensityVeryHigh:
		return "very-high"
	default:
		return "no-data"
	}
}

// IntensityFor buckets a price against the [lo, hi] range of the current
// filtered set. Unpriced seats map to IntensityNoData. A zero-spread range
// pins the ratio to 0, so every priced seat lands in the lowest bucket.
// Buckets are half-open at 0.2/0.4/0.6/0.8 with the top bucket closed, so
// a ratio of exactly 0.8 or above is very-high.
func IntensityFor(price, lo, hi float64) Intensity {
	if price <= 0 {
		return IntensityNoData
	}

	ratio := 0.0
	if hi > lo {
		ratio = (price - lo) / (hi - lo)
	}

	switch {
	case ratio < 0.2:
		return IntensityVeryLow
	case ratio < 0.4:
		return IntensityLow
	case ratio < 0.6:
		return IntensityMid
	case ratio < 0.8:
		return IntensityHigh
	default:
		return IntensityVeryHigh
	}
}
