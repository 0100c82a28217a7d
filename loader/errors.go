package loader

import (
	"errors"
	"fmt"
)

// ErrEmptyTable signals a source that parsed but produced no seat rows.
// An empty table is the one hard failure of the load boundary; individual
// malformed rows only produce diagnostics.
var ErrEmptyTable = errors.New("source table has no seat rows")

// ErrNoColumns signals a header with no recognizable seat columns.
var ErrNoColumns = errors.New("source table header has no recognized columns")

// HTTPStatusError captures a non-success response from an HTTP source.
type HTTPStatusError struct {
	URL    string
	Status int
	Body   string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("fetch %s: status %d: %s", e.URL, e.Status, e.Body)
}

// ActionableHint turns a load failure into a short instruction for the
// status line, or "" when there is nothing actionable to say.
func ActionableHint(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrEmptyTable) {
		return "Source has no seat rows. Check the export."
	}
	if errors.Is(err, ErrNoColumns) {
		return "Header not recognized. Expected zone/floor/grade/price columns."
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.Status == 401 || statusErr.Status == 403:
			return "Source requires credentials."
		case statusErr.Status == 404:
			return "Source URL not found."
		case statusErr.Status >= 500:
			return fmt.Sprintf("Source server error (%d). Try again shortly.", statusErr.Status)
		default:
			return fmt.Sprintf("Source request failed (%d).", statusErr.Status)
		}
	}
	return ""
}
