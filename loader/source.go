// Package loader feeds the seat engine: it fetches a delimited seat table
// from a local file or an HTTP URL and coerces the raw rows into records,
// collecting per-row diagnostics instead of rejecting the table wholesale.
package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/torysaewoo/ticketb/seat"
)

const (
	requestTimeout  = 15 * time.Second
	maxErrorBodyLen = 160
)

var httpClient = &http.Client{Timeout: requestTimeout}

// Result is one loaded seat table with its parse diagnostics.
type Result struct {
	Source      string
	Records     []seat.Record
	Diagnostics []Diagnostic
}

// Load reads a seat table from a file path or an http(s) URL.
func Load(ctx context.Context, source string) (Result, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return Result{}, fmt.Errorf("load seat table: empty source")
	}

	var body io.ReadCloser
	var err error
	if isURL(source) {
		body, err = fetchHTTP(ctx, source)
	} else {
		body, err = openFile(source)
	}
	if err != nil {
		return Result{}, err
	}
	defer body.Close()

	records, diags, err := Parse(body)
	if err != nil {
		return Result{}, fmt.Errorf("parse %s: %w", source, err)
	}
	return Result{Source: source, Records: records, Diagnostics: diags}, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seat table: %w", err)
	}
	return f, nil
}

func fetchHTTP(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch seat table: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		return nil, &HTTPStatusError{
			URL:    url,
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(snippet)),
		}
	}
	return resp.Body, nil
}
