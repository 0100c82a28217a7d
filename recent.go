package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const recentMaxEntries = 10

// RecentEntry stores one previously loaded seat table source.
type RecentEntry struct {
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
	RowCount  int       `json:"row_count"`
}

// RecentStore persists recent sources between runs.
type RecentStore interface {
	Load() ([]RecentEntry, error)
	Save(entries []RecentEntry) error
}

type FileRecentStore struct {
	path string
}

func NewFileRecentStore() *FileRecentStore {
	path, _ := defaultRecentPath()
	return &FileRecentStore{path: path}
}

func NewFileRecentStoreAt(path string) *FileRecentStore {
	return &FileRecentStore{path: path}
}

func (s *FileRecentStore) Load() ([]RecentEntry, error) {
	if s == nil || strings.TrimSpace(s.path) == "" {
		return nil, fmt.Errorf("recent store path is empty")
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []RecentEntry{}, nil
		}
		return nil, fmt.Errorf("read recent sources: %w", err)
	}

	var entries []RecentEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode recent sources: %w", err)
	}
	return normalizeRecentEntries(entries), nil
}

func (s *FileRecentStore) Save(entries []RecentEntry) error {
	if s == nil || strings.TrimSpace(s.path) == "" {
		return fmt.Errorf("recent store path is empty")
	}

	normalized := normalizeRecentEntries(entries)
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create recent directory: %w", err)
	}

	body, err := json.MarshalIndent(normalized, "", "  ")
	if err != nil {
		return fmt.Errorf("encode recent sources: %w", err)
	}
	body = append(body, '\n')

	if err := os.WriteFile(s.path, body, 0o644); err != nil {
		return fmt.Errorf("write recent sources: %w", err)
	}
	return nil
}

func defaultRecentPath() (string, error) {
	if configDir, err := os.UserConfigDir(); err == nil && strings.TrimSpace(configDir) != "" {
		return filepath.Join(configDir, "ticketb", "recent.json"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(homeDir) == "" {
		return "", fmt.Errorf("resolve recent path: %w", err)
	}
	return filepath.Join(homeDir, ".config", "ticketb", "recent.json"), nil
}

// rememberRecent puts the entry at the head of the list, displacing any
// older entry for the same source.
func rememberRecent(entries []RecentEntry, entry RecentEntry) []RecentEntry {
	return normalizeRecentEntries(append([]RecentEntry{entry}, entries...))
}

func normalizeRecentEntries(entries []RecentEntry) []RecentEntry {
	if len(entries) == 0 {
		return []RecentEntry{}
	}

	out := make([]RecentEntry, 0, min(len(entries), recentMaxEntries))
	seen := make(map[string]struct{}, len(entries))

	for _, entry := range entries {
		source := strings.TrimSpace(entry.Source)
		if source == "" {
			continue
		}
		key := strings.ToLower(source)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		if entry.Timestamp.IsZero() {
			entry.Timestamp = time.Now().UTC()
		}
		entry.Source = source
		out = append(out, entry)
		if len(out) == recentMaxEntries {
			break
		}
	}
	return out
}

func formatRelativeTime(ts, now time.Time) string {
	if ts.IsZero() {
		return ""
	}

	if now.Before(ts) {
		return "just now"
	}

	d := now.Sub(ts)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return ts.Format("2006-01-02")
	}
}
