package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"vibejobhunter/models"
)

const maxLogEntries = 500

// SubmissionLog owns the on-disk submission history. It is read in full at
// construction to seed the duplicate guard and rewritten in full (capped to
// the most recent 500 entries) on every record. Single-writer by
// construction: the orchestrator processes one job at a time.
type SubmissionLog struct {
	mu      sync.Mutex
	path    string
	entries []models.SubmissionLogEntry
}

func NewSubmissionLog(dataDir string) (*SubmissionLog, error) {
	dir := filepath.Join(dataDir, "submissions")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create submissions dir: %w", err)
	}

	sl := &SubmissionLog{path: filepath.Join(dir, "submission_log.json")}
	if err := sl.load(); err != nil {
		return nil, err
	}

	log.Printf("Submission log loaded: %d entries", len(sl.entries))
	return sl, nil
}

func (sl *SubmissionLog) load() error {
	data, err := os.ReadFile(sl.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read submission log: %w", err)
	}

	if err := json.Unmarshal(data, &sl.entries); err != nil {
		// A corrupt log must not block submissions; start fresh but keep
		// the broken file aside for inspection.
		log.Printf("⚠ Submission log is corrupt (%v), starting a new one", err)
		_ = os.Rename(sl.path, sl.path+".corrupt")
		sl.entries = nil
	}
	return nil
}

// IsDuplicate reports whether the job URL already has a submitted or
// dry_run entry. Failed attempts do not count: those may be retried.
func (sl *SubmissionLog) IsDuplicate(jobURL string) bool {
	normalized := normalizeJobURL(jobURL)

	sl.mu.Lock()
	defer sl.mu.Unlock()

	for _, entry := range sl.entries {
		if entry.Status != models.StatusSubmitted && entry.Status != models.StatusDryRun {
			continue
		}
		if normalizeJobURL(entry.URL) == normalized {
			return true
		}
	}
	return false
}

// Record appends an entry, caps the log to the most recent entries and
// rewrites the file.
func (sl *SubmissionLog) Record(entry models.SubmissionLogEntry) error {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	sl.entries = append(sl.entries, entry)
	if len(sl.entries) > maxLogEntries {
		sl.entries = sl.entries[len(sl.entries)-maxLogEntries:]
	}

	data, err := json.MarshalIndent(sl.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal submission log: %w", err)
	}
	if err := os.WriteFile(sl.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write submission log: %w", err)
	}
	return nil
}

// Entries returns a copy of the current log, oldest first.
func (sl *SubmissionLog) Entries() []models.SubmissionLogEntry {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	out := make([]models.SubmissionLogEntry, len(sl.entries))
	copy(out, sl.entries)
	return out
}

// Tracking parameters stripped before duplicate comparison so query-string
// variations of the same posting do not bypass the guard.
var trackingParams = map[string]bool{
	"ref":          true,
	"src":          true,
	"source":       true,
	"gh_src":       true,
	"lever-origin": true,
}

func normalizeJobURL(jobURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(jobURL))
	if err != nil {
		return strings.TrimSpace(jobURL)
	}

	parsed.Scheme = strings.ToLower(parsed.Scheme)
	parsed.Host = strings.ToLower(parsed.Host)
	parsed.Fragment = ""

	query := parsed.Query()
	for key := range query {
		if trackingParams[strings.ToLower(key)] || strings.HasPrefix(strings.ToLower(key), "utm_") {
			query.Del(key)
		}
	}
	parsed.RawQuery = query.Encode()

	return strings.TrimSuffix(parsed.String(), "/")
}
