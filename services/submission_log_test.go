package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibejobhunter/models"
)

func newTestLog(t *testing.T) *SubmissionLog {
	t.Helper()
	sl, err := NewSubmissionLog(t.TempDir())
	require.NoError(t, err)
	return sl
}

func entryWith(url, status string) models.SubmissionLogEntry {
	return models.SubmissionLogEntry{
		URL:       url,
		Company:   "Acme",
		Title:     "Engineer",
		JobID:     "job-1",
		Status:    status,
		Timestamp: time.Now(),
		DryRun:    status == models.StatusDryRun,
	}
}

func TestSubmissionLog_DuplicateGuard(t *testing.T) {
	sl := newTestLog(t)
	url := "https://boards.greenhouse.io/acme/jobs/123"

	assert.False(t, sl.IsDuplicate(url))

	require.NoError(t, sl.Record(entryWith(url, models.StatusSubmitted)))
	assert.True(t, sl.IsDuplicate(url))
}

func TestSubmissionLog_DryRunCountsAsDuplicate(t *testing.T) {
	sl := newTestLog(t)
	url := "https://jobs.lever.co/acme/abc"

	require.NoError(t, sl.Record(entryWith(url, models.StatusDryRun)))
	assert.True(t, sl.IsDuplicate(url))
}

func TestSubmissionLog_FailedAttemptsAreRetryable(t *testing.T) {
	sl := newTestLog(t)
	url := "https://jobs.lever.co/acme/abc"

	require.NoError(t, sl.Record(entryWith(url, models.StatusFailed)))
	require.NoError(t, sl.Record(entryWith(url, models.StatusError)))
	assert.False(t, sl.IsDuplicate(url))
}

func TestSubmissionLog_TrackingParamsDoNotBypassGuard(t *testing.T) {
	sl := newTestLog(t)

	require.NoError(t, sl.Record(entryWith("https://boards.greenhouse.io/acme/jobs/123", models.StatusSubmitted)))

	assert.True(t, sl.IsDuplicate("https://boards.greenhouse.io/acme/jobs/123?utm_source=twitter"))
	assert.True(t, sl.IsDuplicate("https://boards.greenhouse.io/acme/jobs/123?gh_src=abc123"))
	assert.True(t, sl.IsDuplicate("HTTPS://BOARDS.GREENHOUSE.IO/acme/jobs/123#content"))
	assert.False(t, sl.IsDuplicate("https://boards.greenhouse.io/acme/jobs/456"))
}

func TestSubmissionLog_CapKeepsMostRecentInOrder(t *testing.T) {
	dir := t.TempDir()
	sl, err := NewSubmissionLog(dir)
	require.NoError(t, err)

	total := maxLogEntries + 25
	for i := 0; i < total; i++ {
		e := entryWith(fmt.Sprintf("https://boards.greenhouse.io/acme/jobs/%d", i), models.StatusSubmitted)
		e.JobID = fmt.Sprintf("job-%d", i)
		require.NoError(t, sl.Record(e))
	}

	data, err := os.ReadFile(filepath.Join(dir, "submissions", "submission_log.json"))
	require.NoError(t, err)

	var persisted []models.SubmissionLogEntry
	require.NoError(t, json.Unmarshal(data, &persisted))

	require.Len(t, persisted, maxLogEntries)
	assert.Equal(t, fmt.Sprintf("job-%d", total-maxLogEntries), persisted[0].JobID)
	assert.Equal(t, fmt.Sprintf("job-%d", total-1), persisted[len(persisted)-1].JobID)
}

func TestSubmissionLog_ReloadsFromDisk(t *testing.T) {
	dir := t.TempDir()

	sl, err := NewSubmissionLog(dir)
	require.NoError(t, err)
	require.NoError(t, sl.Record(entryWith("https://boards.greenhouse.io/acme/jobs/9", models.StatusSubmitted)))

	reloaded, err := NewSubmissionLog(dir)
	require.NoError(t, err)
	assert.True(t, reloaded.IsDuplicate("https://boards.greenhouse.io/acme/jobs/9"))
	assert.Len(t, reloaded.Entries(), 1)
}

func TestSubmissionLog_CorruptFileStartsFresh(t *testing.T) {
	dir := t.TempDir()
	subdir := filepath.Join(dir, "submissions")
	require.NoError(t, os.MkdirAll(subdir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(subdir, "submission_log.json"), []byte("{not json"), 0o644))

	sl, err := NewSubmissionLog(dir)
	require.NoError(t, err)
	assert.Empty(t, sl.Entries())
}

func TestNormalizeJobURL(t *testing.T) {
	assert.Equal(t,
		normalizeJobURL("https://boards.greenhouse.io/acme/jobs/123"),
		normalizeJobURL("https://BOARDS.greenhouse.io/acme/jobs/123/?utm_campaign=x&ref=feed#apply"))

	// Meaningful query parameters survive normalization.
	assert.NotEqual(t,
		normalizeJobURL("https://acme.com/careers?gh_jid=1"),
		normalizeJobURL("https://acme.com/careers?gh_jid=2"))
}
