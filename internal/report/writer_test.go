package report

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github-tracker/internal/common"
	"github-tracker/internal/domain"
)

func testSummary() *domain.Summary {
	return &domain.Summary{
		TotalContributions: 3,
		ContributionTypes:  map[string]int{"PushEvent": 2, "WatchEvent": 1},
		ActiveRepositories: 1,
		DailyAverage:       3.0,
		MedianPerDay:       3.0,
		MaxPerDay:          3.0,
		BusiestDay:         "2026-08-20",
	}
}

// findFile returns the single file in dir matching the glob pattern.
func findFile(t *testing.T, dir, pattern string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	return matches[0]
}

func TestWriter_Save(t *testing.T) {
	d := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	contributions := []domain.Contribution{
		{Date: d, Type: "PushEvent", Repo: "octocat/hello"},
		{Date: d, Type: "PushEvent", Repo: "octocat/hello"},
		{Date: d, Type: "WatchEvent", Repo: "octocat/hello"},
	}

	dir := t.TempDir()
	writer := NewWriter(dir, log.New(io.Discard, "", 0))

	require.NoError(t, writer.Save(contributions, testSummary()))

	// The CSV must hold a header plus exactly one row per record.
	dataPath := findFile(t, dir, "contributions_*.csv")
	f, err := os.Open(dataPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(contributions)+1)
	assert.Equal(t, []string{"date", "type", "repo"}, rows[0])
	assert.Equal(t, []string{"2026-08-20", "PushEvent", "octocat/hello"}, rows[1])

	// The analysis file must hold one line per summary key.
	analysisPath := findFile(t, dir, "analysis_*.txt")
	content, err := os.ReadFile(analysisPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	assert.Len(t, lines, 7)
	assert.Contains(t, lines, "total_contributions: 3")
	assert.Contains(t, lines, "contribution_types: PushEvent=2, WatchEvent=1")
	assert.Contains(t, lines, "active_repositories: 1")
	assert.Contains(t, lines, "daily_average: 3.00")
}

func TestWriter_Save_EmptyTable(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir, log.New(io.Discard, "", 0))

	summary := &domain.Summary{ContributionTypes: map[string]int{}}
	require.NoError(t, writer.Save(nil, summary))

	dataPath := findFile(t, dir, "contributions_*.csv")
	f, err := os.Open(dataPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	// Header only.
	assert.Len(t, rows, 1)
}

func TestWriter_Save_DirectoryFailure(t *testing.T) {
	// Use a path whose parent is a regular file, so MkdirAll must fail.
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	writer := NewWriter(filepath.Join(blocker, "data"), log.New(io.Discard, "", 0))

	err := writer.Save(nil, &domain.Summary{ContributionTypes: map[string]int{}})

	require.Error(t, err)
	assert.True(t, common.HasCode(err, common.ErrCodeFilesystem))
}

func TestSummaryLines_Order(t *testing.T) {
	lines := SummaryLines(testSummary())

	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "total_contributions:"))
	assert.True(t, strings.HasPrefix(lines[1], "contribution_types:"))
	assert.True(t, strings.HasPrefix(lines[2], "active_repositories:"))
	assert.True(t, strings.HasPrefix(lines[3], "daily_average:"))
	assert.True(t, strings.HasPrefix(lines[6], "busiest_day:"))
}
