// Package report persists the contribution table and its summary to
// timestamped files in the output directory.
package report

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github-tracker/internal/common"
	"github-tracker/internal/domain"
)

const fileTimestampLayout = "20060102_150405"

// Writer saves run output under a fixed directory. Filenames embed the run
// timestamp so successive runs never overwrite each other.
type Writer struct {
	dir    string
	logger *log.Logger
}

// NewWriter creates a new Writer instance targeting dir.
func NewWriter(dir string, logger *log.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

// Save writes the raw table as CSV and the summary as key/value text, both
// stamped with the current time. The first failure aborts the save.
func (w *Writer) Save(contributions []domain.Contribution, summary *domain.Summary) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return common.WrapError(common.ErrCodeFilesystem,
			"failed to create output directory "+w.dir, err)
	}

	timestamp := time.Now().Format(fileTimestampLayout)

	dataPath := filepath.Join(w.dir, fmt.Sprintf("contributions_%s.csv", timestamp))
	if err := w.writeTable(dataPath, contributions); err != nil {
		return err
	}
	w.logger.Printf("Saved contribution data to %s", dataPath)

	analysisPath := filepath.Join(w.dir, fmt.Sprintf("analysis_%s.txt", timestamp))
	if err := w.writeSummary(analysisPath, summary); err != nil {
		return err
	}
	w.logger.Printf("Saved analysis to %s", analysisPath)

	return nil
}

func (w *Writer) writeTable(path string, contributions []domain.Contribution) error {
	f, err := os.Create(path)
	if err != nil {
		return common.WrapError(common.ErrCodeFilesystem,
			"failed to create data file "+path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"date", "type", "repo"}); err != nil {
		return common.WrapError(common.ErrCodeFilesystem,
			"failed to write data file "+path, err)
	}
	for _, c := range contributions {
		if err := cw.Write([]string{c.Day(), c.Type, c.Repo}); err != nil {
			return common.WrapError(common.ErrCodeFilesystem,
				"failed to write data file "+path, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return common.WrapError(common.ErrCodeFilesystem,
			"failed to flush data file "+path, err)
	}
	return nil
}

func (w *Writer) writeSummary(path string, summary *domain.Summary) error {
	content := strings.Join(SummaryLines(summary), "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return common.WrapError(common.ErrCodeFilesystem,
			"failed to write analysis file "+path, err)
	}
	return nil
}

// SummaryLines formats a summary as one "key: value" line per statistic, in
// a fixed order. The same lines go to the analysis file and to stdout.
func SummaryLines(summary *domain.Summary) []string {
	types := make([]string, 0, len(summary.ContributionTypes))
	for name := range summary.ContributionTypes {
		types = append(types, name)
	}
	sort.Strings(types)
	pairs := make([]string, 0, len(types))
	for _, name := range types {
		pairs = append(pairs, fmt.Sprintf("%s=%d", name, summary.ContributionTypes[name]))
	}

	return []string{
		fmt.Sprintf("total_contributions: %d", summary.TotalContributions),
		fmt.Sprintf("contribution_types: %s", strings.Join(pairs, ", ")),
		fmt.Sprintf("active_repositories: %d", summary.ActiveRepositories),
		fmt.Sprintf("daily_average: %.2f", summary.DailyAverage),
		fmt.Sprintf("median_per_day: %.2f", summary.MedianPerDay),
		fmt.Sprintf("max_per_day: %.0f", summary.MaxPerDay),
		fmt.Sprintf("busiest_day: %s", summary.BusiestDay),
	}
}
