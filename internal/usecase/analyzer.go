// Package usecase contains the business logic of the application.
package usecase

import (
	"github.com/montanaflynn/stats"

	"github-tracker/internal/domain"
)

// Analyze reduces a contribution table into its summary statistics.
//
// An empty table yields a zeroed summary with a non-nil type map; no
// per-day series is built, so no division ever happens on empty input.
func Analyze(contributions []domain.Contribution) *domain.Summary {
	summary := &domain.Summary{
		ContributionTypes: make(map[string]int),
	}
	if len(contributions) == 0 {
		return summary
	}

	repos := make(map[string]struct{})
	perDay := make(map[string]int)
	for _, c := range contributions {
		summary.ContributionTypes[c.Type]++
		repos[c.Repo] = struct{}{}
		perDay[c.Day()]++
	}

	summary.TotalContributions = len(contributions)
	summary.ActiveRepositories = len(repos)

	series := make([]float64, 0, len(perDay))
	var busiestDay string
	busiestCount := 0
	for day, count := range perDay {
		series = append(series, float64(count))
		// Ties go to the earliest day so the result is deterministic.
		if count > busiestCount || (count == busiestCount && day < busiestDay) {
			busiestDay = day
			busiestCount = count
		}
	}
	summary.BusiestDay = busiestDay

	// The series is never empty here, so none of these calls can fail.
	// The mean of the per-day counts is exactly total / distinct days.
	summary.DailyAverage, _ = stats.Mean(series)
	summary.MedianPerDay, _ = stats.Median(series)
	summary.MaxPerDay, _ = stats.Max(series)

	return summary
}
