// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// DateLayout is the calendar-date format used for grouping and output.
const DateLayout = "2006-01-02"

// Contribution is a single public activity event attributed to the tracked
// user. It is immutable once created and produced only by the gateway.
type Contribution struct {
	Date time.Time `json:"date"`
	Type string    `json:"type"`
	Repo string    `json:"repo"`
}

// Day returns the calendar date of the contribution as a string, which is
// the grouping key for all per-day statistics.
func (c Contribution) Day() string {
	return c.Date.Format(DateLayout)
}

// Summary holds the aggregate statistics derived from a contribution table.
// It is recomputed on every run and only ever serialized, never stored.
type Summary struct {
	TotalContributions int            `json:"total_contributions"`
	ContributionTypes  map[string]int `json:"contribution_types"`
	ActiveRepositories int            `json:"active_repositories"`
	DailyAverage       float64        `json:"daily_average"`
	MedianPerDay       float64        `json:"median_per_day"`
	MaxPerDay          float64        `json:"max_per_day"`
	BusiestDay         string         `json:"busiest_day"`
}
