// Package visual renders the per-day contribution bar chart.
package visual

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"github-tracker/internal/common"
	"github-tracker/internal/domain"
)

// Renderer draws a bar chart of contribution counts per day.
type Renderer struct {
	logger *log.Logger
}

// NewRenderer creates a new Renderer instance.
func NewRenderer(logger *log.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// Render groups the table by date and writes a PNG bar chart to w.
// Empty input is a logged no-op.
func (r *Renderer) Render(contributions []domain.Contribution, w io.Writer) error {
	if len(contributions) == 0 {
		r.logger.Println("No data to visualize.")
		return nil
	}

	perDay := make(map[string]int)
	for _, c := range contributions {
		perDay[c.Day()]++
	}
	days := make([]string, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Strings(days)

	bars := make([]chart.Value, 0, len(days))
	maxCount := 0
	for _, day := range days {
		count := perDay[day]
		if count > maxCount {
			maxCount = count
		}
		// Month-day labels keep the axis readable over long windows.
		bars = append(bars, chart.Value{Value: float64(count), Label: day[5:]})
	}

	graph := chart.BarChart{
		Title:      "GitHub Contributions Over Time",
		Width:      1280,
		Height:     640,
		BarWidth:   12,
		BarSpacing: 4,
		XAxis: chart.Style{
			TextRotationDegrees: 45.0,
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount) + 1},
		},
		Bars: bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render contribution chart: %w", err)
	}
	return nil
}

// RenderToFile renders the chart into an image file at path.
func (r *Renderer) RenderToFile(contributions []domain.Contribution, path string) error {
	if len(contributions) == 0 {
		r.logger.Println("No data to visualize.")
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return common.WrapError(common.ErrCodeFilesystem,
			"failed to create chart file "+path, err)
	}
	defer f.Close()

	if err := r.Render(contributions, f); err != nil {
		return err
	}
	r.logger.Printf("Saved visualization to %s", path)
	return nil
}
