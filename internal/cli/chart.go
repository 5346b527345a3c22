package cli

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/pterm/pterm"
	"github.com/stintdev/stint/internal/domain"
)

const barChartChar = "▇"

// renderDailyChart draws the per-day totals as a horizontal bar chart.
// Bar values are minutes, since pterm bars are integers and daily
// totals are fractional hours.
func renderDailyChart(history []domain.DailyHours) error {
	sorted := make([]domain.DailyHours, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return chartDate(sorted[i].Date).Before(chartDate(sorted[j].Date))
	})

	var bars pterm.Bars
	for _, day := range sorted {
		bars = append(bars, pterm.Bar{
			Label: day.Date,
			Value: int(math.Round(day.Hours * 60)),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		return fmt.Errorf("rendering daily chart: %w", err)
	}

	fmt.Println("Daily work breakdown (minutes)")
	fmt.Print(chart)
	return nil
}

// chartDate parses a day key for ordering; unparsable keys sort first.
func chartDate(date string) time.Time {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return time.Time{}
	}
	return t
}
