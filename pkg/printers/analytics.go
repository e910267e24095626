package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/minhquang4334/baby-tracker/pkg/model"
	"github.com/minhquang4334/baby-tracker/pkg/stats"
	"github.com/minhquang4334/baby-tracker/pkg/timeutil"
)

const barWidth = 24

// AnalyticsSummary prints the averaged stat cards for a range.
func (pp *PrettyPrint) AnalyticsSummary(s stats.Summary) {
	t := color.New()
	faint := color.New(color.Faint)

	_, _ = t.Printf("😴 %s", timeutil.FormatDuration(s.AvgSleepMinutes))
	_, _ = faint.Print("  avg sleep/day\n")
	_, _ = t.Printf("🍼 %s", s.AvgFeedings)
	_, _ = faint.Print("  avg feeds/day\n")
	_, _ = t.Printf("🚼 %s", s.AvgDiapers)
	_, _ = faint.Print("  avg diapers/day\n")
	_, _ = t.Printf("🍶 %s", s.AvgBottle)
	_, _ = faint.Print("  avg bottle/day\n\n")
}

// AnalyticsTable prints the raw per-day rows.
func (pp *PrettyPrint) AnalyticsTable(rows []model.DayStats) {
	tbl := uitable.New()
	tbl.AddRow("DATE", "SLEEP", "FEEDS", "BREAST", "BOTTLE", "BOTTLE ML", "DIAPERS", "WET", "DIRTY")
	for _, d := range rows {
		tbl.AddRow(
			d.Date,
			timeutil.FormatDuration(d.SleepMinutes),
			d.FeedingCount,
			d.BreastFeedCount,
			d.BottleFeedCount,
			d.BottleMLTotal,
			d.DiaperCount,
			d.WetCount,
			d.DirtyCount,
		)
	}
	fmt.Println(tbl)
	fmt.Println("")
}

// Chart prints a labeled horizontal bar per day.
func (pp *PrettyPrint) Chart(title, unit string, points []stats.Point, c *color.Color) {
	pp.Title(title)
	max := 0.0
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}
	if max == 0 {
		max = 1
	}
	faint := color.New(color.Faint)
	for _, p := range points {
		n := int(p.Value / max * barWidth)
		_, _ = faint.Printf("%s  ", shortDate(p.Date))
		_, _ = c.Print(strings.Repeat("█", n))
		_, _ = faint.Printf(" %g%s\n", p.Value, unit)
	}
	fmt.Println("")
}

// StackedChart prints the wet/dirty diaper split per day.
func (pp *PrettyPrint) StackedChart(title string, points []stats.StackedPoint) {
	pp.Title(title)
	max := 0.0
	for _, p := range points {
		if total := p.Bottom + p.Top; total > max {
			max = total
		}
	}
	if max == 0 {
		max = 1
	}
	faint := color.New(color.Faint)
	wet := color.New(color.FgBlue)
	dirty := color.New(color.FgMagenta)
	for _, p := range points {
		_, _ = faint.Printf("%s  ", shortDate(p.Date))
		_, _ = wet.Print(strings.Repeat("█", int(p.Bottom/max*barWidth)))
		_, _ = dirty.Print(strings.Repeat("█", int(p.Top/max*barWidth)))
		_, _ = faint.Printf(" %g\n", p.Bottom+p.Top)
	}
	_, _ = wet.Print("█")
	_, _ = faint.Print(" wet  ")
	_, _ = dirty.Print("█")
	_, _ = faint.Print(" dirty\n\n")
}

// shortDate trims YYYY-MM-DD to MM-DD for chart labels.
func shortDate(date string) string {
	if len(date) == 10 {
		return date[5:]
	}
	return date
}
