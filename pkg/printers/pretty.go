package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/minhquang4334/baby-tracker/pkg/model"
	"github.com/minhquang4334/baby-tracker/pkg/timeline"
	"github.com/minhquang4334/baby-tracker/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
}

var idSpacing = strings.Repeat(" ", len("171dff69f8b99dca  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = t.Print(idSpacing)
	}
	_, _ = t.Println(title)
}

func categoryColor(c timeline.Category) *color.Color {
	switch c {
	case timeline.CategorySleep:
		return color.New(color.FgMagenta)
	case timeline.CategoryFeeding:
		return color.New(color.FgHiMagenta)
	case timeline.CategoryDiaper:
		return color.New(color.FgGreen)
	}
	return color.New()
}

// Timeline prints merged items newest first, or an explicit empty state.
func (pp *PrettyPrint) Timeline(items ...timeline.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" No events logged for this day.\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	faint := color.New(color.Faint)

	for _, it := range items {
		if pp.ShowID {
			_, _ = y.Print(it.ID)
			if pad := len(idSpacing) - len(it.ID); pad > 0 {
				_, _ = y.Print(strings.Repeat(" ", pad))
			}
		}
		c := categoryColor(it.Category)
		_, _ = faint.Printf("%s  ", it.Time())
		_, _ = c.Printf("%s %s", it.Category.Icon(), it.Title)
		_, _ = t.Printf(" · %s\n", it.Detail)
	}
	_, _ = t.Println("")
}

// RecentActivity prints the dashboard feed with relative time labels.
func (pp *PrettyPrint) RecentActivity(items ...timeline.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" No activity logged today.\n\n")
		return
	}
	t := color.New()
	faint := color.New(color.Faint)
	for _, it := range items {
		c := categoryColor(it.Category)
		_, _ = c.Printf("%s %s", it.Category.Icon(), it.Title)
		_, _ = t.Printf(" · %s ", it.Detail)
		_, _ = faint.Printf("(%s)\n", it.Ago())
	}
	_, _ = t.Println("")
}

// Child prints the profile header: name plus age.
func (pp *PrettyPrint) Child(child *model.Child) {
	name := color.New(color.Bold)
	faint := color.New(color.Faint)
	_, _ = name.Printf("%s", child.Name)
	_, _ = faint.Printf("  %s\n\n", timeutil.Age(child.DateOfBirth))
}

// ActiveBanner prints the live timer line for an in-progress session.
func (pp *PrettyPrint) ActiveBanner(label, startISO string) {
	c := color.New(color.Bold, color.FgHiMagenta)
	faint := color.New(color.Faint)
	_, _ = c.Printf("%s  %s", label, timeutil.FormatElapsed(timeutil.ElapsedSeconds(startISO)))
	_, _ = faint.Printf("  (started %s)\n", timeutil.FormatTime(startISO))
}

// Summary prints the day's aggregate cards.
func (pp *PrettyPrint) Summary(s *model.DaySummary) {
	t := color.New()
	faint := color.New(color.Faint)

	_, _ = t.Printf("😴 %s", timeutil.FormatDuration(s.TotalSleepMin))
	_, _ = faint.Printf("  sleep · %d sessions\n", s.SleepCount)
	_, _ = t.Printf("🍼 %d", s.FeedingCount)
	_, _ = faint.Print("  feedings today\n")
	_, _ = t.Printf("🚼 %d", s.DiaperCount)
	_, _ = faint.Print("  diaper changes\n")

	weight := "—"
	if s.LastWeightGrams != nil {
		weight = fmt.Sprintf("%.2f kg", float64(*s.LastWeightGrams)/1000)
	}
	_, _ = t.Printf("📏 %s", weight)
	_, _ = faint.Print("  last weight\n\n")
}

// Notice prints a transient outcome message (the CLI's toast).
func (pp *PrettyPrint) Notice(msg string) {
	c := color.New(color.FgGreen)
	_, _ = c.Printf("✔ %s\n", msg)
}

// Failure prints an error outcome.
func (pp *PrettyPrint) Failure(msg string) {
	c := color.New(color.FgRed)
	_, _ = c.Printf("✘ %s\n", msg)
}
