package analytics

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/minhquang4334/baby-tracker/pkg/client"
	"github.com/minhquang4334/baby-tracker/pkg/printers"
	"github.com/minhquang4334/baby-tracker/pkg/stats"
	"github.com/minhquang4334/baby-tracker/pkg/timeutil"
)

// Analytics prints range averages, the per-day table, and bar charts for the
// trailing window ending today.
type Analytics struct {
	Days int

	Client *client.Client
}

func (n *Analytics) Do(ctx context.Context) error {
	from, to, err := stats.RangeFrom(timeutil.Today(), n.Days)
	if err != nil {
		return err
	}
	rows, err := n.Client.GetAnalytics(ctx, from, to)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("Last %d days", n.Days))
	summary := stats.Aggregate(rows, n.Days)
	pp.AnalyticsSummary(summary)
	pp.AnalyticsTable(rows)
	pp.Chart("Sleep", "h", summary.SleepHours, color.New(color.FgMagenta))
	pp.Chart("Feedings", "", summary.Feedings, color.New(color.FgHiMagenta))
	pp.StackedChart("Diapers", summary.Diapers)
	pp.Chart("Bottle volume", "ml", summary.BottleML, color.New(color.FgCyan))
	return nil
}
