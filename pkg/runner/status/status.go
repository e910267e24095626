package status

import (
	"context"

	"github.com/minhquang4334/baby-tracker/pkg/client"
	"github.com/minhquang4334/baby-tracker/pkg/printers"
	"github.com/minhquang4334/baby-tracker/pkg/session"
	"github.com/minhquang4334/baby-tracker/pkg/timeline"
	"github.com/minhquang4334/baby-tracker/pkg/timeutil"
)

// recentLimit caps the dashboard activity list.
const recentLimit = 8

// Status renders the dashboard: profile, any running session, today's
// summary cards, and the most recent events.
type Status struct {
	ShowID bool

	Client     *client.Client
	Reconciler *session.Reconciler
}

func (n *Status) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{ShowID: n.ShowID}

	if _, err := n.Reconciler.LoadChild(ctx); err != nil {
		return err
	}
	child := n.Reconciler.State.Child.Get()
	if child == nil {
		pp.Failure("No child profile yet. Run 'babytrack onboard' to create one.")
		return nil
	}
	pp.Child(child)

	if err := n.Reconciler.Refresh(ctx); err != nil {
		return err
	}
	if s := n.Reconciler.State.ActiveSleep.Get(); s != nil {
		pp.ActiveBanner("😴 Sleeping", s.StartTime)
	}
	if f := n.Reconciler.State.ActiveFeeding.Get(); f != nil {
		pp.ActiveBanner(f.FeedType.Label(), f.StartTime)
	}
	pp.NewLine()

	today := timeutil.Today()
	summary, err := n.Client.GetSummary(ctx, today)
	if err != nil {
		return err
	}
	pp.Summary(summary)

	items, err := timeline.Load(ctx, n.Client, today, timeline.FilterAll)
	if err != nil {
		return err
	}
	pp.Title("Recent activity")
	pp.RecentActivity(timeline.Recent(items, recentLimit)...)
	return nil
}
