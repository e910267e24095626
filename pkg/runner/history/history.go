package history

import (
	"context"

	"github.com/minhquang4334/baby-tracker/pkg/client"
	"github.com/minhquang4334/baby-tracker/pkg/printers"
	"github.com/minhquang4334/baby-tracker/pkg/timeline"
	"github.com/minhquang4334/baby-tracker/pkg/timeutil"
)

// History prints one day's timeline, optionally restricted to a single
// event category.
type History struct {
	Day    string // YYYY-MM-DD, already clamped to today
	Filter timeline.Filter
	ShowID bool

	Client *client.Client
}

func (n *History) Do(ctx context.Context) error {
	items, err := timeline.Load(ctx, n.Client, n.Day, n.Filter)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title(timeutil.FormatDateFull(n.Day))
	pp.Timeline(items...)
	return nil
}
