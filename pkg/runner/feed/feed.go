package feed

import (
	"context"

	"github.com/minhquang4334/baby-tracker/pkg/client"
	"github.com/minhquang4334/baby-tracker/pkg/model"
	"github.com/minhquang4334/baby-tracker/pkg/printers"
	"github.com/minhquang4334/baby-tracker/pkg/session"
)

type Start struct {
	Side model.FeedType // BreastLeft or BreastRight

	Reconciler *session.Reconciler
}

func (n *Start) Do(ctx context.Context) error {
	notice, err := n.Reconciler.StartBreastFeed(ctx, n.Side)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Notice(notice)
	return nil
}

type Stop struct {
	Reconciler *session.Reconciler
}

func (n *Stop) Do(ctx context.Context) error {
	if err := n.Reconciler.Refresh(ctx); err != nil {
		return err
	}
	notice, err := n.Reconciler.StopFeeding(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Notice(notice)
	return nil
}

type Cancel struct {
	Reconciler *session.Reconciler
}

func (n *Cancel) Do(ctx context.Context) error {
	if err := n.Reconciler.Refresh(ctx); err != nil {
		return err
	}
	if err := n.Reconciler.CancelFeeding(ctx); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Notice("Feed discarded")
	return nil
}

// Bottle logs a completed bottle feed. A nil ML means the amount was omitted
// and falls back to the last used amount tracked in the state store; an
// explicit value is passed through as-is.
type Bottle struct {
	ML *int

	Reconciler *session.Reconciler
}

func (n *Bottle) Do(ctx context.Context) error {
	ml := n.Reconciler.State.LastBottleML.Get()
	if n.ML != nil {
		ml = *n.ML
	}
	notice, err := n.Reconciler.LogBottle(ctx, ml)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Notice(notice)
	return nil
}

type Remove struct {
	ID string

	Client *client.Client
}

func (n *Remove) Do(ctx context.Context) error {
	if err := n.Client.DeleteFeeding(ctx, n.ID); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Notice("Feed entry removed")
	return nil
}
