package sleep

import (
	"context"

	"github.com/minhquang4334/baby-tracker/pkg/client"
	"github.com/minhquang4334/baby-tracker/pkg/printers"
	"github.com/minhquang4334/baby-tracker/pkg/session"
)

type Start struct {
	At string // ISO start override, empty means now

	Reconciler *session.Reconciler
}

func (n *Start) Do(ctx context.Context) error {
	notice, err := n.Reconciler.StartSleep(ctx, n.At)
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
	notice, err := n.Reconciler.StopSleep(ctx)
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
	if err := n.Reconciler.CancelSleep(ctx); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Notice("Sleep session discarded")
	return nil
}

type Remove struct {
	ID string

	Client *client.Client
}

func (n *Remove) Do(ctx context.Context) error {
	if err := n.Client.DeleteSleep(ctx, n.ID); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Notice("Sleep entry removed")
	return nil
}
