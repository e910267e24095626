package diaper

import (
	"context"
	"fmt"

	"github.com/minhquang4334/baby-tracker/pkg/client"
	"github.com/minhquang4334/baby-tracker/pkg/model"
	"github.com/minhquang4334/baby-tracker/pkg/printers"
)

type Log struct {
	Kind model.DiaperType
	At   string // ISO timestamp

	Client *client.Client
}

func (n *Log) Do(ctx context.Context) error {
	d, err := n.Client.CreateDiaper(ctx, client.DiaperRequest{
		DiaperType: n.Kind,
		ChangedAt:  n.At,
	})
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Notice(fmt.Sprintf("%s diaper logged", d.DiaperType.Label()))
	return nil
}

type Remove struct {
	ID string

	Client *client.Client
}

func (n *Remove) Do(ctx context.Context) error {
	if err := n.Client.DeleteDiaper(ctx, n.ID); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Notice("Diaper entry removed")
	return nil
}
