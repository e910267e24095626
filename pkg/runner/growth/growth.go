package growth

import (
	"context"
	"fmt"
	"math"

	"github.com/minhquang4334/baby-tracker/pkg/client"
	"github.com/minhquang4334/baby-tracker/pkg/printers"
	"github.com/minhquang4334/baby-tracker/pkg/timeutil"
)

// Add records a measurement. Weight is in grams, lengths in centimeters;
// at least one of the three must be set.
type Add struct {
	Day               string
	WeightGrams       float64
	LengthCM          float64
	HeadCircumference float64

	Client *client.Client
}

func (n *Add) Do(ctx context.Context) error {
	req := client.GrowthRequest{MeasuredOn: n.Day}
	if n.WeightGrams > 0 {
		w := int(math.Round(n.WeightGrams))
		req.WeightGrams = &w
	}
	if n.LengthCM > 0 {
		l := int(math.Round(n.LengthCM * 10))
		req.LengthMM = &l
	}
	if n.HeadCircumference > 0 {
		h := int(math.Round(n.HeadCircumference * 10))
		req.HeadCircumferenceMM = &h
	}
	if err := req.Validate(); err != nil {
		return err
	}

	g, err := n.Client.CreateGrowth(ctx, req)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Notice(fmt.Sprintf("Growth recorded for %s", timeutil.FormatDateFull(g.MeasuredOn)))
	return nil
}

type Remove struct {
	ID string

	Client *client.Client
}

func (n *Remove) Do(ctx context.Context) error {
	if err := n.Client.DeleteGrowth(ctx, n.ID); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Notice("Growth entry removed")
	return nil
}
