package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/minhquang4334/baby-tracker/pkg/commands/options"
	"github.com/minhquang4334/baby-tracker/pkg/runner/growth"
)

func addGrowth(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	gro := &options.GrowthOptions{}

	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Record a growth measurement",
		Example: `
babytrack growth --weight=6250
babytrack growth --length=61.5 --head=40.2 --date=2025-06-01
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := do.GetDay()
			if err != nil {
				return output.HandleError(err)
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			s := growth.Add{
				Day:               day,
				WeightGrams:       gro.WeightGrams,
				LengthCM:          gro.LengthCM,
				HeadCircumference: gro.HeadCircumference,
				Client:            c,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddGrowthArgs(cmd, gro)
	options.AddOutputArg(cmd, output)

	addGrowthRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addGrowthRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Delete a growth entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			s := growth.Remove{ID: io.ID, Client: c}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)
	_ = cmd.MarkFlagRequired("id")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
