package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/minhquang4334/baby-tracker/pkg/commands/options"
	"github.com/minhquang4334/baby-tracker/pkg/model"
	"github.com/minhquang4334/baby-tracker/pkg/runner/feed"
)

func addFeed(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "feed [left|right]",
		Short: "Start a breast feed timer",
		Example: `
babytrack feed left
babytrack feed right
babytrack feed stop
babytrack feed bottle 120
`,
		ValidArgs: []string{"left", "right"},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a side, left or right")
			}
			if args[0] != "left" && args[0] != "right" {
				return errors.New("side must be left or right")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			side := model.BreastLeft
			if args[0] == "right" {
				side = model.BreastRight
			}
			_, r, err := newReconciler()
			if err != nil {
				return err
			}
			s := feed.Start{Side: side, Reconciler: r}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	addFeedStop(cmd)
	addFeedCancel(cmd)
	addFeedBottle(cmd)
	addFeedRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addFeedStop(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the running feed timer and log it",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, r, err := newReconciler()
			if err != nil {
				return err
			}
			s := feed.Stop{Reconciler: r}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addFeedCancel(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Discard the running feed timer without logging it",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, r, err := newReconciler()
			if err != nil {
				return err
			}
			s := feed.Cancel{Reconciler: r}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addFeedBottle(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "bottle [ml]",
		Short: "Log a bottle feed",
		Example: `
babytrack feed bottle 120
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ml *int
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return output.HandleError(errors.New("bottle amount must be a number of milliliters"))
				}
				ml = &n
			}
			_, r, err := newReconciler()
			if err != nil {
				return err
			}
			s := feed.Bottle{ML: ml, Reconciler: r}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addFeedRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Delete a logged feed entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			s := feed.Remove{ID: io.ID, Client: c}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)
	_ = cmd.MarkFlagRequired("id")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
