package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/minhquang4334/baby-tracker/pkg/commands/options"
	"github.com/minhquang4334/baby-tracker/pkg/runner/history"
)

func addHistory(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the event timeline for a day",
		Example: `
babytrack history
babytrack history --date=2025-06-01 --filter=sleep
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := do.GetDay()
			if err != nil {
				return output.HandleError(err)
			}
			filter, err := fo.GetFilter()
			if err != nil {
				return output.HandleError(err)
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			s := history.History{
				Day:    day,
				Filter: filter,
				ShowID: io.ShowID,
				Client: c,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
