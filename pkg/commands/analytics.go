package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/minhquang4334/baby-tracker/pkg/commands/options"
	"github.com/minhquang4334/baby-tracker/pkg/runner/analytics"
)

func addAnalytics(topLevel *cobra.Command) {
	po := &options.PeriodOptions{}

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show sleep, feeding, and diaper trends",
		Example: `
babytrack analytics
babytrack analytics --period=30d
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := po.Days()
			if err != nil {
				return output.HandleError(err)
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			s := analytics.Analytics{Days: days, Client: c}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddPeriodArgs(cmd, po)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
