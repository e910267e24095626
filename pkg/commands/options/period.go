package options

import (
	"github.com/spf13/cobra"

	"github.com/minhquang4334/baby-tracker/pkg/timeutil"
)

// PeriodOptions
type PeriodOptions struct {
	Period string
}

func AddPeriodArgs(cmd *cobra.Command, o *PeriodOptions) {
	cmd.Flags().StringVarP(&o.Period, "period", "p", timeutil.DefaultPeriod,
		`Size of the reporting window, example: --period=30d or --period=2w.`)
}

// Days resolves the flag into a day count.
func (o *PeriodOptions) Days() (int, error) {
	days, _, err := timeutil.ParsePeriod(o.Period)
	return days, err
}
