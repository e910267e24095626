package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minhquang4334/baby-tracker/pkg/timeutil"
)

// WhenOptions
type WhenOptions struct {
	At string
}

func AddAtArgs(cmd *cobra.Command, o *WhenOptions) {
	cmd.Flags().StringVar(&o.At, "at", "",
		`Override the event time, example: --at="14:30".`)
}

// GetAt resolves the --at flag to an ISO timestamp on today's date, or the
// current moment when the flag was not set. The flag carries a clock value
// (HH:MM or HH:MM:SS); the date part is always today.
func (o *WhenOptions) GetAt() (string, error) {
	if o.At == "" {
		return timeutil.NowISO(), nil
	}
	iso, err := timeutil.LocalInputToISO(timeutil.Today() + "T" + o.At)
	if err != nil {
		return "", fmt.Errorf("invalid time %q (want HH:MM)", o.At)
	}
	return iso, nil
}

// DateOptions
type DateOptions struct {
	Date string
}

func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		`Specify a day, example: --date="2025-06-01". Defaults to today.`)
}

// GetDay validates the flag and clamps future days back to today.
func (o *DateOptions) GetDay() (string, error) {
	if o.Date == "" {
		return timeutil.Today(), nil
	}
	if _, err := timeutil.ParseDay(o.Date); err != nil {
		return "", err
	}
	return timeutil.ClampToToday(o.Date), nil
}
