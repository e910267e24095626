package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/minhquang4334/baby-tracker/pkg/commands/options"
	"github.com/minhquang4334/baby-tracker/pkg/runner/sleep"
)

func addSleep(topLevel *cobra.Command) {
	wo := &options.WhenOptions{}

	cmd := &cobra.Command{
		Use:   "sleep",
		Short: "Start a sleep timer",
		Example: `
babytrack sleep
babytrack sleep --at="13:05"
babytrack sleep stop
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			at := ""
			if wo.At != "" {
				iso, err := wo.GetAt()
				if err != nil {
					return output.HandleError(err)
				}
				at = iso
			}
			_, r, err := newReconciler()
			if err != nil {
				return err
			}
			s := sleep.Start{At: at, Reconciler: r}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddAtArgs(cmd, wo)
	options.AddOutputArg(cmd, output)

	addSleepStop(cmd)
	addSleepCancel(cmd)
	addSleepRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addSleepStop(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the running sleep timer and log the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, r, err := newReconciler()
			if err != nil {
				return err
			}
			s := sleep.Stop{Reconciler: r}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addSleepCancel(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Discard the running sleep timer without logging it",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, r, err := newReconciler()
			if err != nil {
				return err
			}
			s := sleep.Cancel{Reconciler: r}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addSleepRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Delete a logged sleep entry",
		Example: `
babytrack sleep remove --id=171dff69f8b99dca
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			s := sleep.Remove{ID: io.ID, Client: c}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)
	_ = cmd.MarkFlagRequired("id")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
