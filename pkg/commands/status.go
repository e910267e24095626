package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/minhquang4334/baby-tracker/pkg/commands/options"
	"github.com/minhquang4334/baby-tracker/pkg/runner/status"
)

func addStatus(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show today's dashboard",
		Example: `
babytrack status
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, r, err := newReconciler()
			if err != nil {
				return err
			}
			s := status.Status{
				ShowID:     io.ShowID,
				Client:     c,
				Reconciler: r,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
