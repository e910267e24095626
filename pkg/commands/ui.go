package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/minhquang4334/baby-tracker/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
babytrack ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, r, err := newReconciler()
			if err != nil {
				return err
			}
			i := ui.UI{Client: c, Reconciler: r}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
