package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/minhquang4334/baby-tracker/pkg/commands/options"
	"github.com/minhquang4334/baby-tracker/pkg/model"
	"github.com/minhquang4334/baby-tracker/pkg/runner/diaper"
)

func addDiaper(topLevel *cobra.Command) {
	wo := &options.WhenOptions{}

	cmd := &cobra.Command{
		Use:   "diaper [wet|dirty|mixed]",
		Short: "Log a diaper change",
		Example: `
babytrack diaper wet
babytrack diaper dirty --at="09:15"
`,
		ValidArgs: []string{"wet", "dirty", "mixed"},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a diaper type, one of wet, dirty, mixed")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := model.ParseDiaperType(args[0])
			if err != nil {
				return output.HandleError(err)
			}
			at, err := wo.GetAt()
			if err != nil {
				return output.HandleError(err)
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			s := diaper.Log{Kind: kind, At: at, Client: c}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddAtArgs(cmd, wo)
	options.AddOutputArg(cmd, output)

	addDiaperRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addDiaperRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Delete a logged diaper entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			s := diaper.Remove{ID: io.ID, Client: c}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)
	_ = cmd.MarkFlagRequired("id")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
