package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minhquang4334/baby-tracker/pkg/commands/options"
	"github.com/minhquang4334/baby-tracker/pkg/runner/onboard"
)

func addOnboard(topLevel *cobra.Command) {
	co := &options.ChildOptions{}

	cmd := &cobra.Command{
		Use:   "onboard [name]",
		Short: "Create the child profile",
		Example: `
babytrack onboard Mai --birthdate=2025-03-14 --gender=female
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				co.Name = strings.Join(args, " ")
			}
			if co.Name == "" {
				return errors.New("requires a name")
			}
			if co.Birthdate == "" {
				return errors.New("requires --birthdate")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			gender, err := co.GetGender()
			if err != nil {
				return output.HandleError(err)
			}
			birthdate, err := co.GetBirthdate()
			if err != nil {
				return output.HandleError(err)
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			s := onboard.Onboard{
				Name:      co.Name,
				Birthdate: birthdate,
				Gender:    gender,
				Client:    c,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddChildArgs(cmd, co)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
