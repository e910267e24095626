package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minhquang4334/baby-tracker/pkg/commands/options"
	"github.com/minhquang4334/baby-tracker/pkg/model"
	"github.com/minhquang4334/baby-tracker/pkg/runner/child"
)

func addChild(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "child",
		Short: "Show the child profile",
		Example: `
babytrack child
babytrack child update --name=Mai
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			s := child.Show{Client: c}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addChildUpdate(cmd)

	topLevel.AddCommand(cmd)
}

func addChildUpdate(topLevel *cobra.Command) {
	co := &options.ChildOptions{}

	cmd := &cobra.Command{
		Use:   "update [name]",
		Short: "Edit the child profile",
		Example: `
babytrack child update --birthdate=2025-03-15
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				co.Name = strings.Join(args, " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var gender model.Gender
			if cmd.Flags().Changed("gender") {
				g, err := co.GetGender()
				if err != nil {
					return output.HandleError(err)
				}
				gender = g
			}
			birthdate := ""
			if co.Birthdate != "" {
				b, err := co.GetBirthdate()
				if err != nil {
					return output.HandleError(err)
				}
				birthdate = b
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			s := child.Update{
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
