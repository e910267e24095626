package options

import (
	"github.com/spf13/cobra"

	"github.com/minhquang4334/baby-tracker/pkg/model"
	"github.com/minhquang4334/baby-tracker/pkg/timeutil"
)

// ChildOptions
type ChildOptions struct {
	Name      string
	Birthdate string
	Gender    string
}

func AddChildArgs(cmd *cobra.Command, o *ChildOptions) {
	cmd.Flags().StringVarP(&o.Name, "name", "n", "",
		"The child's name.")
	cmd.Flags().StringVarP(&o.Birthdate, "birthdate", "b", "",
		`Date of birth, example: --birthdate="2025-03-14".`)
	cmd.Flags().StringVarP(&o.Gender, "gender", "g", "other",
		"One of 'female', 'male', 'other'.")
}

func (o *ChildOptions) GetGender() (model.Gender, error) {
	return model.ParseGender(o.Gender)
}

func (o *ChildOptions) GetBirthdate() (string, error) {
	if _, err := timeutil.ParseDay(o.Birthdate); err != nil {
		return "", err
	}
	return o.Birthdate, nil
}
