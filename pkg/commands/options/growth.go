package options

import (
	"github.com/spf13/cobra"
)

// GrowthOptions
type GrowthOptions struct {
	WeightGrams       float64
	LengthCM          float64
	HeadCircumference float64
}

func AddGrowthArgs(cmd *cobra.Command, o *GrowthOptions) {
	cmd.Flags().Float64VarP(&o.WeightGrams, "weight", "w", 0,
		"Weight in grams.")
	cmd.Flags().Float64VarP(&o.LengthCM, "length", "l", 0,
		"Length in centimeters.")
	cmd.Flags().Float64Var(&o.HeadCircumference, "head", 0,
		"Head circumference in centimeters.")
}
