package options

import (
	"github.com/spf13/cobra"

	"github.com/minhquang4334/baby-tracker/pkg/timeline"
)

// FilterOptions
type FilterOptions struct {
	Filter string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", "all",
		"Show only one kind of event. One of 'all', 'sleep', 'feeding', 'diaper'.")
}

func (o *FilterOptions) GetFilter() (timeline.Filter, error) {
	return timeline.ParseFilter(o.Filter)
}
