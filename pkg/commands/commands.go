package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/minhquang4334/baby-tracker/pkg/client"
	"github.com/minhquang4334/baby-tracker/pkg/commands/options"
	"github.com/minhquang4334/baby-tracker/pkg/session"
	"github.com/minhquang4334/baby-tracker/pkg/state"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "babytrack",
		Short: base.Wrap80("Track your baby's sleep, feeds, diapers, and growth from the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addOnboard(topLevel)
	addChild(topLevel)
	addStatus(topLevel)
	addSleep(topLevel)
	addFeed(topLevel)
	addDiaper(topLevel)
	addGrowth(topLevel)
	addHistory(topLevel)
	addAnalytics(topLevel)
	addVersion(topLevel)
}

// newClient loads connection settings and builds the API client for a RunE.
func newClient() (*client.Client, error) {
	cfg, err := client.LoadConfig()
	if err != nil {
		return nil, err
	}
	return client.New(cfg), nil
}

func newReconciler() (*client.Client, *session.Reconciler, error) {
	c, err := newClient()
	if err != nil {
		return nil, nil, err
	}
	return c, &session.Reconciler{API: c, State: state.NewStore()}, nil
}
