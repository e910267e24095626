package ui

import (
	"context"

	"github.com/minhquang4334/baby-tracker/pkg/client"
	"github.com/minhquang4334/baby-tracker/pkg/session"
	"github.com/minhquang4334/baby-tracker/pkg/tui/app"
)

// UI launches the full-screen tracker interface.
type UI struct {
	Client     *client.Client
	Reconciler *session.Reconciler
}

func (d *UI) Do(ctx context.Context) error {
	return app.Run(d.Client, d.Reconciler)
}
