package onboard

import (
	"context"
	"fmt"

	"github.com/minhquang4334/baby-tracker/pkg/client"
	"github.com/minhquang4334/baby-tracker/pkg/model"
	"github.com/minhquang4334/baby-tracker/pkg/printers"
)

type Onboard struct {
	Name      string
	Birthdate string
	Gender    model.Gender

	Client *client.Client
}

func (n *Onboard) Do(ctx context.Context) error {
	existing, err := n.Client.GetChild(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("a profile for %s already exists", existing.Name)
	}

	child, err := n.Client.CreateChild(ctx, client.ChildRequest{
		Name:        n.Name,
		DateOfBirth: n.Birthdate,
		Gender:      n.Gender,
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Notice(fmt.Sprintf("Welcome, %s!", child.Name))
	pp.Child(child)
	return nil
}
