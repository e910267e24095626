package child

import (
	"context"
	"fmt"

	"github.com/minhquang4334/baby-tracker/pkg/client"
	"github.com/minhquang4334/baby-tracker/pkg/model"
	"github.com/minhquang4334/baby-tracker/pkg/printers"
)

// Show prints the child profile, or an onboarding hint when none exists.
type Show struct {
	Client *client.Client
}

func (n *Show) Do(ctx context.Context) error {
	child, err := n.Client.GetChild(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	if child == nil {
		pp.Failure("No child profile yet. Run 'babytrack onboard' to create one.")
		return nil
	}
	pp.Child(child)
	return nil
}

// Update edits the existing profile. Empty fields keep their current value.
type Update struct {
	Name      string
	Birthdate string
	Gender    model.Gender

	Client *client.Client
}

func (n *Update) Do(ctx context.Context) error {
	current, err := n.Client.GetChild(ctx)
	if err != nil {
		return err
	}
	if current == nil {
		return fmt.Errorf("no child profile yet, run 'babytrack onboard' first")
	}

	req := client.ChildRequest{
		Name:        current.Name,
		DateOfBirth: current.DateOfBirth,
		Gender:      current.Gender,
		PhotoURL:    current.PhotoURL,
		Notes:       current.Notes,
	}
	if n.Name != "" {
		req.Name = n.Name
	}
	if n.Birthdate != "" {
		req.DateOfBirth = n.Birthdate
	}
	if n.Gender != "" {
		req.Gender = n.Gender
	}

	child, err := n.Client.UpdateChild(ctx, req)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Notice("Profile updated")
	pp.Child(child)
	return nil
}
