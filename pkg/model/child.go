package model

import (
	"encoding/json"
	"fmt"
)

// Gender is the closed set accepted by onboarding.
type Gender string

const (
	Female Gender = "female"
	Male   Gender = "male"
	Other  Gender = "other"
)

func (g *Gender) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch Gender(s) {
	case Female, Male, Other:
		*g = Gender(s)
		return nil
	}
	return fmt.Errorf("unknown gender %q", s)
}

// ParseGender maps CLI input onto the closed variant set.
func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case Female, Male, Other:
		return Gender(s), nil
	}
	return "", fmt.Errorf("gender must be one of female, male, other (got %q)", s)
}

// Child is the single tracked profile. Created once via onboarding, updated
// in place, never deleted by the client.
type Child struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      Gender `json:"gender"`
	PhotoURL    string `json:"photo_url,omitempty"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
