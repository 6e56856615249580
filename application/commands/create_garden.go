package commands

import (
	pkgerrors "gardenbook/pkg/errors"
)

// CreateGardenCommand represents the command to create a new garden.
// Plants distinguishes absent (nil) from empty: an empty list is a valid
// garden, a missing field is not.
type CreateGardenCommand struct {
	GardenID string   `json:"garden_id,omitempty"` // optional, generated when empty
	Owner    string   `json:"owner"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Plants   []string `json:"plants"`
	Image    string   `json:"image"`
}

// Validate validates the CreateGardenCommand
func (c CreateGardenCommand) Validate() error {
	if c.Owner == "" {
		return pkgerrors.NewValidationError("owner is required")
	}
	if c.Name == "" {
		return pkgerrors.NewValidationError("name is required")
	}
	if c.Location == "" {
		return pkgerrors.NewValidationError("location is required")
	}
	if c.Plants == nil {
		return pkgerrors.NewValidationError("plants list is required")
	}
	if c.Image == "" {
		return pkgerrors.NewValidationError("image is required")
	}
	return nil
}
