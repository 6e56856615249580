package commands

import (
	pkgerrors "gardenbook/pkg/errors"
)

// UpdateGardenCommand replaces a garden's mutable fields wholesale.
// There is no caller field here: the update path is not ownership-gated.
type UpdateGardenCommand struct {
	GardenID string   `json:"garden_id"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Plants   []string `json:"plants"`
	Image    string   `json:"image"`
}

// Validate validates the UpdateGardenCommand
func (c UpdateGardenCommand) Validate() error {
	if c.GardenID == "" {
		return pkgerrors.NewValidationError("garden ID is required")
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
