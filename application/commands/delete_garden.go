package commands

import (
	pkgerrors "gardenbook/pkg/errors"
)

// DeleteGardenCommand removes a garden. Only the owner may delete.
type DeleteGardenCommand struct {
	GardenID string `json:"garden_id"`
	Caller   string `json:"caller"`
}

// Validate validates the DeleteGardenCommand
func (c DeleteGardenCommand) Validate() error {
	if c.GardenID == "" {
		return pkgerrors.NewValidationError("garden ID is required")
	}
	if c.Caller == "" {
		return pkgerrors.NewValidationError("caller is required")
	}
	return nil
}
