package commands

import (
	pkgerrors "gardenbook/pkg/errors"
)

// AddPlantCommand appends a plant to a garden's list. Only the owner may
// add, but the duplicate check runs before the ownership check.
type AddPlantCommand struct {
	GardenID string `json:"garden_id"`
	Plant    string `json:"plant"`
	Caller   string `json:"caller"`
}

// Validate validates the AddPlantCommand
func (c AddPlantCommand) Validate() error {
	if c.GardenID == "" {
		return pkgerrors.NewValidationError("garden ID is required")
	}
	if c.Plant == "" {
		return pkgerrors.NewValidationError("plant is required")
	}
	if c.Caller == "" {
		return pkgerrors.NewValidationError("caller is required")
	}
	return nil
}

// RemovePlantCommand removes a plant from a garden's list. Symmetric to
// AddPlantCommand: the membership check runs before the ownership check.
type RemovePlantCommand struct {
	GardenID string `json:"garden_id"`
	Plant    string `json:"plant"`
	Caller   string `json:"caller"`
}

// Validate validates the RemovePlantCommand
func (c RemovePlantCommand) Validate() error {
	if c.GardenID == "" {
		return pkgerrors.NewValidationError("garden ID is required")
	}
	if c.Plant == "" {
		return pkgerrors.NewValidationError("plant is required")
	}
	if c.Caller == "" {
		return pkgerrors.NewValidationError("caller is required")
	}
	return nil
}
