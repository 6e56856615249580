package queries

import (
	pkgerrors "gardenbook/pkg/errors"
)

// ListPlantsQuery returns the ordered plant list of one garden
type ListPlantsQuery struct {
	GardenID string
}

// Validate validates the ListPlantsQuery
func (q ListPlantsQuery) Validate() error {
	if q.GardenID == "" {
		return pkgerrors.NewValidationError("garden ID is required")
	}
	return nil
}

// ListPlantsResult is the read model for a garden's plant list
type ListPlantsResult struct {
	GardenID string   `json:"gardenId"`
	Plants   []string `json:"plants"`
}
