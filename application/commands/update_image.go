package commands

// UpdateImageCommand replaces a garden's image reference. This path
// carries no field validation and no ownership gate; an unknown garden
// still surfaces as not-found from the handler.
type UpdateImageCommand struct {
	GardenID string `json:"garden_id"`
	Image    string `json:"image"`
}

// Validate validates the UpdateImageCommand
func (c UpdateImageCommand) Validate() error {
	return nil
}
