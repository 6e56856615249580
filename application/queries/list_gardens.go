package queries

// ListGardensQuery lists every garden in the store, in store iteration
// order. Owner, when set, narrows the scan to a single owner's gardens.
type ListGardensQuery struct {
	Owner string
}

// Validate validates the ListGardensQuery
func (q ListGardensQuery) Validate() error {
	return nil
}

// ListGardensResult is the read model for a garden listing
type ListGardensResult struct {
	Gardens []GardenView `json:"gardens"`
	Total   int          `json:"total"`
}
