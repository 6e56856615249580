package queries

import (
	"gardenbook/domain/core/entities"
	pkgerrors "gardenbook/pkg/errors"
	"gardenbook/pkg/utils"
)

// GetGardenQuery represents a query to get a single garden
type GetGardenQuery struct {
	GardenID string
}

// Validate validates the GetGardenQuery
func (q GetGardenQuery) Validate() error {
	if q.GardenID == "" {
		return pkgerrors.NewValidationError("garden ID is required")
	}
	return nil
}

// GardenView is the read model returned by garden queries
type GardenView struct {
	ID        string   `json:"id"`
	Owner     string   `json:"owner"`
	Name      string   `json:"name"`
	Location  string   `json:"location"`
	Plants    []string `json:"plants"`
	Image     string   `json:"image"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt *string  `json:"updatedAt,omitempty"`
}

// NewGardenView maps a garden entity to its read model
func NewGardenView(g *entities.Garden) GardenView {
	view := GardenView{
		ID:        g.ID().String(),
		Owner:     g.Owner(),
		Name:      g.Name(),
		Location:  g.Location(),
		Plants:    g.Plants(),
		Image:     g.Image(),
		CreatedAt: utils.FormatRFC3339Nano(g.CreatedAt()),
	}
	if updated := g.UpdatedAt(); updated != nil {
		s := utils.FormatRFC3339Nano(*updated)
		view.UpdatedAt = &s
	}
	return view
}
