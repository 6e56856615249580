package entities

import (
	"time"

	"gardenbook/domain/core/valueobjects"
	"gardenbook/domain/events"
	pkgerrors "gardenbook/pkg/errors"
)

// Garden is the main entity: a user-owned record holding a mutable,
// ordered list of plant names.
// This is a rich domain model with encapsulated business logic
type Garden struct {
	// Private fields ensure encapsulation
	id        valueobjects.GardenID
	owner     string
	name      string
	location  string
	plants    []string
	image     string
	createdAt time.Time
	updatedAt *time.Time // nil until the first mutation after creation

	// Domain events that occurred during this aggregate's lifetime
	events []events.DomainEvent
}

// NewGarden creates a new garden with full business rule validation.
// A nil plants slice means the field was absent from the payload and is
// rejected; an empty slice is a valid, empty garden. Timestamps come from
// the caller so the clock stays an injected collaborator.
func NewGarden(owner, name, location string, plants []string, image string, now time.Time) (*Garden, error) {
	if owner == "" {
		return nil, pkgerrors.NewValidationError("owner cannot be empty")
	}
	if err := validateFields(name, location, plants, image); err != nil {
		return nil, err
	}

	garden := &Garden{
		id:        valueobjects.NewGardenID(),
		owner:     owner,
		name:      name,
		location:  location,
		plants:    copyPlants(plants),
		image:     image,
		createdAt: now,
		updatedAt: nil,
		events:    []events.DomainEvent{},
	}

	garden.addEvent(events.NewGardenCreated(garden.id.String(), owner, name, now))

	return garden, nil
}

// NewGardenWithID creates a new garden with a caller-supplied identifier.
// Used when the transport layer generates the ID up front so it can be
// echoed back to the client.
func NewGardenWithID(id valueobjects.GardenID, owner, name, location string, plants []string, image string, now time.Time) (*Garden, error) {
	garden, err := NewGarden(owner, name, location, plants, image, now)
	if err != nil {
		return nil, err
	}
	garden.id = id
	// The creation event captured the generated ID; re-emit with ours.
	garden.events = []events.DomainEvent{
		events.NewGardenCreated(id.String(), owner, name, now),
	}
	return garden, nil
}

// ReconstructGarden reconstructs a garden from repository data with
// preserved identity and timestamps. No validation: the store is the
// source of truth for persisted records.
func ReconstructGarden(
	id valueobjects.GardenID,
	owner, name, location string,
	plants []string,
	image string,
	createdAt time.Time,
	updatedAt *time.Time,
) *Garden {
	return &Garden{
		id:        id,
		owner:     owner,
		name:      name,
		location:  location,
		plants:    copyPlants(plants),
		image:     image,
		createdAt: createdAt,
		updatedAt: updatedAt,
		events:    []events.DomainEvent{},
	}
}

// ID returns the garden's unique identifier
func (g *Garden) ID() valueobjects.GardenID {
	return g.id
}

// Owner returns the identity token captured at creation
func (g *Garden) Owner() string {
	return g.owner
}

// Name returns the garden's display name
func (g *Garden) Name() string {
	return g.name
}

// Location returns the garden's location
func (g *Garden) Location() string {
	return g.location
}

// Image returns the garden's image reference
func (g *Garden) Image() string {
	return g.image
}

// CreatedAt returns when the garden was created
func (g *Garden) CreatedAt() time.Time {
	return g.createdAt
}

// UpdatedAt returns the time of the most recent mutation, or nil if the
// garden has never been mutated since creation
func (g *Garden) UpdatedAt() *time.Time {
	if g.updatedAt == nil {
		return nil
	}
	t := *g.updatedAt
	return &t
}

// Plants returns the ordered plant list
func (g *Garden) Plants() []string {
	// Return a copy to maintain encapsulation
	return copyPlants(g.plants)
}

// HasPlant reports whether plant is already in the list
func (g *Garden) HasPlant(plant string) bool {
	for _, p := range g.plants {
		if p == plant {
			return true
		}
	}
	return false
}

// IsOwnedBy compares the caller identity against the record owner
func (g *Garden) IsOwnedBy(caller string) bool {
	return g.owner == caller
}

// Replace overwrites name, location, plants and image wholesale,
// preserving id, owner and createdAt. The plants payload is taken as-is:
// uniqueness is only enforced by AddPlant/RemovePlant.
func (g *Garden) Replace(name, location string, plants []string, image string, now time.Time) error {
	if err := validateFields(name, location, plants, image); err != nil {
		return err
	}

	g.name = name
	g.location = location
	g.plants = copyPlants(plants)
	g.image = image
	g.touch(now)

	g.addEvent(events.NewGardenUpdated(g.id.String(), now))

	return nil
}

// AddPlant appends a plant to the end of the list
func (g *Garden) AddPlant(plant string, now time.Time) error {
	if plant == "" {
		return pkgerrors.NewValidationError("plant cannot be empty")
	}
	if g.HasPlant(plant) {
		return pkgerrors.NewDuplicateError(plant, "garden "+g.id.String())
	}

	g.plants = append(g.plants, plant)
	g.touch(now)

	g.addEvent(events.NewPlantAdded(g.id.String(), plant, now))

	return nil
}

// RemovePlant removes a plant from the list, preserving the relative
// order of the remainder
func (g *Garden) RemovePlant(plant string, now time.Time) error {
	if plant == "" {
		return pkgerrors.NewValidationError("plant cannot be empty")
	}

	found := false
	remaining := make([]string, 0, len(g.plants))
	for _, p := range g.plants {
		if p == plant && !found {
			found = true
			continue
		}
		remaining = append(remaining, p)
	}
	if !found {
		return pkgerrors.NewNotFoundInListError(plant, "garden "+g.id.String())
	}

	g.plants = remaining
	g.touch(now)

	g.addEvent(events.NewPlantRemoved(g.id.String(), plant, now))

	return nil
}

// SetImage replaces the image reference. No emptiness validation on this
// path; clearing the image is allowed.
func (g *Garden) SetImage(image string, now time.Time) {
	g.image = image
	g.touch(now)

	g.addEvent(events.NewGardenImageUpdated(g.id.String(), image, now))
}

// GetUncommittedEvents returns all uncommitted domain events
func (g *Garden) GetUncommittedEvents() []events.DomainEvent {
	return g.events
}

// MarkEventsAsCommitted clears the uncommitted events
func (g *Garden) MarkEventsAsCommitted() {
	g.events = []events.DomainEvent{}
}

// touch records the mutation time. updatedAt stays monotonically
// non-decreasing as long as the injected clock is.
func (g *Garden) touch(now time.Time) {
	t := now
	g.updatedAt = &t
}

// addEvent adds a domain event to the uncommitted list
func (g *Garden) addEvent(event events.DomainEvent) {
	g.events = append(g.events, event)
}

// validateFields guards the create/update payload. Plants is checked for
// presence, not emptiness: a nil slice is a missing field, an empty one
// is an empty garden.
func validateFields(name, location string, plants []string, image string) error {
	if name == "" {
		return pkgerrors.NewValidationError("name cannot be empty")
	}
	if location == "" {
		return pkgerrors.NewValidationError("location cannot be empty")
	}
	if plants == nil {
		return pkgerrors.NewValidationError("plants list is required")
	}
	if image == "" {
		return pkgerrors.NewValidationError("image cannot be empty")
	}
	return nil
}

func copyPlants(plants []string) []string {
	if plants == nil {
		return nil
	}
	out := make([]string, len(plants))
	copy(out, plants)
	return out
}
