package events

import (
	"time"
)

// GardenCreated is raised when a new garden is created
type GardenCreated struct {
	BaseEvent
	GardenID string `json:"garden_id"`
	Owner    string `json:"owner"`
	Name     string `json:"name"`
}

// NewGardenCreated creates a GardenCreated event
func NewGardenCreated(gardenID, owner, name string, timestamp time.Time) GardenCreated {
	return GardenCreated{
		BaseEvent: BaseEvent{
			AggregateID: gardenID,
			EventType:   "garden.created",
			Timestamp:   timestamp,
			Version:     1,
		},
		GardenID: gardenID,
		Owner:    owner,
		Name:     name,
	}
}

// GardenUpdated is raised when a garden's fields are replaced wholesale
type GardenUpdated struct {
	BaseEvent
	GardenID string `json:"garden_id"`
}

// NewGardenUpdated creates a GardenUpdated event
func NewGardenUpdated(gardenID string, timestamp time.Time) GardenUpdated {
	return GardenUpdated{
		BaseEvent: BaseEvent{
			AggregateID: gardenID,
			EventType:   "garden.updated",
			Timestamp:   timestamp,
			Version:     1,
		},
		GardenID: gardenID,
	}
}

// GardenDeleted is raised when a garden is removed from the store
type GardenDeleted struct {
	BaseEvent
	GardenID string `json:"garden_id"`
	Owner    string `json:"owner"`
}

// NewGardenDeleted creates a GardenDeleted event
func NewGardenDeleted(gardenID, owner string, timestamp time.Time) GardenDeleted {
	return GardenDeleted{
		BaseEvent: BaseEvent{
			AggregateID: gardenID,
			EventType:   "garden.deleted",
			Timestamp:   timestamp,
			Version:     1,
		},
		GardenID: gardenID,
		Owner:    owner,
	}
}

// PlantAdded is raised when a plant is appended to a garden's list
type PlantAdded struct {
	BaseEvent
	GardenID string `json:"garden_id"`
	Plant    string `json:"plant"`
}

// NewPlantAdded creates a PlantAdded event
func NewPlantAdded(gardenID, plant string, timestamp time.Time) PlantAdded {
	return PlantAdded{
		BaseEvent: BaseEvent{
			AggregateID: gardenID,
			EventType:   "garden.plant_added",
			Timestamp:   timestamp,
			Version:     1,
		},
		GardenID: gardenID,
		Plant:    plant,
	}
}

// PlantRemoved is raised when a plant is removed from a garden's list
type PlantRemoved struct {
	BaseEvent
	GardenID string `json:"garden_id"`
	Plant    string `json:"plant"`
}

// NewPlantRemoved creates a PlantRemoved event
func NewPlantRemoved(gardenID, plant string, timestamp time.Time) PlantRemoved {
	return PlantRemoved{
		BaseEvent: BaseEvent{
			AggregateID: gardenID,
			EventType:   "garden.plant_removed",
			Timestamp:   timestamp,
			Version:     1,
		},
		GardenID: gardenID,
		Plant:    plant,
	}
}

// GardenImageUpdated is raised when a garden's image reference changes
type GardenImageUpdated struct {
	BaseEvent
	GardenID string `json:"garden_id"`
	Image    string `json:"image"`
}

// NewGardenImageUpdated creates a GardenImageUpdated event
func NewGardenImageUpdated(gardenID, image string, timestamp time.Time) GardenImageUpdated {
	return GardenImageUpdated{
		BaseEvent: BaseEvent{
			AggregateID: gardenID,
			EventType:   "garden.image_updated",
			Timestamp:   timestamp,
			Version:     1,
		},
		GardenID: gardenID,
		Image:    image,
	}
}
