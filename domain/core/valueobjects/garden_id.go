package valueobjects

import (
	"errors"

	"github.com/google/uuid"

	pkgerrors "gardenbook/pkg/errors"
)

// GardenID is a value object representing a unique garden identifier.
// Uniqueness is probabilistic: ids are random 128-bit UUIDs and no
// collision check is made against the store.
type GardenID struct {
	value string
}

// NewGardenID creates a new random GardenID
func NewGardenID() GardenID {
	return GardenID{value: uuid.New().String()}
}

// NewGardenIDFromString creates a GardenID from an existing string
func NewGardenIDFromString(id string) (GardenID, error) {
	if id == "" {
		return GardenID{}, pkgerrors.NewValidationError("garden ID cannot be empty")
	}
	return GardenID{value: id}, nil
}

// String returns the string representation of the GardenID
func (id GardenID) String() string {
	return id.value
}

// Equals checks if two GardenIDs are equal
func (id GardenID) Equals(other GardenID) bool {
	return id.value == other.value
}

// IsZero checks if the GardenID is the zero value
func (id GardenID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id GardenID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *GardenID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("GardenID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}
