package di

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gardenbook/application/commands"
	"gardenbook/application/ports"
	"gardenbook/application/queries"
	"gardenbook/infrastructure/messaging/noop"
	"gardenbook/infrastructure/persistence/memory"
	pkgerrors "gardenbook/pkg/errors"
)

// TestGardenLifecycleThroughBuses drives every operation end to end
// through the wired command and query buses, the way the HTTP layer does.
func TestGardenLifecycleThroughBuses(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewGardenRepository()
	publisher := noop.NewPublisher()
	clock := ports.Clock(func() time.Time {
		return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	})
	logger := zap.NewNop()

	commandBus := ProvideCommandBus(repo, publisher, clock, logger)
	queryBus := ProvideQueryBus(repo, logger)

	const gardenID = "11111111-2222-3333-4444-555555555555"

	// Create
	err := commandBus.Send(ctx, commands.CreateGardenCommand{
		GardenID: gardenID,
		Owner:    "user-1",
		Name:     "Back Yard",
		Location: "Portland",
		Plants:   []string{"tomato"},
		Image:    "img",
	})
	require.NoError(t, err)

	// Get returns what create stored
	result, err := queryBus.Ask(ctx, queries.GetGardenQuery{GardenID: gardenID})
	require.NoError(t, err)
	view := result.(queries.GardenView)
	assert.Equal(t, "user-1", view.Owner)
	assert.Equal(t, []string{"tomato"}, view.Plants)
	assert.Nil(t, view.UpdatedAt)

	// Add a plant
	err = commandBus.Send(ctx, commands.AddPlantCommand{
		GardenID: gardenID,
		Plant:    "basil",
		Caller:   "user-1",
	})
	require.NoError(t, err)

	// Duplicate add fails through the bus with the typed error intact
	err = commandBus.Send(ctx, commands.AddPlantCommand{
		GardenID: gardenID,
		Plant:    "basil",
		Caller:   "user-1",
	})
	assert.True(t, pkgerrors.IsDuplicate(err))

	// List plants reflects the addition
	result, err = queryBus.Ask(ctx, queries.ListPlantsQuery{GardenID: gardenID})
	require.NoError(t, err)
	plants := result.(queries.ListPlantsResult)
	assert.Equal(t, []string{"tomato", "basil"}, plants.Plants)

	// Remove a plant
	err = commandBus.Send(ctx, commands.RemovePlantCommand{
		GardenID: gardenID,
		Plant:    "tomato",
		Caller:   "user-1",
	})
	require.NoError(t, err)

	// Update wholesale
	err = commandBus.Send(ctx, commands.UpdateGardenCommand{
		GardenID: gardenID,
		Name:     "Front Yard",
		Location: "Salem",
		Plants:   []string{"rose"},
		Image:    "img2",
	})
	require.NoError(t, err)

	// Update image, empty is allowed
	err = commandBus.Send(ctx, commands.UpdateImageCommand{
		GardenID: gardenID,
		Image:    "",
	})
	require.NoError(t, err)

	result, err = queryBus.Ask(ctx, queries.GetGardenQuery{GardenID: gardenID})
	require.NoError(t, err)
	view = result.(queries.GardenView)
	assert.Equal(t, "Front Yard", view.Name)
	assert.Equal(t, []string{"rose"}, view.Plants)
	assert.Equal(t, "", view.Image)
	require.NotNil(t, view.UpdatedAt)

	// Listing spans all owners
	result, err = queryBus.Ask(ctx, queries.ListGardensQuery{})
	require.NoError(t, err)
	listing := result.(queries.ListGardensResult)
	assert.Equal(t, 1, listing.Total)

	// Non-owner delete is rejected
	err = commandBus.Send(ctx, commands.DeleteGardenCommand{
		GardenID: gardenID,
		Caller:   "user-2",
	})
	assert.True(t, pkgerrors.IsAuthorization(err))

	// Owner delete succeeds
	err = commandBus.Send(ctx, commands.DeleteGardenCommand{
		GardenID: gardenID,
		Caller:   "user-1",
	})
	require.NoError(t, err)

	_, err = queryBus.Ask(ctx, queries.GetGardenQuery{GardenID: gardenID})
	assert.True(t, pkgerrors.IsNotFound(err))
}

// TestCommandBusValidatesBeforeDispatch checks that command validation
// runs before any handler is consulted.
func TestCommandBusValidatesBeforeDispatch(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewGardenRepository()
	clock := ports.SystemClock
	commandBus := ProvideCommandBus(repo, noop.NewPublisher(), clock, zap.NewNop())

	err := commandBus.Send(ctx, commands.CreateGardenCommand{
		Owner:    "user-1",
		Name:     "", // invalid
		Location: "Portland",
		Plants:   []string{},
		Image:    "img",
	})
	assert.True(t, pkgerrors.IsValidation(err))
	assert.Equal(t, 0, repo.Len())
}
