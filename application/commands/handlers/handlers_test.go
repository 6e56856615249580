package handlers_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gardenbook/application/commands"
	"gardenbook/application/commands/handlers"
	"gardenbook/application/ports"
	"gardenbook/domain/core/entities"
	"gardenbook/infrastructure/messaging/noop"
	"gardenbook/infrastructure/persistence/memory"
	pkgerrors "gardenbook/pkg/errors"
)

var testTime = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func fixedClock(t time.Time) ports.Clock {
	return func() time.Time { return t }
}

type fixture struct {
	repo  *memory.GardenRepository
	clock ports.Clock
}

func newFixture() *fixture {
	return &fixture{
		repo:  memory.NewGardenRepository(),
		clock: fixedClock(testTime),
	}
}

func (f *fixture) createGarden(t *testing.T, owner string, plants []string) *entities.Garden {
	t.Helper()
	handler := handlers.NewCreateGardenHandler(f.repo, noop.NewPublisher(), f.clock, zap.NewNop())
	garden, err := handler.Handle(context.Background(), commands.CreateGardenCommand{
		Owner:    owner,
		Name:     "Back Yard",
		Location: "Portland",
		Plants:   plants,
		Image:    "https://img.example/back-yard.jpg",
	})
	require.NoError(t, err)
	return garden
}

func TestCreateGardenHandler(t *testing.T) {
	t.Run("creates and persists a garden", func(t *testing.T) {
		f := newFixture()
		garden := f.createGarden(t, "user-1", []string{"tomato", "basil"})

		assert.Equal(t, "user-1", garden.Owner())
		assert.Equal(t, testTime, garden.CreatedAt())
		assert.Nil(t, garden.UpdatedAt())

		stored, err := f.repo.FindByID(context.Background(), garden.ID())
		require.NoError(t, err)
		assert.Equal(t, garden.Plants(), stored.Plants())
	})

	t.Run("uses the supplied garden ID when present", func(t *testing.T) {
		f := newFixture()
		handler := handlers.NewCreateGardenHandler(f.repo, noop.NewPublisher(), f.clock, zap.NewNop())
		garden, err := handler.Handle(context.Background(), commands.CreateGardenCommand{
			GardenID: "garden-42",
			Owner:    "user-1",
			Name:     "Herbs",
			Location: "Kitchen",
			Plants:   []string{},
			Image:    "img",
		})
		require.NoError(t, err)
		assert.Equal(t, "garden-42", garden.ID().String())
	})

	t.Run("empty plant list is a valid garden", func(t *testing.T) {
		f := newFixture()
		garden := f.createGarden(t, "user-1", []string{})
		assert.Empty(t, garden.Plants())
	})

	t.Run("missing plant list is rejected", func(t *testing.T) {
		f := newFixture()
		handler := handlers.NewCreateGardenHandler(f.repo, noop.NewPublisher(), f.clock, zap.NewNop())
		_, err := handler.Handle(context.Background(), commands.CreateGardenCommand{
			Owner:    "user-1",
			Name:     "Herbs",
			Location: "Kitchen",
			Plants:   nil,
			Image:    "img",
		})
		assert.True(t, pkgerrors.IsValidation(err))
		assert.Equal(t, 0, f.repo.Len())
	})

	t.Run("store write failure surfaces as a write error", func(t *testing.T) {
		f := newFixture()
		f.repo.WriteErr = errors.New("disk full")
		handler := handlers.NewCreateGardenHandler(f.repo, noop.NewPublisher(), f.clock, zap.NewNop())
		_, err := handler.Handle(context.Background(), commands.CreateGardenCommand{
			Owner:    "user-1",
			Name:     "Herbs",
			Location: "Kitchen",
			Plants:   []string{},
			Image:    "img",
		})
		assert.True(t, pkgerrors.IsStoreWrite(err))
	})
}

func TestUpdateGardenHandler(t *testing.T) {
	t.Run("replaces fields wholesale and preserves identity", func(t *testing.T) {
		f := newFixture()
		garden := f.createGarden(t, "user-1", []string{"tomato"})

		later := testTime.Add(time.Hour)
		handler := handlers.NewUpdateGardenHandler(f.repo, noop.NewPublisher(), fixedClock(later), zap.NewNop())
		updated, err := handler.Handle(context.Background(), commands.UpdateGardenCommand{
			GardenID: garden.ID().String(),
			Name:     "Front Yard",
			Location: "Salem",
			Plants:   []string{"rose", "rose"},
			Image:    "new-img",
		})
		require.NoError(t, err)

		assert.Equal(t, garden.ID(), updated.ID())
		assert.Equal(t, "user-1", updated.Owner())
		assert.Equal(t, testTime, updated.CreatedAt())
		// Wholesale replacement keeps the payload as-is, duplicates included
		assert.Equal(t, []string{"rose", "rose"}, updated.Plants())
		require.NotNil(t, updated.UpdatedAt())
		assert.Equal(t, later, *updated.UpdatedAt())
	})

	t.Run("update is not ownership gated", func(t *testing.T) {
		f := newFixture()
		garden := f.createGarden(t, "user-1", []string{"tomato"})

		handler := handlers.NewUpdateGardenHandler(f.repo, noop.NewPublisher(), f.clock, zap.NewNop())
		_, err := handler.Handle(context.Background(), commands.UpdateGardenCommand{
			GardenID: garden.ID().String(),
			Name:     "Taken Over",
			Location: "Elsewhere",
			Plants:   []string{},
			Image:    "img",
		})
		assert.NoError(t, err)
	})

	t.Run("unknown garden yields not found", func(t *testing.T) {
		f := newFixture()
		handler := handlers.NewUpdateGardenHandler(f.repo, noop.NewPublisher(), f.clock, zap.NewNop())
		_, err := handler.Handle(context.Background(), commands.UpdateGardenCommand{
			GardenID: "missing",
			Name:     "X",
			Location: "Y",
			Plants:   []string{},
			Image:    "img",
		})
		assert.True(t, pkgerrors.IsNotFound(err))
	})
}

func TestDeleteGardenHandler(t *testing.T) {
	t.Run("returns the record as it was before deletion", func(t *testing.T) {
		f := newFixture()
		garden := f.createGarden(t, "user-1", []string{"tomato", "basil"})

		handler := handlers.NewDeleteGardenHandler(f.repo, noop.NewPublisher(), f.clock, zap.NewNop())
		deleted, err := handler.Handle(context.Background(), commands.DeleteGardenCommand{
			GardenID: garden.ID().String(),
			Caller:   "user-1",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"tomato", "basil"}, deleted.Plants())
		assert.Equal(t, 0, f.repo.Len())

		_, err = f.repo.FindByID(context.Background(), garden.ID())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("non-owner may not delete", func(t *testing.T) {
		f := newFixture()
		garden := f.createGarden(t, "user-1", []string{"tomato"})

		handler := handlers.NewDeleteGardenHandler(f.repo, noop.NewPublisher(), f.clock, zap.NewNop())
		_, err := handler.Handle(context.Background(), commands.DeleteGardenCommand{
			GardenID: garden.ID().String(),
			Caller:   "user-2",
		})
		assert.True(t, pkgerrors.IsAuthorization(err))
		assert.Equal(t, 1, f.repo.Len())
	})

	t.Run("store read failure surfaces as a read error", func(t *testing.T) {
		f := newFixture()
		garden := f.createGarden(t, "user-1", []string{})
		f.repo.ReadErr = errors.New("connection reset")

		handler := handlers.NewDeleteGardenHandler(f.repo, noop.NewPublisher(), f.clock, zap.NewNop())
		_, err := handler.Handle(context.Background(), commands.DeleteGardenCommand{
			GardenID: garden.ID().String(),
			Caller:   "user-1",
		})
		assert.True(t, pkgerrors.IsStoreRead(err))
	})
}

func TestAddPlantHandler(t *testing.T) {
	t.Run("appends to the end of the list", func(t *testing.T) {
		f := newFixture()
		garden := f.createGarden(t, "user-1", []string{"tomato"})

		later := testTime.Add(time.Minute)
		handler := handlers.NewAddPlantHandler(f.repo, noop.NewPublisher(), fixedClock(later), zap.NewNop())
		updated, err := handler.Handle(context.Background(), commands.AddPlantCommand{
			GardenID: garden.ID().String(),
			Plant:    "basil",
			Caller:   "user-1",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"tomato", "basil"}, updated.Plants())
		require.NotNil(t, updated.UpdatedAt())
		assert.Equal(t, later, *updated.UpdatedAt())
	})

	t.Run("duplicate plant is rejected", func(t *testing.T) {
		f := newFixture()
		garden := f.createGarden(t, "user-1", []string{"tomato"})

		handler := handlers.NewAddPlantHandler(f.repo, noop.NewPublisher(), f.clock, zap.NewNop())
		_, err := handler.Handle(context.Background(), commands.AddPlantCommand{
			GardenID: garden.ID().String(),
			Plant:    "tomato",
			Caller:   "user-1",
		})
		assert.True(t, pkgerrors.IsDuplicate(err))
	})

	t.Run("duplicate check precedes ownership check", func(t *testing.T) {
		f := newFixture()
		garden := f.createGarden(t, "user-1", []string{"tomato"})

		handler := handlers.NewAddPlantHandler(f.repo, noop.NewPublisher(), f.clock, zap.NewNop())
		_, err := handler.Handle(context.Background(), commands.AddPlantCommand{
			GardenID: garden.ID().String(),
			Plant:    "tomato",
			Caller:   "user-2",
		})
		assert.True(t, pkgerrors.IsDuplicate(err))
	})

	t.Run("non-owner may not add a new plant", func(t *testing.T) {
		f := newFixture()
		garden := f.createGarden(t, "user-1", []string{"tomato"})

		handler := handlers.NewAddPlantHandler(f.repo, noop.NewPublisher(), f.clock, zap.NewNop())
		_, err := handler.Handle(context.Background(), commands.AddPlantCommand{
			GardenID: garden.ID().String(),
			Plant:    "basil",
			Caller:   "user-2",
		})
		assert.True(t, pkgerrors.IsAuthorization(err))

		stored, err := f.repo.FindByID(context.Background(), garden.ID())
		require.NoError(t, err)
		assert.Equal(t, []string{"tomato"}, stored.Plants())
	})
}

func TestRemovePlantHandler(t *testing.T) {
	t.Run("removes while preserving order", func(t *testing.T) {
		f := newFixture()
		garden := f.createGarden(t, "user-1", []string{"tomato", "basil", "rose"})

		handler := handlers.NewRemovePlantHandler(f.repo, noop.NewPublisher(), f.clock, zap.NewNop())
		updated, err := handler.Handle(context.Background(), commands.RemovePlantCommand{
			GardenID: garden.ID().String(),
			Plant:    "basil",
			Caller:   "user-1",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"tomato", "rose"}, updated.Plants())
	})

	t.Run("absent plant yields not found in list", func(t *testing.T) {
		f := newFixture()
		garden := f.createGarden(t, "user-1", []string{"tomato"})

		handler := handlers.NewRemovePlantHandler(f.repo, noop.NewPublisher(), f.clock, zap.NewNop())
		_, err := handler.Handle(context.Background(), commands.RemovePlantCommand{
			GardenID: garden.ID().String(),
			Plant:    "basil",
			Caller:   "user-1",
		})
		assert.True(t, pkgerrors.IsNotFoundInList(err))
	})

	t.Run("membership check precedes ownership check", func(t *testing.T) {
		f := newFixture()
		garden := f.createGarden(t, "user-1", []string{"tomato"})

		handler := handlers.NewRemovePlantHandler(f.repo, noop.NewPublisher(), f.clock, zap.NewNop())
		_, err := handler.Handle(context.Background(), commands.RemovePlantCommand{
			GardenID: garden.ID().String(),
			Plant:    "basil",
			Caller:   "user-2",
		})
		assert.True(t, pkgerrors.IsNotFoundInList(err))
	})

	t.Run("non-owner may not remove a present plant", func(t *testing.T) {
		f := newFixture()
		garden := f.createGarden(t, "user-1", []string{"tomato"})

		handler := handlers.NewRemovePlantHandler(f.repo, noop.NewPublisher(), f.clock, zap.NewNop())
		_, err := handler.Handle(context.Background(), commands.RemovePlantCommand{
			GardenID: garden.ID().String(),
			Plant:    "tomato",
			Caller:   "user-2",
		})
		assert.True(t, pkgerrors.IsAuthorization(err))
	})
}

func TestUpdateImageHandler(t *testing.T) {
	t.Run("replaces the image without validation", func(t *testing.T) {
		f := newFixture()
		garden := f.createGarden(t, "user-1", []string{"tomato"})

		later := testTime.Add(time.Minute)
		handler := handlers.NewUpdateImageHandler(f.repo, noop.NewPublisher(), fixedClock(later), zap.NewNop())
		updated, err := handler.Handle(context.Background(), commands.UpdateImageCommand{
			GardenID: garden.ID().String(),
			Image:    "",
		})
		require.NoError(t, err)
		assert.Equal(t, "", updated.Image())
		require.NotNil(t, updated.UpdatedAt())
		assert.Equal(t, later, *updated.UpdatedAt())
	})

	t.Run("unparseable id reads as not found", func(t *testing.T) {
		f := newFixture()
		handler := handlers.NewUpdateImageHandler(f.repo, noop.NewPublisher(), f.clock, zap.NewNop())
		_, err := handler.Handle(context.Background(), commands.UpdateImageCommand{
			GardenID: "",
			Image:    "img",
		})
		assert.True(t, pkgerrors.IsNotFound(err))
	})
}
