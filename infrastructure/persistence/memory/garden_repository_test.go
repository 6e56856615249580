package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gardenbook/domain/core/entities"
	"gardenbook/domain/core/valueobjects"
	pkgerrors "gardenbook/pkg/errors"
)

func newTestGarden(t *testing.T, id, owner string) *entities.Garden {
	t.Helper()
	gid, err := valueobjects.NewGardenIDFromString(id)
	require.NoError(t, err)
	return entities.ReconstructGarden(
		gid,
		owner,
		"Garden "+id,
		"Somewhere",
		[]string{"tomato"},
		"img",
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		nil,
	)
}

func TestGardenRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewGardenRepository()

	garden := newTestGarden(t, "g1", "user-1")
	require.NoError(t, repo.Save(ctx, garden))

	found, err := repo.FindByID(ctx, garden.ID())
	require.NoError(t, err)
	assert.Equal(t, garden.Owner(), found.Owner())
	assert.Equal(t, garden.Plants(), found.Plants())
	assert.Nil(t, found.UpdatedAt())
}

func TestGardenRepositoryFindByIDNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewGardenRepository()

	id, err := valueobjects.NewGardenIDFromString("missing")
	require.NoError(t, err)

	_, err = repo.FindByID(ctx, id)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestGardenRepositoryReadsDoNotAliasStore(t *testing.T) {
	ctx := context.Background()
	repo := NewGardenRepository()

	garden := newTestGarden(t, "g1", "user-1")
	require.NoError(t, repo.Save(ctx, garden))

	// Mutating the entity after save must not affect the stored record
	require.NoError(t, garden.AddPlant("basil", time.Now()))

	stored, err := repo.FindByID(ctx, garden.ID())
	require.NoError(t, err)
	assert.Equal(t, []string{"tomato"}, stored.Plants())
}

func TestGardenRepositoryFindAllSortedByKey(t *testing.T) {
	ctx := context.Background()
	repo := NewGardenRepository()

	// Insert out of key order
	require.NoError(t, repo.Save(ctx, newTestGarden(t, "c", "user-1")))
	require.NoError(t, repo.Save(ctx, newTestGarden(t, "a", "user-2")))
	require.NoError(t, repo.Save(ctx, newTestGarden(t, "b", "user-1")))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID().String())
	assert.Equal(t, "b", all[1].ID().String())
	assert.Equal(t, "c", all[2].ID().String())
}

func TestGardenRepositoryFindByOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewGardenRepository()

	require.NoError(t, repo.Save(ctx, newTestGarden(t, "a", "user-1")))
	require.NoError(t, repo.Save(ctx, newTestGarden(t, "b", "user-2")))
	require.NoError(t, repo.Save(ctx, newTestGarden(t, "c", "user-1")))

	owned, err := repo.FindByOwner(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, owned, 2)
	for _, g := range owned {
		assert.Equal(t, "user-1", g.Owner())
	}
}

func TestGardenRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewGardenRepository()

	garden := newTestGarden(t, "g1", "user-1")
	require.NoError(t, repo.Save(ctx, garden))
	require.NoError(t, repo.Delete(ctx, garden.ID()))
	assert.Equal(t, 0, repo.Len())

	err := repo.Delete(ctx, garden.ID())
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestGardenRepositoryFailureInjection(t *testing.T) {
	ctx := context.Background()
	repo := NewGardenRepository()
	garden := newTestGarden(t, "g1", "user-1")
	require.NoError(t, repo.Save(ctx, garden))

	repo.ReadErr = errors.New("read failed")
	_, err := repo.FindByID(ctx, garden.ID())
	assert.True(t, pkgerrors.IsStoreRead(err))
	_, err = repo.FindAll(ctx)
	assert.True(t, pkgerrors.IsStoreRead(err))

	repo.ReadErr = nil
	repo.WriteErr = errors.New("write failed")
	err = repo.Save(ctx, garden)
	assert.True(t, pkgerrors.IsStoreWrite(err))
	err = repo.Delete(ctx, garden.ID())
	assert.True(t, pkgerrors.IsStoreWrite(err))
}
