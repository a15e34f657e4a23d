package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"persona/internal/domain/entity"
	"persona/internal/domain/repository"
)

func TestPersonRepository_SaveAssignsID(t *testing.T) {
	repo := NewPersonRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, &entity.Person{Login: "alice01", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, 1, saved.ID)

	again, err := repo.Save(ctx, &entity.Person{Login: "bob02", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, 2, again.ID)
}

func TestPersonRepository_SaveEnforcesLoginUniqueness(t *testing.T) {
	repo := NewPersonRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, &entity.Person{Login: "alice01", PasswordHash: "hash"})
	require.NoError(t, err)

	_, err = repo.Save(ctx, &entity.Person{Login: "alice01", PasswordHash: "other"})
	assert.ErrorIs(t, err, repository.ErrLoginTaken)

	// Replacing the same row keeps its own login without conflict.
	stored, err := repo.FindByLogin(ctx, "alice01")
	require.NoError(t, err)
	stored.PasswordHash = "updated"
	_, err = repo.Save(ctx, stored)
	assert.NoError(t, err)
}

func TestPersonRepository_FindByIDAndLogin(t *testing.T) {
	repo := NewPersonRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, &entity.Person{Login: "alice01", PasswordHash: "hash"})
	require.NoError(t, err)

	byID, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice01", byID.Login)

	byLogin, err := repo.FindByLogin(ctx, "alice01")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, byLogin.ID)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrPersonNotFound)

	_, err = repo.FindByLogin(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrPersonNotFound)
}

func TestPersonRepository_FindAllOrdersByID(t *testing.T) {
	repo := NewPersonRepository()
	ctx := context.Background()

	for _, login := range []string{"alice01", "bob02", "carol03"} {
		_, err := repo.Save(ctx, &entity.Person{Login: login, PasswordHash: "hash"})
		require.NoError(t, err)
	}

	persons, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, persons, 3)
	assert.Equal(t, []string{"alice01", "bob02", "carol03"},
		[]string{persons[0].Login, persons[1].Login, persons[2].Login})
}

func TestPersonRepository_DeleteByID(t *testing.T) {
	repo := NewPersonRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, &entity.Person{Login: "alice01", PasswordHash: "hash"})
	require.NoError(t, err)

	deleted, err := repo.DeleteByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Deleting a non-existent id reports false and leaves the store alone.
	deleted, err = repo.DeleteByID(ctx, 999)
	require.NoError(t, err)
	assert.False(t, deleted)

	persons, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, persons)
}
