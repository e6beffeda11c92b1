package db_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	dbadapter "todolist/internal/adapter/db"
	"todolist/internal/core/domain"
)

func TestCategoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	categories := dbadapter.NewCategoryRepository(openTestDB(t))

	color := "#fff"
	work := domain.Category{ID: uuid.NewString(), Name: "Work", Color: &color, OwnerID: "alice"}
	home := domain.Category{ID: uuid.NewString(), Name: "Home", OwnerID: "alice"}
	require.NoError(t, categories.Insert(ctx, work))
	require.NoError(t, categories.Insert(ctx, home))

	list, err := categories.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Home", list[0].Name)
	require.Nil(t, list[0].Color)
	require.Equal(t, "#fff", *list[1].Color)

	found, err := categories.FindByName(ctx, "alice", "Work")
	require.NoError(t, err)
	require.Equal(t, work.ID, found.ID)

	_, err = categories.FindByName(ctx, "bob", "Work")
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)

	exists, err := categories.ExistsByName(ctx, "alice", "Home")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = categories.ExistsByName(ctx, "bob", "Home")
	require.NoError(t, err)
	require.False(t, exists)

	home.Name = "House"
	require.NoError(t, categories.Update(ctx, home))
	got, err := categories.GetByID(ctx, "alice", home.ID)
	require.NoError(t, err)
	require.Equal(t, "House", got.Name)

	_, err = categories.GetByID(ctx, "bob", home.ID)
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)

	require.ErrorIs(t, categories.Delete(ctx, "bob", home.ID), domain.ErrCategoryNotFound)
	require.NoError(t, categories.Delete(ctx, "alice", home.ID))
	require.ErrorIs(t, categories.Delete(ctx, "alice", home.ID), domain.ErrCategoryNotFound)
}

func TestCategoryRepository_NamesAreUniquePerOwner(t *testing.T) {
	ctx := context.Background()
	categories := dbadapter.NewCategoryRepository(openTestDB(t))

	require.NoError(t, categories.Insert(ctx, domain.Category{ID: uuid.NewString(), Name: "Home", OwnerID: "alice"}))
	require.NoError(t, categories.Insert(ctx, domain.Category{ID: uuid.NewString(), Name: "Home", OwnerID: "bob"}))
	require.Error(t, categories.Insert(ctx, domain.Category{ID: uuid.NewString(), Name: "Home", OwnerID: "alice"}))
}
