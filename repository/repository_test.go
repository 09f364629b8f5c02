package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sgo/db/dbtest"
	"sgo/models"
)

func sampleCategory(name string) models.Category {
	return models.Category{Name: name, CreatedBy: "System", ModifiedBy: "System"}
}

func TestCategoryLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(dbtest.New(t))

	c := sampleCategory("Beverages")
	require.NoError(t, repo.Add(ctx, &c))
	require.NotZero(t, c.ID, "generated id must be echoed back")

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Beverages", all[0].Name)

	c.Name = "Drinks"
	require.NoError(t, repo.Update(ctx, &c))

	got, err := repo.GetByKey(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Drinks", got.Name)

	require.NoError(t, repo.Remove(ctx, &c))
	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	err = repo.Remove(ctx, &c)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetByKey_Absent(t *testing.T) {
	repo := NewCategoryRepository(dbtest.New(t))

	got, err := repo.GetByKey(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestExists_FollowsAddAndRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(dbtest.New(t))

	c := sampleCategory("Produce")
	require.NoError(t, repo.Add(ctx, &c))

	ok, err := repo.Exists(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Remove(ctx, &c))
	ok, err = repo.Exists(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdate_MissingKeyLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(dbtest.New(t))

	existing := sampleCategory("Dairy")
	require.NoError(t, repo.Add(ctx, &existing))

	ghost := sampleCategory("Ghost")
	ghost.ID = existing.ID + 100
	err := repo.Update(ctx, &ghost)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, existing, all[0])
}

func TestRemove_MissingKeyLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(dbtest.New(t))

	existing := sampleCategory("Dairy")
	require.NoError(t, repo.Add(ctx, &existing))

	ghost := sampleCategory("Ghost")
	ghost.ID = existing.ID + 100
	assert.ErrorIs(t, repo.Remove(ctx, &ghost), ErrNotFound)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAddMultiple_AssignsKeys(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(dbtest.New(t))

	batch := []models.Category{sampleCategory("A"), sampleCategory("B"), sampleCategory("C")}
	require.NoError(t, repo.AddMultiple(ctx, batch))

	seen := map[int]bool{}
	for _, c := range batch {
		require.NotZero(t, c.ID)
		seen[c.ID] = true
	}
	assert.Len(t, seen, 3)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	assert.NoError(t, repo.AddMultiple(ctx, nil))
}

func TestUpdateMultiple(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(dbtest.New(t))

	batch := []models.Category{sampleCategory("A"), sampleCategory("B")}
	require.NoError(t, repo.AddMultiple(ctx, batch))

	batch[0].Name = "Updated A"
	batch[1].Name = "Updated B"
	require.NoError(t, repo.UpdateMultiple(ctx, batch))

	for _, c := range batch {
		got, err := repo.GetByKey(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, c.Name, got.Name)
	}
}

func TestUpdateMultiple_OneMissingKeyMutatesNothing(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(dbtest.New(t))

	batch := []models.Category{sampleCategory("A"), sampleCategory("B")}
	require.NoError(t, repo.AddMultiple(ctx, batch))

	changed := []models.Category{batch[0], batch[1], sampleCategory("Missing")}
	changed[0].Name = "Changed A"
	changed[1].Name = "Changed B"
	changed[2].ID = 999

	assert.ErrorIs(t, repo.UpdateMultiple(ctx, changed), ErrNotFound)

	for _, original := range batch {
		got, err := repo.GetByKey(ctx, original.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, original.Name, got.Name)
	}
}

func TestRemoveMultiple(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(dbtest.New(t))

	batch := []models.Category{sampleCategory("A"), sampleCategory("B"), sampleCategory("C")}
	require.NoError(t, repo.AddMultiple(ctx, batch))

	require.NoError(t, repo.RemoveMultiple(ctx, batch[:2]))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "C", all[0].Name)
}

func TestRemoveMultiple_OneMissingKeyRemovesNothing(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(dbtest.New(t))

	batch := []models.Category{sampleCategory("A"), sampleCategory("B")}
	require.NoError(t, repo.AddMultiple(ctx, batch))

	ghost := sampleCategory("Ghost")
	ghost.ID = 999
	assert.ErrorIs(t, repo.RemoveMultiple(ctx, []models.Category{batch[0], ghost}), ErrNotFound)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAdd_DuplicateKeySurfacesStoreError(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(dbtest.New(t))

	c := sampleCategory("A")
	require.NoError(t, repo.Add(ctx, &c))

	dup := sampleCategory("B")
	dup.ID = c.ID
	err := repo.Add(ctx, &dup)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestAddMultiple_StoreErrorAddsNothing(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderDetailRepository(dbtest.New(t))

	err := repo.AddMultiple(ctx, []models.OrderDetail{
		sampleDetail(1, 1), sampleDetail(1, 2), sampleDetail(1, 1),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
