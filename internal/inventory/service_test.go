package inventory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gameworld/gameworld/internal/domain"
)

func seededRepo() *FakeRepository {
	repo := NewFakeRepository()
	repo.SeedItem(&domain.Item{ID: 1, Name: "potion", Description: "Restores health", BaseValue: 10})
	repo.SeedItem(&domain.Item{ID: 2, Name: "sword", Description: "A basic blade", BaseValue: 150})
	return repo
}

func TestAddItem_Accumulates(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, 1, 1, 3))
	require.NoError(t, svc.AddItem(ctx, 1, 1, 4))

	items, err := svc.GetInventory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
	assert.Equal(t, "potion", items[0].Name)
}

func TestAddItem_FirstAcquisitionCreatesRow(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, 1, 2, 1))

	items, err := svc.GetInventory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ID)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAddItem_RejectsNonPositiveQuantity(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)
	ctx := context.Background()

	for _, qty := range []int{0, -1, -100} {
		err := svc.AddItem(ctx, 1, 1, qty)
		require.ErrorIs(t, err, domain.ErrInvalidQuantity, "quantity %d", qty)
	}

	// Nothing written on rejected input
	items, err := svc.GetInventory(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddItem_UnknownItem(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)

	err := svc.AddItem(context.Background(), 1, 999, 1)
	require.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestGetInventory_EmptyIsNotAnError(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)

	items, err := svc.GetInventory(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGetInventory_OrderedByItemID(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, 1, 2, 1))
	require.NoError(t, svc.AddItem(ctx, 1, 1, 1))

	items, err := svc.GetInventory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 2, items[1].ID)
}

func TestAddItem_ConcurrentAddsAllLand(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.AddItem(ctx, 1, 1, 1))
		}()
	}
	wg.Wait()

	items, err := svc.GetInventory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, workers, items[0].Quantity)
}
