package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItem(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := &memoryCartRepository{}
	srv := NewCartService(ctx, repo, discardLogger())

	shirt := entity.Product{ID: "p1", Title: "Shirt", Price: 500}
	mug := entity.Product{ID: "p2", Title: "Mug", Price: 300}

	// 1. Fresh products append line items with quantity 1.
	cart, err := srv.AddItem(ctx, shirt)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	cart, err = srv.AddItem(ctx, mug)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)

	// 2. Re-adding a held product accumulates quantity instead of
	// appending a duplicate line item.
	cart, err = srv.AddItem(ctx, shirt)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "p1", cart.Items[0].ProductID)

	// 3. Total is the sum of price times quantity.
	assert.Equal(t, int64(500*2+300*1), srv.Total())

	// 4. Every mutation persisted a snapshot.
	assert.Equal(t, 3, repo.saves)
}

func TestCartService_AdjustQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		index    int
		delta    int
		expected int
	}{
		{name: "increment", index: 0, delta: 1, expected: 3},
		{name: "decrement", index: 0, delta: -1, expected: 1},
		{name: "floored at one", index: 0, delta: -5, expected: 1},
		{name: "negative index ignored", index: -1, delta: 1, expected: 2},
		{name: "past-end index ignored", index: 7, delta: 1, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			repo := &memoryCartRepository{cart: &entity.Cart{Items: []entity.LineItem{
				{ProductID: "p1", Title: "Shirt", Price: 500, Quantity: 2},
			}}}
			srv := NewCartService(ctx, repo, discardLogger())

			require.NoError(t, srv.AdjustQuantity(ctx, tt.index, tt.delta))
			assert.Equal(t, tt.expected, srv.Cart().Items[0].Quantity)
		})
	}
}

func TestCartService_RemoveItem(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := &memoryCartRepository{cart: &entity.Cart{Items: []entity.LineItem{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 1},
		{ProductID: "p3", Quantity: 1},
	}}}
	srv := NewCartService(ctx, repo, discardLogger())

	// Removal preserves the relative order of the remaining items.
	require.NoError(t, srv.RemoveItem(ctx, 1))
	cart := srv.Cart()
	require.Len(t, cart.Items, 2)
	assert.Equal(t, "p1", cart.Items[0].ProductID)
	assert.Equal(t, "p3", cart.Items[1].ProductID)

	// Out-of-range removal is ignored.
	require.NoError(t, srv.RemoveItem(ctx, 9))
	assert.Len(t, srv.Cart().Items, 2)
}

func TestCartService_RestoresPersistedSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := &memoryCartRepository{cart: &entity.Cart{Items: []entity.LineItem{
		{ProductID: "p1", Title: "Shirt", Price: 500, Quantity: 2},
	}}}
	srv := NewCartService(ctx, repo, discardLogger())

	cart := srv.Cart()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(1000), cart.Total())
}

func TestCartService_StartsEmptyWithoutSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	srv := NewCartService(ctx, &memoryCartRepository{}, discardLogger())

	assert.True(t, srv.Cart().IsEmpty())
	assert.Zero(t, srv.Total())
}

func TestCartService_SubscribersSeeEveryMutation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	srv := NewCartService(ctx, &memoryCartRepository{}, discardLogger())

	var snapshots []entity.Cart
	srv.Subscribe(func(cart entity.Cart) {
		snapshots = append(snapshots, cart)
	})

	_, err := srv.AddItem(ctx, entity.Product{ID: "p1", Price: 100})
	require.NoError(t, err)
	require.NoError(t, srv.Clear(ctx))

	require.Len(t, snapshots, 2)
	assert.Len(t, snapshots[0].Items, 1)
	assert.True(t, snapshots[1].IsEmpty())
}

func TestCartService_PersistFailureSurfaces(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := &memoryCartRepository{saveErr: errors.New("disk full")}
	srv := NewCartService(ctx, repo, discardLogger())

	_, err := srv.AddItem(ctx, entity.Product{ID: "p1", Price: 100})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
