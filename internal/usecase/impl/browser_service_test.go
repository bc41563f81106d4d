package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserService_ListProducts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	catalog := new(mockCatalogService)
	catalog.On("ListProducts", ctx).Return([]entity.Product{
		{ID: "p1", Title: "Shirt", Price: 500},
		{ID: "p2", Title: "Mug", Price: 300},
	}, nil)

	srv := NewBrowserService(catalog, discardLogger())

	products, err := srv.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, products, srv.Products())
}

func TestBrowserService_OpenProductResetsCarousel(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	catalog := new(mockCatalogService)
	catalog.On("GetProduct", ctx, "p1").
		Return(&entity.Product{ID: "p1", Title: "Shirt", ImagesCount: 3}, nil)

	srv := NewBrowserService(catalog, discardLogger())

	_, err := srv.OpenProduct(ctx, "p1")
	require.NoError(t, err)
	srv.NextImage()

	_, err = srv.OpenProduct(ctx, "p1")
	require.NoError(t, err)

	active, index := srv.Active()
	require.NotNil(t, active)
	assert.Equal(t, 0, index)
}

func TestBrowserService_CarouselSaturates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	catalog := new(mockCatalogService)
	catalog.On("GetProduct", ctx, "p1").
		Return(&entity.Product{ID: "p1", ImagesCount: 3}, nil)

	srv := NewBrowserService(catalog, discardLogger())
	_, err := srv.OpenProduct(ctx, "p1")
	require.NoError(t, err)

	// Advancing past the last image sticks at imagesCount-1.
	for i := 0; i < 4; i++ {
		srv.NextImage()
	}
	_, index := srv.Active()
	assert.Equal(t, 2, index)

	// Rewinding past the first image sticks at 0.
	for i := 0; i < 4; i++ {
		srv.PrevImage()
	}
	_, index = srv.Active()
	assert.Equal(t, 0, index)
}

func TestBrowserService_SelectImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		selected int
		expected int
	}{
		{name: "in range", selected: 2, expected: 2},
		{name: "negative ignored", selected: -1, expected: 0},
		{name: "past end ignored", selected: 3, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			catalog := new(mockCatalogService)
			catalog.On("GetProduct", ctx, "p1").
				Return(&entity.Product{ID: "p1", ImagesCount: 3}, nil)

			srv := NewBrowserService(catalog, discardLogger())
			_, err := srv.OpenProduct(ctx, "p1")
			require.NoError(t, err)

			assert.Equal(t, tt.expected, srv.SelectImage(tt.selected))
		})
	}
}

func TestBrowserService_FetchImage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	catalog := new(mockCatalogService)
	catalog.On("GetProduct", ctx, "p1").
		Return(&entity.Product{ID: "p1", ImagesCount: 2}, nil)
	catalog.On("FetchImage", ctx, "p1", 1).Return([]byte("jpeg"), nil)

	srv := NewBrowserService(catalog, discardLogger())
	_, err := srv.OpenProduct(ctx, "p1")
	require.NoError(t, err)
	srv.NextImage()

	data, err := srv.FetchImage(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), data)
}

func TestBrowserService_FetchImageWithoutActiveProduct(t *testing.T) {
	t.Parallel()

	srv := NewBrowserService(new(mockCatalogService), discardLogger())

	_, err := srv.FetchImage(context.Background())
	require.ErrorIs(t, err, domainerrors.ErrNoActiveProduct)
}

func TestBrowserService_CloseProduct(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	catalog := new(mockCatalogService)
	catalog.On("GetProduct", ctx, "p1").
		Return(&entity.Product{ID: "p1", ImagesCount: 2}, nil)

	srv := NewBrowserService(catalog, discardLogger())
	_, err := srv.OpenProduct(ctx, "p1")
	require.NoError(t, err)

	srv.CloseProduct()

	active, index := srv.Active()
	assert.Nil(t, active)
	assert.Equal(t, 0, index)
}
