package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// BrowserUsecase drives catalog browsing and the per-product image carousel.
// The carousel index is always clamped to [0, imagesCount-1] of the active
// product; navigation saturates instead of wrapping.
type BrowserUsecase interface {
	// ListProducts fetches the full catalog and replaces the held set.
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// Products returns the most recently fetched catalog.
	Products() []entity.Product

	// OpenProduct fetches the full detail for one product and resets the
	// carousel index to 0.
	OpenProduct(ctx context.Context, id string) (*entity.Product, error)

	// CloseProduct drops the active product.
	CloseProduct()

	// Active returns the currently open product and the carousel index,
	// or nil when no product is open.
	Active() (*entity.Product, int)

	// NextImage advances the carousel by one, saturating at the last image.
	NextImage() int

	// PrevImage moves the carousel back by one, saturating at 0.
	PrevImage() int

	// SelectImage jumps to index i when it is within range; out-of-range
	// selections leave the carousel unchanged.
	SelectImage(i int) int

	// FetchImage downloads the bytes of the active product's current
	// carousel image.
	FetchImage(ctx context.Context) ([]byte, error)
}
