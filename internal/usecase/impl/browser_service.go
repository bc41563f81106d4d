package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// browserService implements the BrowserUsecase interface. It holds the
// fetched catalog, the currently open product and the carousel position.
type browserService struct {
	catalog service.CatalogService
	logger  *slog.Logger

	mu         sync.Mutex
	products   []entity.Product
	active     *entity.Product
	imageIndex int
}

// NewBrowserService is the constructor for browserService.
func NewBrowserService(catalog service.CatalogService, logger *slog.Logger) usecase.BrowserUsecase {
	return &browserService{
		catalog: catalog,
		logger:  logger,
	}
}

// ListProducts fetches the full catalog and replaces the held set entirely.
func (srv *browserService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := srv.catalog.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	srv.mu.Lock()
	srv.products = products
	srv.mu.Unlock()

	srv.logger.Debug("Catalog refreshed", slog.Int("count", len(products)))

	return products, nil
}

// Products returns the most recently fetched catalog.
func (srv *browserService) Products() []entity.Product {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.products
}

// OpenProduct fetches full detail for one product and resets the carousel.
func (srv *browserService) OpenProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.catalog.GetProduct(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open product")
	}

	srv.mu.Lock()
	srv.active = product
	srv.imageIndex = 0
	srv.mu.Unlock()

	return product, nil
}

// CloseProduct drops the active product.
func (srv *browserService) CloseProduct() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.active = nil
	srv.imageIndex = 0
}

// Active returns the open product and carousel index.
func (srv *browserService) Active() (*entity.Product, int) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.active, srv.imageIndex
}

// NextImage advances the carousel by one, saturating at the last image.
func (srv *browserService) NextImage() int {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.active != nil && srv.imageIndex < srv.active.ImagesCount-1 {
		srv.imageIndex++
	}

	return srv.imageIndex
}

// PrevImage moves the carousel back by one, saturating at 0.
func (srv *browserService) PrevImage() int {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.imageIndex > 0 {
		srv.imageIndex--
	}

	return srv.imageIndex
}

// SelectImage jumps to index i when it is within the active product's
// image range; anything else leaves the carousel unchanged.
func (srv *browserService) SelectImage(i int) int {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.active != nil && i >= 0 && i < srv.active.ImagesCount {
		srv.imageIndex = i
	}

	return srv.imageIndex
}

// FetchImage downloads the bytes of the active product's current image.
func (srv *browserService) FetchImage(ctx context.Context) ([]byte, error) {
	srv.mu.Lock()
	active := srv.active
	index := srv.imageIndex
	srv.mu.Unlock()

	if active == nil {
		return nil, domainerrors.ErrNoActiveProduct
	}

	data, err := srv.catalog.FetchImage(ctx, active.ID, index)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch image")
	}

	return data, nil
}
