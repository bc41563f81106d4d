// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface. The item sequence lives
// in memory and every mutation writes the full snapshot back to the state
// store before returning.
type cartService struct {
	repo   repository.CartRepository
	logger *slog.Logger

	mu          sync.Mutex
	items       []entity.LineItem
	subscribers []func(entity.Cart)
}

// NewCartService is the constructor for cartService. It restores the
// persisted cart snapshot; an absent or malformed snapshot yields an empty
// cart and never fails construction.
func NewCartService(
	ctx context.Context,
	repo repository.CartRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	srv := &cartService{
		repo:   repo,
		logger: logger,
	}

	cart, err := repo.Load(ctx)
	switch {
	case err == nil:
		srv.items = cart.Items
	case errors.Is(err, repository.ErrStateNotFound):
		logger.Debug("No persisted cart, starting empty")
	default:
		// Unreadable snapshots are treated as absent rather than fatal.
		logger.Warn("Discarding unreadable cart snapshot", slog.Any("error", err))
	}

	return srv
}

// Cart returns a snapshot of the current cart.
func (srv *cartService) Cart() entity.Cart {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.snapshot()
}

// Total returns the sum of price times quantity over the current items.
func (srv *cartService) Total() int64 {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.snapshot().Total()
}

// AddItem merges the product into the cart, accumulating quantity for an
// already-present product id and appending a fresh line item otherwise.
func (srv *cartService) AddItem(ctx context.Context, product entity.Product) (entity.Cart, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	merged := false
	for i := range srv.items {
		if srv.items[i].ProductID == product.ID {
			srv.items[i].Quantity++
			merged = true

			break
		}
	}
	if !merged {
		srv.items = append(srv.items, entity.LineItem{
			ProductID: product.ID,
			Title:     product.Title,
			Price:     product.Price,
			Quantity:  1,
		})
	}

	srv.logger.Info("Added product to cart",
		slog.String("product_id", product.ID),
		slog.Bool("merged", merged),
	)

	return srv.snapshot(), srv.persistAndNotify(ctx)
}

// AdjustQuantity changes the quantity at index by delta, floored at 1.
func (srv *cartService) AdjustQuantity(ctx context.Context, index, delta int) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if index < 0 || index >= len(srv.items) {
		// Kept as a silent no-op for compatibility with existing callers.
		srv.logger.Debug("Ignoring quantity change for out-of-range index", slog.Int("index", index))

		return nil
	}

	quantity := srv.items[index].Quantity + delta
	if quantity < 1 {
		quantity = 1
	}
	srv.items[index].Quantity = quantity

	return srv.persistAndNotify(ctx)
}

// RemoveItem removes the line item at index, preserving order of the rest.
func (srv *cartService) RemoveItem(ctx context.Context, index int) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if index < 0 || index >= len(srv.items) {
		srv.logger.Debug("Ignoring removal of out-of-range index", slog.Int("index", index))

		return nil
	}

	srv.items = append(srv.items[:index], srv.items[index+1:]...)

	return srv.persistAndNotify(ctx)
}

// Clear empties the cart and persists the empty snapshot.
func (srv *cartService) Clear(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.items = nil

	return srv.persistAndNotify(ctx)
}

// Subscribe registers fn to be invoked after every mutation.
func (srv *cartService) Subscribe(fn func(entity.Cart)) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.subscribers = append(srv.subscribers, fn)
}

// snapshot clones the item sequence so callers never alias internal state.
// Callers must hold the mutex.
func (srv *cartService) snapshot() entity.Cart {
	items := make([]entity.LineItem, len(srv.items))
	copy(items, srv.items)

	return entity.Cart{Items: items}
}

// persistAndNotify writes the full snapshot and fans it out to subscribers.
// Callers must hold the mutex.
func (srv *cartService) persistAndNotify(ctx context.Context) error {
	cart := srv.snapshot()

	if err := srv.repo.Save(ctx, cart); err != nil {
		srv.logger.Error("Failed to persist cart", slog.Any("error", err))

		return errors.Wrap(err, "failed to persist cart")
	}

	for _, fn := range srv.subscribers {
		fn(cart)
	}

	return nil
}
