package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	cart      usecase.CartUsecase
	customers repository.CustomerRepository
	orders    service.OrderService
	qrcodes   service.QRCodeService
	logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	cart usecase.CartUsecase,
	customers repository.CustomerRepository,
	orders service.OrderService,
	qrcodes service.QRCodeService,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		cart:      cart,
		customers: customers,
		orders:    orders,
		qrcodes:   qrcodes,
		logger:    logger,
	}
}

// Submit places an order for the current cart. The cart is cleared only
// after the API accepts the order; any failure leaves it untouched.
func (srv *checkoutService) Submit(ctx context.Context, details entity.DeliveryDetails) (*entity.OrderConfirmation, error) {
	snapshot := srv.cart.Cart()
	if snapshot.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	// 1. Persist the delivery details for reuse on the next checkout.
	if err := srv.customers.Save(ctx, details); err != nil {
		srv.logger.Warn("Failed to persist delivery details", slog.Any("error", err))
	}

	// 2. Submit the order with the cart snapshot taken above.
	placed, err := srv.orders.PlaceOrder(ctx, details, snapshot.Items)
	if err != nil {
		srv.logger.Error("Order submission failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to place order")
	}

	// 3. Only a successful submission empties the cart.
	if err := srv.cart.Clear(ctx); err != nil {
		srv.logger.Error("Failed to clear cart after checkout", slog.Any("error", err))
	}

	confirmation := &entity.OrderConfirmation{
		OrderID: placed.ID,
		Total:   placed.Total,
	}

	// QR generation is best effort; the confirmation stands without it.
	if srv.qrcodes != nil {
		png, err := srv.qrcodes.GenerateOrderQR(placed.ID)
		if err != nil {
			srv.logger.Warn("Failed to render confirmation QR", slog.Any("error", err))
		} else {
			confirmation.QRPNG = png
		}
	}

	srv.logger.Info("Order placed",
		slog.String("order_id", placed.ID),
		slog.Int64("total", placed.Total),
	)

	return confirmation, nil
}

// SavedDetails returns the last persisted delivery details, or the zero
// value when none exist or the snapshot is unreadable.
func (srv *checkoutService) SavedDetails(ctx context.Context) entity.DeliveryDetails {
	details, err := srv.customers.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrStateNotFound) {
			srv.logger.Warn("Discarding unreadable delivery details", slog.Any("error", err))
		}

		return entity.DeliveryDetails{}
	}

	return details
}
