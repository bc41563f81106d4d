package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CreateProductInput carries the admin product creation form. Image paths
// reference local files streamed into the multipart upload.
type CreateProductInput struct {
	Title       string
	Description string
	Price       int64
	ImagePaths  []string
}

// AdminUsecase is the privileged passthrough to the catalog and order APIs.
// Authorization is checked once at Enter; individual calls rely on the API
// rejecting a revoked credential.
type AdminUsecase interface {
	// Enter gates the admin console: it fails without a session whose
	// profile is an admin, and issues no API calls when it refuses.
	Enter(ctx context.Context) error

	// CreateProduct uploads a new product and returns the reloaded catalog.
	CreateProduct(ctx context.Context, in CreateProductInput) ([]entity.Product, error)

	// DeleteProduct deletes a product. The catalog is reloaded regardless
	// of the delete outcome; the delete error, if any, is returned
	// alongside the refreshed list. Interactive confirmation is the
	// delivery layer's responsibility.
	DeleteProduct(ctx context.Context, id string) ([]entity.Product, error)

	// ListOrders fetches all orders read-only.
	ListOrders(ctx context.Context) ([]entity.Order, error)
}
