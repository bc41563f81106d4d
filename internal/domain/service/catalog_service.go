// Package service defines the interfaces for outbound collaborators: the
// remote storefront API and local supporting services. Use cases depend on
// these ports, never on concrete clients.
package service

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
)

// NewProductInput carries the fields for an admin product creation. Images
// are streamed into the multipart payload from the supplied readers.
type NewProductInput struct {
	Title       string
	Description string
	Price       int64
	Images      []ImageUpload
}

// ImageUpload is one image file attached to a product creation request.
type ImageUpload struct {
	Filename string
	Reader   io.Reader
}

// CatalogService is the port to the remote product catalog.
type CatalogService interface {
	// ListProducts fetches the full catalog. No pagination or filtering is
	// offered by the API.
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// GetProduct fetches the full detail for one product, including its
	// image count.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// FetchImage downloads the nth image of a product as raw bytes.
	FetchImage(ctx context.Context, id string, n int) ([]byte, error)

	// CreateProduct submits a new product as a multipart payload. Admin only.
	CreateProduct(ctx context.Context, in NewProductInput) (*entity.Product, error)

	// DeleteProduct removes a product from the catalog. Admin only.
	DeleteProduct(ctx context.Context, id string) error
}
