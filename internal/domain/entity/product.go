// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

// Product is a catalog entry as served by the remote catalog API.
// The client never mutates products outside of the admin passthrough;
// the catalog remains the authoritative source.
type Product struct {
	ID          string `json:"_id"`         // Identifier assigned by the catalog API.
	Title       string `json:"title"`       // Display title.
	Description string `json:"description"` // Free-text description.
	Price       int64  `json:"price"`       // Price in whole currency units.
	ImagesCount int    `json:"imagesCount"` // Number of images available for the carousel.
}
