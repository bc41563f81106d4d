package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// catalogClient implements the CatalogService port against the remote API.
type catalogClient struct {
	client *Client
}

// NewCatalogService is the constructor for catalogClient.
func NewCatalogService(client *Client) service.CatalogService {
	return &catalogClient{client: client}
}

// ListProducts fetches the full catalog.
func (c *catalogClient) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := c.client.doJSON(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	return products, nil
}

// GetProduct fetches the full detail for one product.
func (c *catalogClient) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	path := "/products/" + url.PathEscape(id)
	if err := c.client.doJSON(ctx, http.MethodGet, path, nil, &product); err != nil {
		return nil, errors.Wrap(err, "get product")
	}

	return &product, nil
}

// FetchImage downloads the nth image of a product.
func (c *catalogClient) FetchImage(ctx context.Context, id string, n int) ([]byte, error) {
	path := "/products/" + url.PathEscape(id) + "/image/" + strconv.Itoa(n)
	data, err := c.client.doRaw(ctx, http.MethodGet, path)
	if err != nil {
		return nil, errors.Wrap(err, "fetch image")
	}

	return data, nil
}

// CreateProduct submits a new product as multipart form data with one part
// per image file.
func (c *catalogClient) CreateProduct(ctx context.Context, in service.NewProductInput) (*entity.Product, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("title", in.Title); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := writer.WriteField("description", in.Description); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := writer.WriteField("price", fmt.Sprintf("%d", in.Price)); err != nil {
		return nil, errors.WithStack(err)
	}

	for _, image := range in.Images {
		part, err := writer.CreateFormFile("images", image.Filename)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if _, err := io.Copy(part, image.Reader); err != nil {
			return nil, errors.Wrapf(err, "read image %s", image.Filename)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, errors.WithStack(err)
	}

	var created entity.Product
	if err := c.client.doMultipart(ctx, http.MethodPost, "/products", writer.FormDataContentType(), &buf, &created); err != nil {
		return nil, errors.Wrap(err, "create product")
	}

	return &created, nil
}

// DeleteProduct removes a product from the catalog.
func (c *catalogClient) DeleteProduct(ctx context.Context, id string) error {
	path := "/products/" + url.PathEscape(id)
	if err := c.client.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return errors.Wrap(err, "delete product")
	}

	return nil
}
