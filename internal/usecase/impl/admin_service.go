package impl

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface as a passthrough to
// the privileged catalog and order endpoints.
type adminService struct {
	sessions usecase.SessionUsecase
	catalog  service.CatalogService
	orders   service.OrderService
	logger   *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	sessions usecase.SessionUsecase,
	catalog service.CatalogService,
	orders service.OrderService,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		sessions: sessions,
		catalog:  catalog,
		orders:   orders,
		logger:   logger,
	}
}

// Enter gates the admin console. The check runs once at entry; subsequent
// calls rely on the API rejecting a revoked or expired credential.
func (srv *adminService) Enter(ctx context.Context) error {
	session := srv.sessions.Current(ctx)
	if session == nil {
		return domainerrors.ErrNoSession
	}
	if !session.Profile.IsAdmin {
		srv.logger.Info("Refusing admin console entry", slog.String("name", session.Profile.Name))

		return domainerrors.ErrAdminRequired
	}

	return nil
}

// CreateProduct streams the image files into a multipart upload and
// returns the reloaded catalog on success.
func (srv *adminService) CreateProduct(ctx context.Context, in usecase.CreateProductInput) ([]entity.Product, error) {
	input := service.NewProductInput{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
	}

	files := make([]*os.File, 0, len(in.ImagePaths))
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	for _, path := range in.ImagePaths {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open image %s", path)
		}
		files = append(files, f)
		input.Images = append(input.Images, service.ImageUpload{
			Filename: filepath.Base(path),
			Reader:   f,
		})
	}

	created, err := srv.catalog.CreateProduct(ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("Product created",
		slog.String("product_id", created.ID),
		slog.String("title", created.Title),
	)

	products, err := srv.catalog.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload products")
	}

	return products, nil
}

// DeleteProduct deletes a product and reloads the catalog regardless of
// the delete outcome, mirroring the console's uniform refresh.
func (srv *adminService) DeleteProduct(ctx context.Context, id string) ([]entity.Product, error) {
	deleteErr := srv.catalog.DeleteProduct(ctx, id)
	if deleteErr != nil {
		srv.logger.Error("Product deletion failed",
			slog.String("product_id", id),
			slog.Any("error", deleteErr),
		)
	}

	products, listErr := srv.catalog.ListProducts(ctx)
	if deleteErr != nil {
		return products, errors.Wrap(deleteErr, "failed to delete product")
	}
	if listErr != nil {
		return nil, errors.Wrap(listErr, "failed to reload products")
	}

	return products, nil
}

// ListOrders fetches all orders read-only.
func (srv *adminService) ListOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := srv.orders.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}
