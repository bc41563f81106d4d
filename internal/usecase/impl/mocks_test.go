package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockCatalogService mocks service.CatalogService.
type mockCatalogService struct {
	mock.Mock
}

func (m *mockCatalogService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	args := m.Called(ctx)
	if products := args.Get(0); products != nil {
		return products.([]entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product := args.Get(0); product != nil {
		return product.(*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalogService) FetchImage(ctx context.Context, id string, index int) ([]byte, error) {
	args := m.Called(ctx, id, index)
	if data := args.Get(0); data != nil {
		return data.([]byte), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalogService) CreateProduct(ctx context.Context, in service.NewProductInput) (*entity.Product, error) {
	args := m.Called(ctx, in)
	if product := args.Get(0); product != nil {
		return product.(*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalogService) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// mockOrderService mocks service.OrderService.
type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) PlaceOrder(ctx context.Context, customer entity.DeliveryDetails, items []entity.LineItem) (*service.PlacedOrder, error) {
	args := m.Called(ctx, customer, items)
	if placed := args.Get(0); placed != nil {
		return placed.(*service.PlacedOrder), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderService) ListOrders(ctx context.Context) ([]entity.Order, error) {
	args := m.Called(ctx)
	if orders := args.Get(0); orders != nil {
		return orders.([]entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

// mockAuthService mocks service.AuthService.
type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	args := m.Called(ctx, email, password)
	if session := args.Get(0); session != nil {
		return session.(*entity.Session), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAuthService) Register(ctx context.Context, email, password, name string) (*entity.Session, error) {
	args := m.Called(ctx, email, password, name)
	if session := args.Get(0); session != nil {
		return session.(*entity.Session), args.Error(1)
	}

	return nil, args.Error(1)
}

// mockQRCodeService mocks service.QRCodeService.
type mockQRCodeService struct {
	mock.Mock
}

func (m *mockQRCodeService) GenerateOrderQR(orderID string) ([]byte, error) {
	args := m.Called(orderID)
	if png := args.Get(0); png != nil {
		return png.([]byte), args.Error(1)
	}

	return nil, args.Error(1)
}

// stubTokenInspector satisfies service.TokenInspector with fixed answers.
type stubTokenInspector struct {
	expired bool
}

func (s *stubTokenInspector) ExpiresAt(token string) (time.Time, bool) {
	return time.Time{}, false
}

func (s *stubTokenInspector) IsExpired(token string) bool {
	return s.expired
}

// memoryCartRepository is an in-memory repository.CartRepository.
type memoryCartRepository struct {
	cart    *entity.Cart
	saves   int
	saveErr error
}

func (r *memoryCartRepository) Load(ctx context.Context) (entity.Cart, error) {
	if r.cart == nil {
		return entity.Cart{}, repository.ErrStateNotFound
	}

	return *r.cart, nil
}

func (r *memoryCartRepository) Save(ctx context.Context, cart entity.Cart) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.cart = &cart

	return nil
}

// memoryCustomerRepository is an in-memory repository.CustomerRepository.
type memoryCustomerRepository struct {
	details *entity.DeliveryDetails
	saveErr error
}

func (r *memoryCustomerRepository) Load(ctx context.Context) (entity.DeliveryDetails, error) {
	if r.details == nil {
		return entity.DeliveryDetails{}, repository.ErrStateNotFound
	}

	return *r.details, nil
}

func (r *memoryCustomerRepository) Save(ctx context.Context, details entity.DeliveryDetails) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.details = &details

	return nil
}

// memorySessionRepository is an in-memory repository.SessionRepository.
type memorySessionRepository struct {
	session *entity.Session
	loadErr error
}

func (r *memorySessionRepository) Load(ctx context.Context) (*entity.Session, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.session == nil {
		return nil, repository.ErrStateNotFound
	}

	return r.session, nil
}

func (r *memorySessionRepository) Save(ctx context.Context, session *entity.Session) error {
	r.session = session

	return nil
}

func (r *memorySessionRepository) Clear(ctx context.Context) error {
	r.session = nil

	return nil
}
