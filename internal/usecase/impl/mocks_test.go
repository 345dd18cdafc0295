package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/event"
	"storefront/internal/domain/gateway"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func usecaseLoginInput(email, password string) *usecase.LoginInput {
	return &usecase.LoginInput{Email: email, Password: password}
}

func registerCustomerInput(email string) *usecase.RegisterCustomerInput {
	return &usecase.RegisterCustomerInput{
		Email:           email,
		Password:        "pw123456",
		ConfirmPassword: "pw123456",
		FirstName:       "New",
		LastName:        "Shopper",
	}
}

// recordingBus captures published cart events for assertions.
type recordingBus struct {
	mu     sync.Mutex
	events []event.CartEvent
}

func (b *recordingBus) Publish(evt event.CartEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
}

func (b *recordingBus) Subscribe(buffer int) (<-chan event.CartEvent, func()) {
	ch := make(chan event.CartEvent, buffer)

	return ch, func() { close(ch) }
}

func (b *recordingBus) kinds() []event.CartEventKind {
	b.mu.Lock()
	defer b.mu.Unlock()

	kinds := make([]event.CartEventKind, 0, len(b.events))
	for _, evt := range b.events {
		kinds = append(kinds, evt.Kind)
	}

	return kinds
}

type mockAuthGateway struct {
	mock.Mock
}

func (m *mockAuthGateway) Login(ctx context.Context, email, password string) (*gateway.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gateway.Session), args.Error(1)
}

func (m *mockAuthGateway) RegisterCustomer(ctx context.Context, input *gateway.RegisterCustomerInput) (*gateway.Session, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gateway.Session), args.Error(1)
}

func (m *mockAuthGateway) RegisterSupplier(ctx context.Context, input *gateway.RegisterSupplierInput) (*gateway.Session, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gateway.Session), args.Error(1)
}

func (m *mockAuthGateway) VerifyToken(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

type mockCartGateway struct {
	mock.Mock
}

func (m *mockCartGateway) GetCart(ctx context.Context, token string) (*entity.Cart, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Cart), args.Error(1)
}

func (m *mockCartGateway) AddItem(ctx context.Context, token string, productID int64, quantity int) error {
	return m.Called(ctx, token, productID, quantity).Error(0)
}

func (m *mockCartGateway) UpdateItemQuantity(ctx context.Context, token string, itemID int64, quantity int) error {
	return m.Called(ctx, token, itemID, quantity).Error(0)
}

func (m *mockCartGateway) RemoveItem(ctx context.Context, token string, itemID int64) error {
	return m.Called(ctx, token, itemID).Error(0)
}

func (m *mockCartGateway) ClearCart(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type mockCatalogGateway struct {
	mock.Mock
}

func (m *mockCatalogGateway) ListProducts(ctx context.Context, query gateway.ProductQuery) (*gateway.ProductPage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gateway.ProductPage), args.Error(1)
}

func (m *mockCatalogGateway) GetProduct(ctx context.Context, productID int64) (*entity.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *mockCatalogGateway) ListManagedProducts(ctx context.Context, token string, query gateway.ProductQuery) (*gateway.ProductPage, error) {
	args := m.Called(ctx, token, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gateway.ProductPage), args.Error(1)
}

func (m *mockCatalogGateway) ProductStats(ctx context.Context, token string) (*entity.ProductStats, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ProductStats), args.Error(1)
}

func (m *mockCatalogGateway) CreateProduct(ctx context.Context, token string, input *gateway.ProductInput, image *gateway.ImageUpload) (*entity.Product, error) {
	args := m.Called(ctx, token, input, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *mockCatalogGateway) UpdateProduct(ctx context.Context, token string, productID int64, input *gateway.ProductInput, image *gateway.ImageUpload) (*entity.Product, error) {
	args := m.Called(ctx, token, productID, input, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *mockCatalogGateway) DeleteProduct(ctx context.Context, token string, productID int64) error {
	return m.Called(ctx, token, productID).Error(0)
}

func (m *mockCatalogGateway) SetProductFlags(ctx context.Context, token string, productID int64, flags gateway.ProductFlags) error {
	return m.Called(ctx, token, productID, flags).Error(0)
}

type mockOrderGateway struct {
	mock.Mock
}

func (m *mockOrderGateway) CreateOrder(ctx context.Context, token string, input *gateway.OrderInput) (*entity.Order, error) {
	args := m.Called(ctx, token, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *mockOrderGateway) GetOrder(ctx context.Context, token string, orderID int64) (*entity.Order, error) {
	args := m.Called(ctx, token, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *mockOrderGateway) ListOrders(ctx context.Context, token string, query gateway.OrderQuery) (*gateway.OrderPage, error) {
	args := m.Called(ctx, token, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gateway.OrderPage), args.Error(1)
}

func (m *mockOrderGateway) ListSupplierOrders(ctx context.Context, token string, query gateway.OrderQuery) (*gateway.OrderPage, error) {
	args := m.Called(ctx, token, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gateway.OrderPage), args.Error(1)
}

func (m *mockOrderGateway) OrderStats(ctx context.Context, token string) (*entity.OrderStats, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.OrderStats), args.Error(1)
}

func (m *mockOrderGateway) UpdateOrderStatus(ctx context.Context, token string, orderID int64, status entity.OrderStatus) error {
	return m.Called(ctx, token, orderID, status).Error(0)
}

// memGuestCartStore is an in-memory GuestCartStore for tests.
type memGuestCartStore struct {
	mu    sync.Mutex
	items []gateway.GuestCartItem
}

func (s *memGuestCartStore) List() ([]gateway.GuestCartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]gateway.GuestCartItem, len(s.items))
	copy(out, s.items)

	return out, nil
}

func (s *memGuestCartStore) Upsert(item gateway.GuestCartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == item.ProductID {
			s.items[i].Quantity += item.Quantity

			return nil
		}
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	s.items = append(s.items, item)

	return nil
}

func (s *memGuestCartStore) UpdateQuantity(id uuid.UUID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			if quantity < 1 {
				s.items = append(s.items[:i], s.items[i+1:]...)
			} else {
				s.items[i].Quantity = quantity
			}

			return nil
		}
	}

	return nil
}

func (s *memGuestCartStore) Remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)

			return nil
		}
	}

	return nil
}

func (s *memGuestCartStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil

	return nil
}

// memSessionStore is an in-memory SessionStore for tests.
type memSessionStore struct {
	mu      sync.Mutex
	session *gateway.StoredSession
}

func (s *memSessionStore) Load() (*gateway.StoredSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session, nil
}

func (s *memSessionStore) Save(session *gateway.StoredSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session

	return nil
}

func (s *memSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil

	return nil
}
