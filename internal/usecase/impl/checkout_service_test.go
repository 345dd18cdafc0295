package impl

import (
	"context"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/event"
	"storefront/internal/domain/gateway"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixtures struct {
	service   usecase.CheckoutUsecase
	orderGW   *mockOrderGateway
	cartGW    *mockCartGateway
	catalogGW *mockCatalogGateway
	bus       *recordingBus
}

func createTestCheckoutService(t *testing.T) checkoutFixtures {
	orderGW := &mockOrderGateway{}
	cartGW := &mockCartGateway{}
	catalogGW := &mockCatalogGateway{}
	bus := &recordingBus{}
	cfg := &config.Config{
		Checkout: &config.CheckoutConfig{
			DeliveryFee:           150,
			FreeDeliveryThreshold: 5000,
			PaymentDelay:          0,
		},
	}
	service := NewCheckoutService(orderGW, cartGW, catalogGW, bus, cfg, testLogger())

	t.Cleanup(func() {
		orderGW.AssertExpectations(t)
		cartGW.AssertExpectations(t)
		catalogGW.AssertExpectations(t)
	})

	return checkoutFixtures{service: service, orderGW: orderGW, cartGW: cartGW, catalogGW: catalogGW, bus: bus}
}

func checkoutInput() *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		ShippingAddress: "12 Canal St",
		ShippingCity:    "Colombo",
		ShippingPhone:   "0771234567",
		CustomerName:    "Test Shopper",
		CustomerEmail:   "shopper@example.com",
	}
}

func TestCheckoutService_QuoteItems_AddsDeliveryFee(t *testing.T) {
	fx := createTestCheckoutService(t)

	quote := fx.service.QuoteItems([]usecase.QuoteItem{
		{UnitPrice: 1000, Quantity: 2},
		{UnitPrice: 400, Quantity: 1},
	})

	assert.Equal(t, 2400.0, quote.Subtotal)
	assert.Equal(t, 150.0, quote.DeliveryFee)
	assert.Equal(t, 2550.0, quote.Total)
	assert.False(t, quote.FreeDelivery)
}

func TestCheckoutService_QuoteItems_FreeDeliveryAboveThreshold(t *testing.T) {
	fx := createTestCheckoutService(t)

	quote := fx.service.QuoteItems([]usecase.QuoteItem{{UnitPrice: 2600, Quantity: 2}})

	assert.Equal(t, 5200.0, quote.Subtotal)
	assert.Zero(t, quote.DeliveryFee)
	assert.Equal(t, 5200.0, quote.Total)
	assert.True(t, quote.FreeDelivery)
}

func TestCheckoutService_QuoteCart_EmptyCartFails(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.cartGW.On("GetCart", ctx, "tok").Return(entity.EmptyCart(), nil)

	_, err := fx.service.QuoteCart(ctx, "tok")
	assert.ErrorIs(t, err, domainerrors.ErrNoOrderFound)
}

func TestCheckoutService_Submit_FromCartClearsAndPublishes(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	cart := remoteCart(
		entity.CartItem{ID: 1, ProductID: 10, Price: 1000, Quantity: 2},
		entity.CartItem{ID: 2, ProductID: 20, Price: 500, SalePrice: salePrice(400), Quantity: 1},
	)
	fx.cartGW.On("GetCart", ctx, "tok").Return(cart, nil)
	fx.orderGW.On("CreateOrder", ctx, "tok", mock.MatchedBy(func(in *gateway.OrderInput) bool {
		return len(in.Items) == 2 && in.TotalAmount == 2550.0
	})).Return(&entity.Order{ID: 77, TotalAmount: 2550}, nil)
	fx.cartGW.On("ClearCart", ctx, "tok").Return(nil)

	input := checkoutInput()
	input.FromCart = true

	out, err := fx.service.Submit(ctx, "tok", input)
	require.NoError(t, err)
	assert.Equal(t, int64(77), out.Order.ID)
	assert.Equal(t, 2550.0, out.Quote.Total)
	assert.Equal(t, []event.CartEventKind{event.CartCheckedOut}, fx.bus.kinds())
}

func TestCheckoutService_Submit_SucceedsWhenCartClearFails(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	cart := remoteCart(entity.CartItem{ID: 1, ProductID: 10, Price: 100, Quantity: 1})
	fx.cartGW.On("GetCart", ctx, "tok").Return(cart, nil)
	fx.orderGW.On("CreateOrder", ctx, "tok", mock.Anything).
		Return(&entity.Order{ID: 5}, nil)
	fx.cartGW.On("ClearCart", ctx, "tok").Return(domainerrors.ErrUpstreamUnavailable)

	input := checkoutInput()
	input.FromCart = true

	out, err := fx.service.Submit(ctx, "tok", input)
	require.NoError(t, err)
	assert.Equal(t, int64(5), out.Order.ID)
}

func TestCheckoutService_Submit_SingleProduct(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	product := &entity.Product{ID: 33, Price: 6000}
	fx.catalogGW.On("GetProduct", ctx, int64(33)).Return(product, nil)
	fx.orderGW.On("CreateOrder", ctx, "tok", mock.MatchedBy(func(in *gateway.OrderInput) bool {
		return len(in.Items) == 1 && in.Items[0].ProductID == 33 && in.TotalAmount == 6000.0
	})).Return(&entity.Order{ID: 8, TotalAmount: 6000}, nil)

	input := checkoutInput()
	input.SingleProduct = &usecase.SingleProduct{ProductID: 33, Quantity: 1}

	out, err := fx.service.Submit(ctx, "tok", input)
	require.NoError(t, err)
	assert.True(t, out.Quote.FreeDelivery)
	assert.Empty(t, fx.bus.kinds())
}

func TestCheckoutService_Submit_OwnStorePurchasePropagates(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	cart := remoteCart(entity.CartItem{ID: 1, ProductID: 10, Price: 100, Quantity: 1})
	fx.cartGW.On("GetCart", ctx, "tok").Return(cart, nil)
	fx.orderGW.On("CreateOrder", ctx, "tok", mock.Anything).
		Return(nil, domainerrors.ErrOwnStorePurchase)

	input := checkoutInput()
	input.FromCart = true

	_, err := fx.service.Submit(ctx, "tok", input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOwnStorePurchase)
	fx.cartGW.AssertNotCalled(t, "ClearCart", ctx, "tok")
}

func TestCheckoutService_Submit_NoSourceFails(t *testing.T) {
	fx := createTestCheckoutService(t)

	_, err := fx.service.Submit(context.Background(), "tok", checkoutInput())
	assert.ErrorIs(t, err, domainerrors.ErrNoOrderFound)
}

func TestCheckoutService_Submit_CancelledDuringPayment(t *testing.T) {
	orderGW := &mockOrderGateway{}
	cartGW := &mockCartGateway{}
	catalogGW := &mockCatalogGateway{}
	cfg := &config.Config{
		Checkout: &config.CheckoutConfig{DeliveryFee: 150, FreeDeliveryThreshold: 5000, PaymentDelay: time.Minute},
	}
	service := NewCheckoutService(orderGW, cartGW, catalogGW, &recordingBus{}, cfg, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cart := remoteCart(entity.CartItem{ID: 1, ProductID: 10, Price: 100, Quantity: 1})
	cartGW.On("GetCart", ctx, "tok").Return(cart, nil)

	input := checkoutInput()
	input.FromCart = true

	_, err := service.Submit(ctx, "tok", input)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	orderGW.AssertNotCalled(t, "CreateOrder", ctx, "tok", mock.Anything)
}
