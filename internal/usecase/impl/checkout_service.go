package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/event"
	"storefront/internal/domain/gateway"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	orderGW   gateway.OrderGateway
	cartGW    gateway.CartGateway
	catalogGW gateway.CatalogGateway
	bus       event.Bus
	cfg       *config.CheckoutConfig
	logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	orderGW gateway.OrderGateway,
	cartGW gateway.CartGateway,
	catalogGW gateway.CatalogGateway,
	bus event.Bus,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		orderGW:   orderGW,
		cartGW:    cartGW,
		catalogGW: catalogGW,
		bus:       bus,
		cfg:       cfg.Checkout,
		logger:    logger,
	}
}

func (srv *checkoutService) QuoteCart(ctx context.Context, token string) (*usecase.Quote, error) {
	cart, err := srv.cartGW.GetCart(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart for quote")
	}
	if len(cart.Items) == 0 {
		return nil, domainerrors.ErrNoOrderFound
	}

	items := make([]usecase.QuoteItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, usecase.QuoteItem{UnitPrice: line.UnitPrice(), Quantity: line.Quantity})
	}
	quote := srv.QuoteItems(items)

	return &quote, nil
}

func (srv *checkoutService) QuoteItems(items []usecase.QuoteItem) usecase.Quote {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}

	fee := srv.cfg.DeliveryFee
	free := subtotal > srv.cfg.FreeDeliveryThreshold
	if free {
		fee = 0
	}

	return usecase.Quote{
		Subtotal:     subtotal,
		DeliveryFee:  fee,
		Total:        subtotal + fee,
		FreeDelivery: free,
	}
}

func (srv *checkoutService) Submit(ctx context.Context, token string, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	lines, quoteItems, err := srv.resolveLines(ctx, token, input)
	if err != nil {
		return nil, err
	}

	quote := srv.QuoteItems(quoteItems)

	// There is no payment gateway; the payment step is an artificial,
	// cancellable delay.
	if err := srv.simulatePayment(ctx); err != nil {
		return nil, err
	}

	order, err := srv.orderGW.CreateOrder(ctx, token, &gateway.OrderInput{
		Items:           lines,
		ShippingAddress: input.ShippingAddress,
		ShippingCity:    input.ShippingCity,
		ShippingPhone:   input.ShippingPhone,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		TotalAmount:     quote.Total,
	})
	if err != nil {
		// ErrOwnStorePurchase propagates typed so the delivery layer can
		// attach its recovery actions instead of a generic failure.
		return nil, errors.Wrap(err, "order creation failed")
	}

	if input.FromCart {
		if err := srv.cartGW.ClearCart(ctx, token); err != nil {
			// The order exists; a failed cart clear must not fail checkout.
			srv.logger.Warn("failed to clear cart after checkout", slog.Any("error", err))
		}
		srv.bus.Publish(event.CartEvent{Kind: event.CartCheckedOut, ItemCount: 0, At: time.Now()})
	}

	srv.logger.Info("checkout completed",
		slog.Int64("orderID", order.ID),
		slog.Float64("total", quote.Total),
	)

	return &usecase.CheckoutOutput{Order: order, Quote: quote}, nil
}

// resolveLines turns the checkout input into order lines plus quote items,
// from either the remote cart or a single buy-it-now product.
func (srv *checkoutService) resolveLines(ctx context.Context, token string, input *usecase.CheckoutInput) ([]gateway.OrderLine, []usecase.QuoteItem, error) {
	switch {
	case input.FromCart:
		cart, err := srv.cartGW.GetCart(ctx, token)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to load cart for checkout")
		}
		if len(cart.Items) == 0 {
			return nil, nil, domainerrors.ErrNoOrderFound
		}

		lines := make([]gateway.OrderLine, 0, len(cart.Items))
		quoteItems := make([]usecase.QuoteItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			lines = append(lines, gateway.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
			quoteItems = append(quoteItems, usecase.QuoteItem{UnitPrice: item.UnitPrice(), Quantity: item.Quantity})
		}

		return lines, quoteItems, nil

	case input.SingleProduct != nil:
		product, err := srv.catalogGW.GetProduct(ctx, input.SingleProduct.ProductID)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to load product for checkout")
		}

		quantity := input.SingleProduct.Quantity
		if quantity < 1 {
			quantity = 1
		}

		lines := []gateway.OrderLine{{ProductID: product.ID, Quantity: quantity}}
		quoteItems := []usecase.QuoteItem{{UnitPrice: product.EffectivePrice(), Quantity: quantity}}

		return lines, quoteItems, nil

	default:
		// Neither a cart nor a single product: the terminal no-order state.
		return nil, nil, domainerrors.ErrNoOrderFound
	}
}

func (srv *checkoutService) simulatePayment(ctx context.Context) error {
	if srv.cfg.PaymentDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(srv.cfg.PaymentDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "payment simulation aborted")
	}
}
