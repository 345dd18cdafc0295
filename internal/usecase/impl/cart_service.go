package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/event"
	"storefront/internal/domain/gateway"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartGW    gateway.CartGateway
	catalogGW gateway.CatalogGateway
	guest     gateway.GuestCartStore
	bus       event.Bus
	logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	cartGW gateway.CartGateway,
	catalogGW gateway.CatalogGateway,
	guest gateway.GuestCartStore,
	bus event.Bus,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartGW:    cartGW,
		catalogGW: catalogGW,
		guest:     guest,
		bus:       bus,
		logger:    logger,
	}
}

func (srv *cartService) LoadCartItems(ctx context.Context, token string) *entity.Cart {
	cart, err := srv.cartGW.GetCart(ctx, token)
	if err != nil {
		// Soft-fail: a transient cart-read failure renders an empty cart,
		// never an error page.
		srv.logger.Warn("cart read failed, falling back to empty cart", slog.Any("error", err))

		return entity.EmptyCart()
	}

	return cart
}

func (srv *cartService) AddItem(ctx context.Context, token string, productID int64, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	if err := srv.cartGW.AddItem(ctx, token, productID, quantity); err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}

	cart := srv.LoadCartItems(ctx, token)
	srv.publish(event.CartItemAdded, cart)

	return cart, nil
}

func (srv *cartService) UpdateQuantity(ctx context.Context, token string, itemID int64, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		// A quantity dropping below one is a removal, never a stored zero.
		return srv.RemoveItem(ctx, token, itemID)
	}

	if err := srv.cartGW.UpdateItemQuantity(ctx, token, itemID, quantity); err != nil {
		return nil, errors.Wrap(err, "failed to update cart quantity")
	}

	// No optimistic local patch: reload the whole cart.
	cart := srv.LoadCartItems(ctx, token)
	srv.publish(event.CartQuantityChanged, cart)

	return cart, nil
}

func (srv *cartService) RemoveItem(ctx context.Context, token string, itemID int64) (*entity.Cart, error) {
	if err := srv.cartGW.RemoveItem(ctx, token, itemID); err != nil {
		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	cart := srv.LoadCartItems(ctx, token)
	srv.publish(event.CartItemRemoved, cart)

	return cart, nil
}

func (srv *cartService) ClearCart(ctx context.Context, token string) error {
	if err := srv.cartGW.ClearCart(ctx, token); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	srv.publish(event.CartCleared, entity.EmptyCart())

	return nil
}

func (srv *cartService) TotalPrice(cart *entity.Cart) float64 {
	if cart == nil {
		return 0
	}

	total := 0.0
	for i := range cart.Items {
		total += cart.Items[i].ItemTotal
	}

	return total
}

func (srv *cartService) GuestItems() ([]gateway.GuestCartItem, error) {
	return srv.guest.List()
}

func (srv *cartService) GuestAdd(ctx context.Context, input *usecase.GuestAddInput) error {
	// Snapshot name and price at add time; the upstream re-prices on merge.
	product, err := srv.catalogGW.GetProduct(ctx, input.ProductID)
	if err != nil {
		return errors.Wrap(err, "failed to look up product for guest cart")
	}

	item := gateway.GuestCartItem{
		ID:        uuid.New(),
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		SalePrice: product.SalePrice,
		ImageURL:  product.ImageURL,
		Quantity:  input.Quantity,
	}
	if err := srv.guest.Upsert(item); err != nil {
		return errors.Wrap(err, "failed to store guest cart item")
	}

	srv.publishGuest(event.CartItemAdded)

	return nil
}

func (srv *cartService) GuestUpdateQuantity(id uuid.UUID, quantity int) error {
	if err := srv.guest.UpdateQuantity(id, quantity); err != nil {
		return errors.Wrap(err, "failed to update guest cart quantity")
	}

	if quantity < 1 {
		srv.publishGuest(event.CartItemRemoved)
	} else {
		srv.publishGuest(event.CartQuantityChanged)
	}

	return nil
}

func (srv *cartService) GuestRemove(id uuid.UUID) error {
	if err := srv.guest.Remove(id); err != nil {
		return errors.Wrap(err, "failed to remove guest cart item")
	}

	srv.publishGuest(event.CartItemRemoved)

	return nil
}

func (srv *cartService) GuestClear() error {
	if err := srv.guest.Clear(); err != nil {
		return errors.Wrap(err, "failed to clear guest cart")
	}

	srv.publishGuest(event.CartCleared)

	return nil
}

func (srv *cartService) MergeGuestCart(ctx context.Context, token string) (*entity.Cart, error) {
	items, err := srv.guest.List()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read guest cart")
	}
	if len(items) == 0 {
		return srv.LoadCartItems(ctx, token), nil
	}

	for _, item := range items {
		if err := srv.cartGW.AddItem(ctx, token, item.ProductID, item.Quantity); err != nil {
			// Stop on the first failure; the guest cart stays intact so the
			// merge can be retried.
			return nil, errors.Wrapf(err, "failed to merge guest item product=%d", item.ProductID)
		}
	}

	if err := srv.guest.Clear(); err != nil {
		return nil, errors.Wrap(err, "failed to clear merged guest cart")
	}

	cart := srv.LoadCartItems(ctx, token)
	srv.publish(event.CartMerged, cart)
	srv.logger.Info("guest cart merged", slog.Int("items", len(items)))

	return cart, nil
}

func (srv *cartService) publish(kind event.CartEventKind, cart *entity.Cart) {
	count := 0
	if cart != nil {
		count = cart.TotalItems
	}
	srv.bus.Publish(event.CartEvent{Kind: kind, ItemCount: count, At: time.Now()})
}

func (srv *cartService) publishGuest(kind event.CartEventKind) {
	items, err := srv.guest.List()
	if err != nil {
		return
	}

	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	srv.bus.Publish(event.CartEvent{Kind: kind, ItemCount: count, At: time.Now()})
}
