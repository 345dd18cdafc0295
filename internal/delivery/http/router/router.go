// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	ProductHandler  *handler.ProductHandler
	StoreHandler    *handler.StoreHandler
	OrderHandler    *handler.OrderHandler
	ProfileHandler  *handler.ProfileHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth routes. Login and registration reject already-authenticated
	// callers.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.AuthHandler.Login, auth.PublicOnly)
		authGroup.POST("/register/customer", r.params.AuthHandler.RegisterCustomer, auth.PublicOnly)
		authGroup.POST("/register/supplier", r.params.AuthHandler.RegisterSupplier, auth.PublicOnly)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
		authGroup.GET("/session", r.params.AuthHandler.Session)
	}

	// Public catalog and store directory.
	e.GET("/products", r.params.ProductHandler.ListProducts)
	e.GET("/products/:id", r.params.ProductHandler.GetProduct)
	e.GET("/stores", r.params.StoreHandler.ListStores)
	e.GET("/stores/:id", r.params.StoreHandler.GetStore)

	// Cart event stream. Guests get badge updates too, so it sits outside
	// the authenticated cart group.
	e.GET("/cart/events", r.params.CartHandler.Events)

	// Guest cart, serving unauthenticated sessions.
	guestGroup := e.Group("/guest-cart")
	{
		guestGroup.GET("", r.params.CartHandler.GuestCart)
		guestGroup.POST("/items", r.params.CartHandler.GuestAdd)
		guestGroup.PUT("/items/:id", r.params.CartHandler.GuestUpdateQuantity)
		guestGroup.DELETE("/items/:id", r.params.CartHandler.GuestRemove)
		guestGroup.DELETE("", r.params.CartHandler.GuestClear)
	}

	// Remote cart and checkout require a session; any role may shop.
	cartGroup := e.Group("/cart", auth.RequireAuth())
	{
		cartGroup.GET("", r.params.CartHandler.GetCart)
		cartGroup.POST("/items", r.params.CartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.params.CartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:id", r.params.CartHandler.RemoveItem)
		cartGroup.DELETE("", r.params.CartHandler.ClearCart)
	}

	checkoutGroup := e.Group("/checkout", auth.RequireAuth())
	{
		checkoutGroup.GET("/quote", r.params.CheckoutHandler.Quote)
		checkoutGroup.POST("", r.params.CheckoutHandler.Submit)
	}

	// Authenticated user surfaces.
	e.GET("/orders", r.params.OrderHandler.ListOrders, auth.RequireAuth())
	e.GET("/orders/:id", r.params.OrderHandler.GetOrder, auth.RequireAuth())
	profileGroup := e.Group("/profile", auth.RequireAuth())
	{
		profileGroup.GET("", r.params.ProfileHandler.GetProfile)
		profileGroup.PUT("", r.params.ProfileHandler.UpdateProfile)
	}

	// Supplier management surface, gated on the supplier role.
	supplierGroup := e.Group("/supplier", auth.RequireAuth(entity.RoleSupplier, entity.RoleAdmin))
	{
		supplierGroup.GET("/products", r.params.ProductHandler.ListManagedProducts)
		supplierGroup.GET("/products/stats", r.params.ProductHandler.ProductStats)
		supplierGroup.POST("/products", r.params.ProductHandler.CreateProduct)
		supplierGroup.PUT("/products/:id", r.params.ProductHandler.UpdateProduct)
		supplierGroup.DELETE("/products/:id", r.params.ProductHandler.DeleteProduct)
		supplierGroup.PATCH("/products/:id/flags", r.params.ProductHandler.SetProductFlags)

		supplierGroup.GET("/store/check", r.params.StoreHandler.CheckStore)
		supplierGroup.POST("/store", r.params.StoreHandler.CreateStore)
		supplierGroup.PUT("/store/:id", r.params.StoreHandler.UpdateStore)

		supplierGroup.GET("/orders", r.params.OrderHandler.ListSupplierOrders)
		supplierGroup.GET("/orders/stats", r.params.OrderHandler.OrderStats)
		supplierGroup.PATCH("/orders/:id/status", r.params.OrderHandler.UpdateOrderStatus)
	}
}
