// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/coupon"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/wishlist"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/pkg/invoice"
	"github.com/your-org/storefront-backend/internal/pkg/pdf"
)

// Services bundles the domain services the HTTP surface exposes
type Services struct {
	Catalog  *catalog.Service
	Cart     *cart.Service
	Coupon   *coupon.Service
	Order    *order.Service
	Checkout *checkout.Service
	Wishlist *wishlist.Service
	Invoice  *invoice.Service
	PDF      *pdf.Service
}

// SetupRoutes wires all API routes onto the given group
func SetupRoutes(rg *gin.RouterGroup, svcs *Services, cfg *config.Config) error {
	authHandler, err := handlers.NewAuthHandler(cfg)
	if err != nil {
		return err
	}

	productHandler := handlers.NewProductHandler(svcs.Catalog)
	cartHandler := handlers.NewCartHandler(svcs.Cart, svcs.Catalog, svcs.Checkout)
	checkoutHandler := handlers.NewCheckoutHandler(svcs.Checkout)
	orderHandler := handlers.NewOrderHandler(svcs.Order)
	wishlistHandler := handlers.NewWishlistHandler(svcs.Wishlist)
	couponHandler := handlers.NewCouponHandler(svcs.Coupon)
	invoiceHandler := handlers.NewInvoiceHandler(svcs.Order, svcs.Invoice, svcs.PDF)

	// Public auth endpoint
	auth := rg.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	// Catalog browsing is public
	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
	}

	// Shopper surface: cart, coupon application, checkout, orders, wishlist
	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.POST("/coupon", cartHandler.ApplyCoupon)
		cartGroup.DELETE("/coupon", cartHandler.RemoveCoupon)
	}

	rg.POST("/checkout", checkoutHandler.Checkout)

	orders := rg.Group("/orders")
	{
		orders.GET("", orderHandler.GetOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.POST("/:id/return", orderHandler.ReturnOrder)
		orders.GET("/:id/invoice", invoiceHandler.GenerateInvoice)
		orders.GET("/:id/invoice.pdf", invoiceHandler.GenerateInvoicePDF)
	}

	wishlistGroup := rg.Group("/wishlist")
	{
		wishlistGroup.GET("", wishlistHandler.GetWishlist)
		wishlistGroup.POST("/:id/toggle", wishlistHandler.Toggle)
	}

	// Admin surface: catalog and coupon CRUD plus order status overrides
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.AdminMiddleware())
	{
		admin.POST("/products", productHandler.CreateProduct)
		admin.DELETE("/products/:id", productHandler.DeleteProduct)

		admin.GET("/coupons", couponHandler.GetCoupons)
		admin.POST("/coupons", couponHandler.RegisterCoupon)
		admin.PUT("/coupons/:code/active", couponHandler.SetCouponActive)
		admin.DELETE("/coupons/:code", couponHandler.DeleteCoupon)

		admin.PUT("/orders/:id/status", orderHandler.UpdateOrderStatus)
	}

	return nil
}
