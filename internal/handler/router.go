package handler

import (
	"net/http"

	"digipasal-be/internal/cart"
	"digipasal-be/internal/config"
	"digipasal-be/internal/middleware"
	"digipasal-be/internal/notify"
	"digipasal-be/internal/order"
	"digipasal-be/internal/product"
	"digipasal-be/internal/user"

	"github.com/gin-gonic/gin"
)

// Deps carries everything the HTTP layer needs. Services are interfaces
// so handler tests can swap in mocks.
type Deps struct {
	Config     *config.Config
	UserSvc    user.Service
	ProductSvc product.Service
	CartSvc    cart.Service
	OrderSvc   order.Service
	Notifier   *notify.Client
}

// NewRouter wires the full route table.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logging())
	r.Use(middleware.RateLimit())

	userH := newUserHandler(deps.UserSvc)
	productH := newProductHandler(deps.ProductSvc)
	cartH := newCartHandler(deps.CartSvc, deps.ProductSvc)
	orderH := newOrderHandler(deps.OrderSvc, deps.UserSvc, deps.Config, deps.Notifier)
	contactH := newContactHandler(deps.Notifier)
	adminH := newAdminHandler(deps.ProductSvc, deps.OrderSvc)
	landingH := newLandingHandler()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/signup", userH.Signup)
		api.POST("/login", userH.Login)

		api.GET("/products", productH.List)
		api.GET("/products/:slug", productH.GetBySlug)

		api.GET("/landing", landingH.List)
		api.GET("/landing/:slug", landingH.GetBySlug)

		api.POST("/contact", contactH.Submit)

		auth := api.Group("")
		auth.Use(middleware.RequireUser())
		{
			auth.GET("/cart", cartH.Get)
			auth.POST("/cart", cartH.Add)
			auth.PUT("/cart/quantity", cartH.SetQuantity)
			auth.DELETE("/cart/:productId", cartH.Remove)
			auth.DELETE("/cart", cartH.Clear)

			auth.POST("/checkout", orderH.Checkout)
			auth.GET("/orders", orderH.List)
			auth.GET("/orders/:id", orderH.Get)
			auth.GET("/orders/:id/invoice", orderH.Invoice)
			auth.GET("/orders/:id/whatsapp", orderH.WhatsAppLink)
			auth.GET("/orders/:id/timeline", orderH.Timeline)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/products", adminH.CreateProduct)
			admin.PUT("/products/:id", adminH.UpdateProduct)
			admin.DELETE("/products/:id", adminH.DeleteProduct)
			admin.PUT("/orders/:id/status", adminH.UpdateOrderStatus)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return r
}
