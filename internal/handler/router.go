package handler

import (
	"greenbasket-be/internal/logger"
	"greenbasket-be/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	User     *UserHandler
	Product  *ProductHandler
	Category *CategoryHandler
	Shop     *ShopHandler
	Cart     *CartHandler
	Favorite *FavoriteHandler
	Order    *OrderHandler
	Stats    *StatsHandler
}

// NewRouter assembles the storefront API. Catalog reads are public;
// everything touching a user's basket, orders or profile requires a
// valid token, and catalog writes additionally require the admin role.
func NewRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.LoggingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// The limiter keys authenticated callers by user ID, so on the
	// protected groups it has to run after RequireAuth. Public routes
	// take it directly and are keyed by IP.
	rateLimit := middleware.RateLimit("/api/user/login", "/api/user/registration")

	api := r.Group("/api")

	api.POST("/user/registration", rateLimit, h.User.Register)
	api.POST("/user/login", rateLimit, h.User.Login)

	api.GET("/product", rateLimit, h.Product.List)
	api.GET("/product/:id", rateLimit, h.Product.GetByID)
	api.GET("/category", rateLimit, h.Category.List)
	api.GET("/shop", rateLimit, h.Shop.List)

	auth := api.Group("", middleware.RequireAuth(), rateLimit)
	{
		auth.GET("/user/current", h.User.Current)
		auth.GET("/user/:id", h.User.GetProfile)
		auth.PATCH("/user/profile", h.User.UpdateProfile)

		auth.GET("/cart", h.Cart.Get)
		auth.POST("/cart/:productId", h.Cart.Add)
		auth.DELETE("/cart/:productId", h.Cart.Remove)

		auth.GET("/favorite", h.Favorite.List)
		auth.POST("/favorite/:productId", h.Favorite.Add)
		auth.DELETE("/favorite/:productId", h.Favorite.Remove)

		auth.POST("/order", h.Order.Checkout)
		auth.GET("/order", h.Order.List)
	}

	admin := api.Group("", middleware.RequireAuth(), middleware.RequireAdmin(), rateLimit)
	{
		admin.POST("/product", h.Product.Create)
		admin.PUT("/product/:id", h.Product.Update)
		admin.DELETE("/product/:id", h.Product.Delete)

		admin.POST("/category", h.Category.Create)
		admin.DELETE("/category/:id", h.Category.Delete)

		admin.POST("/shop", h.Shop.Create)
		admin.DELETE("/shop/:id", h.Shop.Delete)

		admin.GET("/statistic", h.Stats.Report)
	}

	return r
}
