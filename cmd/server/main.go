package main

import (
	"database/sql"
	"net/http"

	"greenbasket-be/internal/cart"
	"greenbasket-be/internal/category"
	"greenbasket-be/internal/config"
	"greenbasket-be/internal/db"
	"greenbasket-be/internal/favorite"
	"greenbasket-be/internal/handler"
	"greenbasket-be/internal/logger"
	"greenbasket-be/internal/order"
	"greenbasket-be/internal/product"
	"greenbasket-be/internal/shop"
	"greenbasket-be/internal/stats"
	"greenbasket-be/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Seams for tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database := initDBFunc(cfg)
	defer database.Close()

	router := newServer(database)

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	return startServerFunc(":"+cfg.AppPort, router)
}

// newServer wires repositories, services and handlers into the router.
func newServer(database *sql.DB) *gin.Engine {
	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)

	shopRepo := shop.NewRepository(database)
	shopSvc := shop.NewService(shopRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productRepo)

	favoriteRepo := favorite.NewRepository(database)
	favoriteSvc := favorite.NewService(favoriteRepo, productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	statsRepo := stats.NewRepository(database)
	statsSvc := stats.NewService(statsRepo)

	return handler.NewRouter(handler.Handlers{
		User:     handler.NewUserHandler(userSvc),
		Product:  handler.NewProductHandler(productSvc),
		Category: handler.NewCategoryHandler(categorySvc),
		Shop:     handler.NewShopHandler(shopSvc),
		Cart:     handler.NewCartHandler(cartSvc),
		Favorite: handler.NewFavoriteHandler(favoriteSvc),
		Order:    handler.NewOrderHandler(orderSvc),
		Stats:    handler.NewStatsHandler(statsSvc),
	})
}
