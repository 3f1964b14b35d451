package main

import (
	"context"
	"log"

	"digipasal-be/internal/cart"
	"digipasal-be/internal/config"
	"digipasal-be/internal/db"
	"digipasal-be/internal/handler"
	"digipasal-be/internal/logger"
	"digipasal-be/internal/notify"
	"digipasal-be/internal/order"
	"digipasal-be/internal/product"
	"digipasal-be/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, cartSvc)

	// Catalog is served from memory; cold start with an empty catalog
	// would hide every product.
	if err := productSvc.LoadCatalog(context.Background()); err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}

	router := handler.NewRouter(handler.Deps{
		Config:     cfg,
		UserSvc:    userSvc,
		ProductSvc: productSvc,
		CartSvc:    cartSvc,
		OrderSvc:   orderSvc,
		Notifier:   notify.NewClient(cfg),
	})

	logger.L().Info("server starting",
		zap.String("port", cfg.AppPort),
		zap.String("env", cfg.AppEnv),
	)

	if err := router.Run(":" + cfg.AppPort); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
