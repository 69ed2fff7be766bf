package router

import (
	"time"

	"rently/config"
	"rently/internal/handler"
	"rently/internal/middleware"
	"rently/internal/repository"
	"rently/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	txRepo := repository.NewTransactionRepository(db)

	// Services
	walletSvc := service.NewWalletService(db)
	orderSvc := service.NewOrderService(db)

	// Handlers
	userHandler := handler.NewUserHandler(userRepo)
	walletHandler := handler.NewWalletHandler(walletSvc)
	productHandler := handler.NewProductHandler(productRepo)
	reviewHandler := handler.NewReviewHandler(reviewRepo)
	wishlistHandler := handler.NewWishlistHandler(wishlistRepo)
	cartHandler := handler.NewCartHandler(cartRepo)
	orderHandler := handler.NewOrderHandler(orderSvc, orderRepo)
	txHandler := handler.NewTransactionHandler(walletSvc, txRepo)

	api := r.Group("/api/v1")
	{
		users := api.Group("/users")
		{
			users.POST("", userHandler.Create)
			users.GET("", userHandler.List)
			users.GET("/:id", userHandler.Get)
			users.PATCH("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)

			users.GET("/:id/wallet", walletHandler.GetBalance)
			users.POST("/:id/wallet/adjust", walletHandler.Adjust)

			users.GET("/:id/wishlist", wishlistHandler.List)
			users.POST("/:id/wishlist", wishlistHandler.Add)
			users.DELETE("/:id/wishlist/:product_id", wishlistHandler.Remove)

			users.GET("/:id/cart", cartHandler.Get)
			users.POST("/:id/cart/items", cartHandler.AddItem)
			users.PATCH("/:id/cart/items/:product_id", cartHandler.UpdateItem)
			users.DELETE("/:id/cart/items/:product_id", cartHandler.RemoveItem)
			users.DELETE("/:id/cart", cartHandler.Clear)

			users.GET("/:id/orders", orderHandler.ListByUser)
			users.GET("/:id/transactions", txHandler.ListByUser)
		}

		products := api.Group("/products")
		{
			products.POST("", productHandler.Create)
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.PATCH("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
			products.POST("/:id/rentals", productHandler.RecordRental)
			products.POST("/:id/reviews", reviewHandler.Create)
			products.GET("/:id/reviews", reviewHandler.ListByProduct)
		}
		api.DELETE("/reviews/:id", reviewHandler.Delete)

		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.Create)
			orders.GET("", orderHandler.List)
			orders.GET("/:id", orderHandler.Get)
			orders.PATCH("/:id/status", orderHandler.UpdateStatus)
			orders.PATCH("/:id/items/:item_id/status", orderHandler.UpdateItemStatus)
			orders.DELETE("/:id", orderHandler.Delete)
		}

		transactions := api.Group("/transactions")
		{
			transactions.GET("", txHandler.List)
			transactions.POST("", txHandler.Create)
			transactions.PATCH("/:id/status", txHandler.UpdateStatus)
		}
		api.POST("/withdrawals", txHandler.RequestWithdrawal)
		api.POST("/withdrawals/:id/process", txHandler.ProcessWithdrawal)
		api.POST("/transfers", txHandler.Transfer)
	}

	return r
}
