package routes

import (
	"github.com/Salimjon123/Alijahon/configs"
	"github.com/Salimjon123/Alijahon/controllers"
	"github.com/Salimjon123/Alijahon/entity"
	"github.com/Salimjon123/Alijahon/middlewares"
	"github.com/Salimjon123/Alijahon/repository"
	"github.com/Salimjon123/Alijahon/services"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, rdb *redis.Client) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	threadRepo := repository.NewThreadRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	withdrawRepo := repository.NewWithdrawRepository(db)
	regionRepo := repository.NewRegionRepository(db)
	wishListRepo := repository.NewWishListRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	threadSvc := services.NewThreadService(threadRepo, productRepo, settingsRepo, rdb)
	orderSvc := services.NewOrderService(db, orderRepo, productRepo, threadRepo, settingsRepo, rdb)
	withdrawSvc := services.NewWithdrawService(db, withdrawRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(productRepo, wishListRepo)
	threadCtrl := controllers.NewThreadController(threadSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	operatorCtrl := controllers.NewOperatorController(orderSvc, authSvc)
	withdrawCtrl := controllers.NewWithdrawController(withdrawSvc)
	regionCtrl := controllers.NewRegionController(regionRepo, orderSvc)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Public
	r.POST("/auth", middlewares.AuthRateLimitMiddleware(rate.Limit(1), 10), authCtrl.Authenticate)
	r.GET("/categories", productCtrl.Categories)
	r.GET("/products", productCtrl.List)
	r.GET("/products/:slug", productCtrl.Detail)
	r.GET("/market", productCtrl.Market)
	r.GET("/threads/:id/landing", threadCtrl.Landing)
	r.GET("/competition", threadCtrl.Competition)
	r.GET("/regions", regionCtrl.List)
	r.GET("/districts", regionCtrl.Districts)
	r.GET("/stats/region-orders", regionCtrl.RegionOrderCounts)

	// Order form accepts anonymous submissions; a token only
	// attributes the customer.
	r.POST("/orders", middlewares.OptionalAuthMiddleware(cfg.JWTSecret), orderCtrl.Create)

	// Authenticated user
	u := r.Group("/", auth())
	{
		u.GET("/orders", orderCtrl.ListForMe)
		u.POST("/wishlist/:productID", productCtrl.ToggleWishList)
		u.GET("/wishlist", productCtrl.WishList)
		u.GET("/profile", authCtrl.Profile)
		u.PATCH("/profile", authCtrl.UpdateProfile)
		u.PATCH("/profile/password", authCtrl.ChangePassword)

		// Seller
		u.POST("/threads", threadCtrl.Create)
		u.GET("/threads", threadCtrl.List)
		u.GET("/threads/stats", threadCtrl.Stats)

		u.POST("/withdraws", withdrawCtrl.Create)
		u.GET("/withdraws", withdrawCtrl.List)
	}

	// Operator queue (operator/admin)
	op := r.Group("/operator", auth(entity.RoleOperator, entity.RoleDeliver, entity.RoleAdmin))
	{
		op.GET("/orders", operatorCtrl.Queue)
		op.POST("/orders/:id/claim", operatorCtrl.Claim)
		op.POST("/orders/release", operatorCtrl.Release)
		op.PATCH("/orders/:id", operatorCtrl.Update)
	}

	// Admin
	admin := r.Group("/admin", auth(entity.RoleAdmin))
	{
		admin.PATCH("/withdraws/:id", withdrawCtrl.Resolve)
	}
}
