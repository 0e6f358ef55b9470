package routes

import (
	"github.com/Crafty4/web1/configs"
	"github.com/Crafty4/web1/controllers"
	"github.com/Crafty4/web1/entity"
	"github.com/Crafty4/web1/middlewares"
	"github.com/Crafty4/web1/repository"
	"github.com/Crafty4/web1/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)

	// Services
	notifSvc := services.NewNotificationService(notifRepo)
	consistencySvc := services.NewConsistencyService(orderRepo, notifSvc)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo, consistencySvc, cfg.UploadDir)
	orderSvc := services.NewOrderService(orderRepo, notifSvc)
	ratingSvc := services.NewRatingService(ratingRepo, menuRepo, orderRepo)
	gallerySvc := services.NewGalleryService(galleryRepo, cfg.UploadDir)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	ratingCtrl := controllers.NewRatingController(ratingSvc)
	notifCtrl := controllers.NewNotificationController(notifSvc)
	galleryCtrl := controllers.NewGalleryController(gallerySvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/:id", menuCtrl.Detail)
	r.GET("/gallery", galleryCtrl.List)

	// Customer (any authenticated user)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.PATCH("/orders/:id/cancel", orderCtrl.Cancel)

		u.POST("/ratings", ratingCtrl.Rate)

		u.GET("/notifications", notifCtrl.ListForMe)
		u.PATCH("/notifications/:id/read", notifCtrl.MarkRead)
	}

	// Admin only
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.POST("/menu", menuCtrl.Create)
		admin.PATCH("/menu/:id", menuCtrl.Update)
		admin.DELETE("/menu/:id", menuCtrl.Delete)
		admin.PATCH("/menu/:id/availability", menuCtrl.SetAvailability)

		admin.GET("/orders", orderCtrl.ListAll)
		admin.GET("/orders/export", orderCtrl.Export)
		admin.PATCH("/orders/:id/status", orderCtrl.Transition)
		admin.DELETE("/orders/:id", orderCtrl.Delete)

		admin.POST("/gallery", galleryCtrl.Upload)
		admin.DELETE("/gallery/:id", galleryCtrl.Delete)
	}
}
