package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sekenkampus/api-go/controllers"
	"github.com/sekenkampus/api-go/middleware"
	"github.com/sekenkampus/api-go/storage"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, store storage.Client) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(db)
	listingController := controllers.NewListingController(db, store)
	categoryController := controllers.NewCategoryController(db)
	transactionController := controllers.NewTransactionController(db)
	ratingController := controllers.NewRatingController(db)
	reportController := controllers.NewReportController(db)
	notificationController := controllers.NewNotificationController(db)
	wishlistController := controllers.NewWishlistController(db)
	chatController := controllers.NewChatController(db)
	uploadController := controllers.NewUploadController(db, store)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/google-login", authController.GoogleLogin)

		public.GET("/listings", listingController.GetListings)
		public.GET("/listings/:id", listingController.GetListingDetail)
		public.GET("/categories", categoryController.GetCategories)
		public.GET("/categories/:id", categoryController.GetCategory)
		public.GET("/users/:userId/listings", listingController.GetUserListings)
		public.GET("/users/:userId/ratings", ratingController.GetUserRatings)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.POST("/refresh-token", authController.RefreshToken)
		protected.GET("/profile", authController.GetProfile)
		protected.PUT("/profile", authController.UpdateProfile)
		protected.PUT("/profile/password", authController.UpdatePassword)

		SetupUserRoutes(protected, userController)
		SetupListingRoutes(protected, listingController, categoryController)
		SetupTransactionRoutes(protected, transactionController, ratingController)
		SetupReportRoutes(protected, reportController)
		SetupNotificationRoutes(protected, notificationController)
		SetupWishlistRoutes(protected, wishlistController)
		SetupChatRoutes(protected, chatController)
		SetupUploadRoutes(protected, uploadController)
	}
}
