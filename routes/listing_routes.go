package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sekenkampus/api-go/controllers"
	"github.com/sekenkampus/api-go/middleware"
)

func SetupListingRoutes(protected *gin.RouterGroup, listingController *controllers.ListingController, categoryController *controllers.CategoryController) {
	listings := protected.Group("/listings")
	{
		listings.POST("", listingController.CreateListing)
		listings.PUT("/:id", listingController.UpdateListing)
		listings.DELETE("/:id", listingController.DeleteListing)
		listings.DELETE("/:id/permanent", middleware.AdminOnly(), listingController.HardDeleteListing)
	}

	categories := protected.Group("/categories")
	categories.Use(middleware.AdminOnly())
	{
		categories.POST("", categoryController.CreateCategory)
		categories.PUT("/:id", categoryController.UpdateCategory)
		categories.DELETE("/:id", categoryController.DeleteCategory)
	}
}
