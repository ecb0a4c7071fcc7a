package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sekenkampus/api-go/controllers"
)

func SetupWishlistRoutes(protected *gin.RouterGroup, wishlistController *controllers.WishlistController) {
	wishlist := protected.Group("/wishlist")
	{
		wishlist.GET("", wishlistController.GetWishlist)
		wishlist.POST("", wishlistController.AddToWishlist)
		wishlist.DELETE("/:id", wishlistController.RemoveFromWishlist)
	}
}
