package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sekenkampus/api-go/controllers"
	"github.com/sekenkampus/api-go/middleware"
)

func SetupUserRoutes(protected *gin.RouterGroup, userController *controllers.UserController) {
	protected.DELETE("/profile", userController.DeleteAccount)

	users := protected.Group("/users")
	{
		users.GET("/:userId", userController.GetUser)

		users.GET("", middleware.AdminOnly(), userController.GetAllUsers)
		users.PUT("/:userId/status", middleware.AdminOnly(), userController.UpdateUserStatus)
		users.POST("/admin", middleware.AdminOnly(), userController.CreateAdminAccount)
	}
}
