package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sekenkampus/api-go/controllers"
)

func SetupNotificationRoutes(protected *gin.RouterGroup, notificationController *controllers.NotificationController) {
	notifications := protected.Group("/notifications")
	{
		notifications.GET("", notificationController.GetNotifications)
		notifications.PUT("/read-all", notificationController.MarkAllAsRead)
		notifications.PUT("/:id/read", notificationController.MarkAsRead)
		notifications.DELETE("/:id", notificationController.DeleteNotification)
	}
}
