package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sekenkampus/api-go/controllers"
)

func SetupChatRoutes(protected *gin.RouterGroup, chatController *controllers.ChatController) {
	chats := protected.Group("/chats")
	{
		chats.POST("", chatController.SendMessage)
		chats.GET("/conversations", chatController.GetConversations)
		chats.GET("/unread-count", chatController.GetUnreadCount)
		chats.GET("/with/:userId", chatController.GetConversation)
	}
}
