package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sekenkampus/api-go/controllers"
)

func SetupUploadRoutes(protected *gin.RouterGroup, uploadController *controllers.UploadController) {
	uploads := protected.Group("/uploads")
	{
		uploads.POST("/avatar/url", uploadController.GetAvatarUploadURL)
		uploads.POST("/avatar/confirm", uploadController.ConfirmAvatarUpload)
	}
}
