package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sekenkampus/api-go/controllers"
	"github.com/sekenkampus/api-go/middleware"
)

func SetupReportRoutes(protected *gin.RouterGroup, reportController *controllers.ReportController) {
	reports := protected.Group("/reports")
	{
		reports.POST("", reportController.FileReport)
		reports.GET("/mine", reportController.GetMyReports)
		reports.GET("/:reportId", reportController.GetReport)

		reports.GET("", middleware.AdminOnly(), reportController.GetAllReports)
		reports.PUT("/:reportId/status", middleware.AdminOnly(), reportController.UpdateReportStatus)
		reports.DELETE("/:reportId", middleware.AdminOnly(), reportController.DeleteReport)
	}
}
