package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sekenkampus/api-go/controllers"
)

func SetupTransactionRoutes(protected *gin.RouterGroup, transactionController *controllers.TransactionController, ratingController *controllers.RatingController) {
	transactions := protected.Group("/transactions")
	{
		transactions.POST("", transactionController.CreateTransaction)
		transactions.GET("", transactionController.GetTransactions)
		transactions.GET("/history", transactionController.GetTransactionHistory)
		transactions.GET("/as-buyer", transactionController.GetTransactionsAsBuyer)
		transactions.GET("/as-seller", transactionController.GetTransactionsAsSeller)
		transactions.GET("/:id", transactionController.GetTransaction)
		transactions.PUT("/:id/status", transactionController.UpdateTransactionStatus)
		transactions.GET("/:id/rating", ratingController.GetTransactionRating)
	}

	ratings := protected.Group("/ratings")
	{
		ratings.POST("", ratingController.SubmitRating)
		ratings.GET("/:id", ratingController.GetRating)
	}
}
