package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sekenkampus/api-go/services"
	"github.com/sekenkampus/api-go/utils"
	"gorm.io/gorm"
)

type TransactionController struct {
	DB      *gorm.DB
	Service *services.TransactionService
}

type CreateTransactionRequest struct {
	ListingID     uint   `json:"listing_id" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	Note          string `json:"note"`
}

type UpdateTransactionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db, Service: services.NewTransactionService(db)}
}

// CreateTransaction godoc
// @Summary Create a new transaction
// @Description Opens a purchase on an available listing and reserves it
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body CreateTransactionRequest true "Transaction creation request"
// @Success 201 {object} models.Transaction
// @Router /transactions [post]
func (tc *TransactionController) CreateTransaction(c *gin.Context) {
	user := utils.GetUser(c)
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := tc.Service.Create(services.CreateTransactionInput{
		BuyerID:       user.UserID,
		ListingID:     req.ListingID,
		PaymentMethod: req.PaymentMethod,
		Note:          req.Note,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	detailed, err := tc.Service.GetByID(transaction.ID, user.UserID, user.IsAdmin())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    detailed,
		Message: "Transaction created successfully",
	})
}

// UpdateTransactionStatus godoc
// @Summary Update a transaction's status
// @Description Advances or cancels a transaction per the lifecycle rules
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param status body UpdateTransactionStatusRequest true "Target status"
// @Success 200 {object} models.Transaction
// @Router /transactions/{id}/status [put]
func (tc *TransactionController) UpdateTransactionStatus(c *gin.Context) {
	user := utils.GetUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return
	}

	var req UpdateTransactionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := tc.Service.UpdateStatus(uint(id), req.Status, user.UserID, user.IsAdmin())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"transaction_id": transaction.ID,
			"listing_id":     transaction.ListingID,
			"status":         transaction.Status,
		},
		Message: "Transaction status updated to " + transaction.Status,
	})
}

func (tc *TransactionController) GetTransaction(c *gin.Context) {
	user := utils.GetUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return
	}

	transaction, err := tc.Service.GetByID(uint(id), user.UserID, user.IsAdmin())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: transaction})
}

func (tc *TransactionController) GetTransactions(c *gin.Context) {
	user := utils.GetUser(c)

	transactions, err := tc.Service.List(user.UserID, user.IsAdmin())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    transactions,
		Meta:    gin.H{"count": len(transactions)},
	})
}

func (tc *TransactionController) GetTransactionsAsBuyer(c *gin.Context) {
	user := utils.GetUser(c)

	transactions, err := tc.Service.ListAsBuyer(user.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    transactions,
		Meta:    gin.H{"count": len(transactions)},
	})
}

func (tc *TransactionController) GetTransactionsAsSeller(c *gin.Context) {
	user := utils.GetUser(c)

	transactions, err := tc.Service.ListAsSeller(user.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    transactions,
		Meta:    gin.H{"count": len(transactions)},
	})
}

// GetTransactionHistory godoc
// @Summary Get transaction history
// @Description Returns the caller's transactions with optional status filter and sorting
// @Tags transactions
// @Produce json
// @Param status query string false "Status filter"
// @Param sort_by query string false "newest, oldest, price_high or price_low"
// @Success 200 {object} map[string]interface{}
// @Router /transactions/history [get]
func (tc *TransactionController) GetTransactionHistory(c *gin.Context) {
	user := utils.GetUser(c)
	status := c.Query("status")
	sortBy := c.DefaultQuery("sort_by", "newest")

	transactions, err := tc.Service.History(user.UserID, user.IsAdmin(), status, sortBy)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    transactions,
		Meta:    gin.H{"count": len(transactions)},
	})
}
