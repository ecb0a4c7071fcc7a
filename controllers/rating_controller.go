package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sekenkampus/api-go/services"
	"github.com/sekenkampus/api-go/utils"
	"gorm.io/gorm"
)

type RatingController struct {
	DB      *gorm.DB
	Service *services.RatingService
}

type SubmitRatingRequest struct {
	TransactionID uint   `json:"transaction_id" binding:"required"`
	Score         int    `json:"score" binding:"required,min=1,max=5"`
	Review        string `json:"review"`
}

func NewRatingController(db *gorm.DB) *RatingController {
	return &RatingController{DB: db, Service: services.NewRatingService(db)}
}

// SubmitRating godoc
// @Summary Rate a completed transaction
// @Description Records the one rating a completed transaction may carry
// @Tags ratings
// @Accept json
// @Produce json
// @Param rating body SubmitRatingRequest true "Rating submission"
// @Success 201 {object} models.Rating
// @Router /ratings [post]
func (rc *RatingController) SubmitRating(c *gin.Context) {
	user := utils.GetUser(c)
	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := rc.Service.Submit(services.SubmitRatingInput{
		TransactionID: req.TransactionID,
		ReviewerID:    user.UserID,
		Score:         req.Score,
		Review:        req.Review,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	detailed, err := rc.Service.GetByID(rating.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    detailed,
		Message: "Rating created successfully",
	})
}

// GetUserRatings godoc
// @Summary Get a user's received ratings
// @Description Returns all ratings for a user plus their average score
// @Tags ratings
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /users/{userId}/ratings [get]
func (rc *RatingController) GetUserRatings(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	ratings, err := rc.Service.ForUser(uint(userID))
	if err != nil {
		abortWithError(c, err)
		return
	}

	average, err := rc.Service.AverageForUser(uint(userID))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    ratings,
		Meta:    gin.H{"count": len(ratings), "averageRating": average},
	})
}

func (rc *RatingController) GetRating(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating ID"})
		return
	}

	rating, err := rc.Service.GetByID(uint(id))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: rating})
}

func (rc *RatingController) GetTransactionRating(c *gin.Context) {
	transactionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return
	}

	rating, err := rc.Service.ForTransaction(uint(transactionID))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if rating == nil {
		c.JSON(http.StatusOK, StandardResponse{
			Success: true,
			Message: "No rating found for this transaction",
		})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: rating})
}
