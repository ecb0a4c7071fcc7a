package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sekenkampus/api-go/models"
	"github.com/sekenkampus/api-go/utils"
	"gorm.io/gorm"
)

type WishlistController struct {
	DB *gorm.DB
}

type AddWishlistRequest struct {
	ListingID uint `json:"listing_id" binding:"required"`
}

func NewWishlistController(db *gorm.DB) *WishlistController {
	return &WishlistController{DB: db}
}

func (wc *WishlistController) GetWishlist(c *gin.Context) {
	user := utils.GetUser(c)

	var items []models.Wishlist
	err := wc.DB.
		Preload("Listing.Category").Preload("Listing.User").
		Where("user_id = ?", user.UserID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching wishlist"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    items,
		Meta:    gin.H{"count": len(items)},
	})
}

func (wc *WishlistController) AddToWishlist(c *gin.Context) {
	user := utils.GetUser(c)
	var req AddWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var listing models.Listing
	if err := wc.DB.First(&listing, req.ListingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	item := models.Wishlist{
		UserID:    user.UserID,
		ListingID: req.ListingID,
	}
	// The unique (user, listing) index decides duplicate adds.
	if err := wc.DB.Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Listing already in wishlist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
		return
	}

	wc.DB.Preload("Listing.Category").First(&item, item.ID)

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    item,
		Message: "Listing added to wishlist",
	})
}

func (wc *WishlistController) RemoveFromWishlist(c *gin.Context) {
	user := utils.GetUser(c)
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var item models.Wishlist
	if err := wc.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist item not found"})
		return
	}

	if item.UserID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to remove this item"})
		return
	}

	if err := wc.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from wishlist"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Message: "Item removed from wishlist",
	})
}
