package controllers

import (
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sekenkampus/api-go/models"
	"github.com/sekenkampus/api-go/storage"
	"github.com/sekenkampus/api-go/utils"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ListingController struct {
	DB      *gorm.DB
	Storage storage.Client
}

type CreateListingRequest struct {
	CategoryID  uint            `form:"category_id" binding:"required"`
	Title       string          `form:"title" binding:"required,min=5,max=100"`
	Description string          `form:"description" binding:"required"`
	Price       decimal.Decimal `form:"price" binding:"required"`
	Location    string          `form:"location" binding:"required"`
	Condition   string          `form:"condition" binding:"required,oneof=new like-new used lightly-damaged"`
}

type UpdateListingRequest struct {
	CategoryID  uint             `form:"category_id"`
	Title       string           `form:"title"`
	Description string           `form:"description"`
	Price       *decimal.Decimal `form:"price"`
	Location    string           `form:"location"`
	Condition   string           `form:"condition" binding:"omitempty,oneof=new like-new used lightly-damaged"`
}

func NewListingController(db *gorm.DB, store storage.Client) *ListingController {
	return &ListingController{DB: db, Storage: store}
}

// GetListings godoc
// @Summary Browse available listings
// @Description Returns available listings with optional filters and sorting
// @Tags listings
// @Produce json
// @Param category_id query integer false "Category filter"
// @Param condition query string false "Condition filter"
// @Param price_min query number false "Minimum price"
// @Param price_max query number false "Maximum price"
// @Param location query string false "Location filter"
// @Param keyword query string false "Keyword in title or description"
// @Param campus query string false "Seller campus filter"
// @Param sort query string false "newest, oldest, price_low or price_high"
// @Success 200 {object} map[string]interface{}
// @Router /listings [get]
func (lc *ListingController) GetListings(c *gin.Context) {
	query := lc.DB.Model(&models.Listing{}).
		Preload("Category").Preload("User").
		Where("status = ?", models.ListingAvailable)

	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if condition := c.Query("condition"); condition != "" {
		query = query.Where("condition = ?", condition)
	}
	if priceMin := c.Query("price_min"); priceMin != "" {
		query = query.Where("price >= ?", priceMin)
	}
	if priceMax := c.Query("price_max"); priceMax != "" {
		query = query.Where("price <= ?", priceMax)
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("location LIKE ?", "%"+location+"%")
	}
	if keyword := c.Query("keyword"); keyword != "" {
		query = query.Where("title LIKE ? OR description LIKE ?", "%"+keyword+"%", "%"+keyword+"%")
	}
	if campus := c.Query("campus"); campus != "" {
		query = query.Joins("JOIN users ON users.id = listings.user_id").
			Where("users.campus LIKE ?", "%"+campus+"%")
	}

	switch c.DefaultQuery("sort", "newest") {
	case "price_low":
		query = query.Order("price ASC")
	case "price_high":
		query = query.Order("price DESC")
	case "oldest":
		query = query.Order("listings.created_at ASC")
	default:
		query = query.Order("listings.created_at DESC")
	}

	var listings []models.Listing
	if err := query.Find(&listings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching listings"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    listings,
		Meta:    gin.H{"count": len(listings)},
	})
}

// GetListingDetail godoc
// @Summary Get a listing
// @Description Returns one listing and increments its view count
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} models.Listing
// @Router /listings/{id} [get]
func (lc *ListingController) GetListingDetail(c *gin.Context) {
	var listing models.Listing
	if err := lc.DB.Preload("Category").Preload("User").First(&listing, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	// View counting is unconditional and outside the transaction lifecycle.
	lc.DB.Model(&listing).UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	listing.ViewCount++

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: listing})
}

// CreateListing godoc
// @Summary Create a listing
// @Description Creates a listing, uploading attached photos to object storage
// @Tags listings
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} models.Listing
// @Router /listings [post]
func (lc *ListingController) CreateListing(c *gin.Context) {
	user := utils.GetUser(c)
	var req CreateListingRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}

	var category models.Category
	if err := lc.DB.First(&category, req.CategoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	photoURLs := lc.uploadPhotos(c)

	listing := models.Listing{
		UserID:      user.UserID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Photos:      datatypes.NewJSONSlice(photoURLs),
		Price:       req.Price,
		Location:    req.Location,
		Condition:   req.Condition,
		Status:      models.ListingAvailable,
	}

	if err := lc.DB.Create(&listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create listing"})
		return
	}

	lc.DB.Preload("Category").Preload("User").First(&listing, listing.ID)

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    listing,
		Message: "Listing created successfully",
	})
}

// UpdateListing godoc
// @Summary Update a listing
// @Description Owner or admin edits listing fields; new photos are appended
// @Tags listings
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} models.Listing
// @Router /listings/{id} [put]
func (lc *ListingController) UpdateListing(c *gin.Context) {
	user := utils.GetUser(c)

	var listing models.Listing
	if err := lc.DB.First(&listing, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	if listing.UserID != user.UserID && !user.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this listing"})
		return
	}

	var req UpdateListingRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.CategoryID != 0 {
		var category models.Category
		if err := lc.DB.First(&category, req.CategoryID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		listing.CategoryID = req.CategoryID
	}
	if req.Title != "" {
		listing.Title = req.Title
	}
	if req.Description != "" {
		listing.Description = req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
			return
		}
		// Editing the price never touches the total_price of transactions
		// already opened on this listing.
		listing.Price = *req.Price
	}
	if req.Location != "" {
		listing.Location = req.Location
	}
	if req.Condition != "" {
		listing.Condition = req.Condition
	}

	if newPhotos := lc.uploadPhotos(c); len(newPhotos) > 0 {
		listing.Photos = append(listing.Photos, newPhotos...)
	}

	if err := lc.DB.Save(&listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update listing"})
		return
	}

	lc.DB.Preload("Category").Preload("User").First(&listing, listing.ID)

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    listing,
		Message: "Listing updated successfully",
	})
}

// DeleteListing soft-deletes a listing. Owner or admin.
func (lc *ListingController) DeleteListing(c *gin.Context) {
	user := utils.GetUser(c)

	var listing models.Listing
	if err := lc.DB.First(&listing, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	if listing.UserID != user.UserID && !user.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this listing"})
		return
	}

	if err := lc.DB.Delete(&listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete listing"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Message: "Listing deleted successfully",
	})
}

// HardDeleteListing godoc
// @Summary Permanently delete a listing
// @Description Admin-only removal, attempting to delete every stored photo
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} map[string]interface{}
// @Router /listings/{id}/permanent [delete]
func (lc *ListingController) HardDeleteListing(c *gin.Context) {
	var listing models.Listing
	if err := lc.DB.Unscoped().First(&listing, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	// Best-effort photo cleanup: a storage failure must not abort the delete.
	for _, url := range listing.Photos {
		if err := lc.Storage.Delete(c.Request.Context(), url); err != nil {
			log.Printf("failed to delete photo %s for listing %d: %v", url, listing.ID, err)
		}
	}

	if err := lc.DB.Unscoped().Delete(&listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete listing"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Message: "Listing permanently deleted",
	})
}

// GetUserListings returns a user's active listings.
func (lc *ListingController) GetUserListings(c *gin.Context) {
	var listings []models.Listing
	err := lc.DB.Preload("Category").
		Where("user_id = ?", c.Param("userId")).
		Order("created_at DESC").
		Find(&listings).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching listings"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    listings,
		Meta:    gin.H{"count": len(listings)},
	})
}

// uploadPhotos pushes each attached photo to object storage. Individual
// failures are logged and skipped so one bad file does not block the listing.
func (lc *ListingController) uploadPhotos(c *gin.Context) []string {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}

	var urls []string
	for _, file := range form.File["photos"] {
		url, err := lc.uploadOne(c, file)
		if err != nil {
			log.Printf("failed to upload photo %s: %v", file.Filename, err)
			continue
		}
		urls = append(urls, url)
	}
	return urls
}

func (lc *ListingController) uploadOne(c *gin.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}

	contentType := file.Header.Get("Content-Type")
	return lc.Storage.Put(c.Request.Context(), data, file.Filename, contentType)
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
