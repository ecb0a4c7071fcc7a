package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sekenkampus/api-go/models"
	"github.com/sekenkampus/api-go/storage"
	"github.com/sekenkampus/api-go/utils"
	"gorm.io/gorm"
)

type UploadController struct {
	DB      *gorm.DB
	Storage storage.Client
}

type AvatarUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	FileSize    int64  `json:"fileSize" binding:"required"`
}

type AvatarConfirmRequest struct {
	Key string `json:"key" binding:"required"`
}

type PresignedURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"`
}

func NewUploadController(db *gorm.DB, store storage.Client) *UploadController {
	return &UploadController{DB: db, Storage: store}
}

// GetAvatarUploadURL returns a presigned PUT URL for a new avatar.
func (uc *UploadController) GetAvatarUploadURL(c *gin.Context) {
	user := utils.GetUser(c)
	var req AvatarUploadRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !isValidAvatarFile(req.ContentType, req.FileSize) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid avatar file type or size"})
		return
	}

	key := generateAvatarKey(user.UserID, req.FileName)

	presignedURL, err := uc.Storage.PresignPut(c.Request.Context(), key, req.ContentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload URL"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: PresignedURLResponse{
			UploadURL: presignedURL,
			FileURL:   uc.Storage.PublicURL(key),
			Key:       key,
			ExpiresIn: 3600,
		},
		Message: "Presigned URL generated successfully",
	})
}

// ConfirmAvatarUpload verifies the upload landed and points the user's
// profile at it.
func (uc *UploadController) ConfirmAvatarUpload(c *gin.Context) {
	user := utils.GetUser(c)
	var req AvatarConfirmRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exists, err := uc.Storage.Exists(c.Request.Context(), req.Key)
	if err != nil || !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Avatar file not found in storage"})
		return
	}

	avatarURL := uc.Storage.PublicURL(req.Key)
	if err := uc.DB.Model(&models.User{}).Where("id = ?", user.UserID).
		Update("avatar", avatarURL).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update avatar"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    gin.H{"key": req.Key, "fileUrl": avatarURL},
		Message: "Avatar upload confirmed successfully",
	})
}

func isValidAvatarFile(contentType string, fileSize int64) bool {
	validTypes := []string{
		"image/jpeg", "image/jpg", "image/png", "image/webp",
	}

	validType := false
	for _, validContentType := range validTypes {
		if contentType == validContentType {
			validType = true
			break
		}
	}
	if !validType {
		return false
	}

	// Avatar size limit: 5MB
	return fileSize <= 5*1024*1024
}

func generateAvatarKey(userID uint, fileName string) string {
	ext := filepath.Ext(fileName)
	return fmt.Sprintf("users/%d/avatar/%d_%s%s", userID, time.Now().Unix(), uuid.New().String(), ext)
}
