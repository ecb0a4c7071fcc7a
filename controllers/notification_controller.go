package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sekenkampus/api-go/models"
	"github.com/sekenkampus/api-go/utils"
	"gorm.io/gorm"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GetNotifications godoc
// @Summary Get the caller's notifications
// @Description Returns all notifications for the caller, newest first, with unread count
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /notifications [get]
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	user := utils.GetUser(c)

	var notifications []models.Notification
	err := nc.DB.Where("user_id = ?", user.UserID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching notifications"})
		return
	}

	var unreadCount int64
	nc.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", user.UserID, false).
		Count(&unreadCount)

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    notifications,
		Meta:    gin.H{"count": len(notifications), "unreadCount": unreadCount},
	})
}

func (nc *NotificationController) MarkAsRead(c *gin.Context) {
	user := utils.GetUser(c)

	var notification models.Notification
	if err := nc.DB.First(&notification, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	if notification.UserID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access to notification"})
		return
	}

	notification.IsRead = true
	if err := nc.DB.Save(&notification).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    notification,
		Message: "Notification marked as read",
	})
}

func (nc *NotificationController) MarkAllAsRead(c *gin.Context) {
	user := utils.GetUser(c)

	res := nc.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", user.UserID, false).
		Update("is_read", true)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notifications"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Meta:    gin.H{"count": res.RowsAffected},
		Message: "All notifications marked as read",
	})
}

func (nc *NotificationController) DeleteNotification(c *gin.Context) {
	user := utils.GetUser(c)

	var notification models.Notification
	if err := nc.DB.First(&notification, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	if notification.UserID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access to notification"})
		return
	}

	if err := nc.DB.Delete(&notification).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notification"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Message: "Notification deleted successfully",
	})
}
