package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sekenkampus/api-go/models"
	"github.com/sekenkampus/api-go/utils"
	"gorm.io/gorm"
)

type ChatController struct {
	DB *gorm.DB
}

type SendMessageRequest struct {
	ReceiverID uint   `json:"receiver_id" binding:"required"`
	ListingID  uint   `json:"listing_id" binding:"required"`
	Message    string `json:"message" binding:"required"`
}

func NewChatController(db *gorm.DB) *ChatController {
	return &ChatController{DB: db}
}

// SendMessage godoc
// @Summary Send a chat message about a listing
// @Description Stores the message and notifies the receiver in one unit
// @Tags chat
// @Accept json
// @Produce json
// @Param message body SendMessageRequest true "Message"
// @Success 201 {object} models.ChatMessage
// @Router /chats [post]
func (cc *ChatController) SendMessage(c *gin.Context) {
	user := utils.GetUser(c)
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.ReceiverID == user.UserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot send a message to yourself"})
		return
	}

	var receiver models.User
	if err := cc.DB.First(&receiver, req.ReceiverID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receiver not found"})
		return
	}

	var listing models.Listing
	if err := cc.DB.First(&listing, req.ListingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	var sender models.User
	if err := cc.DB.First(&sender, user.UserID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load sender"})
		return
	}

	message := models.ChatMessage{
		SenderID:   user.UserID,
		ReceiverID: req.ReceiverID,
		ListingID:  req.ListingID,
		Message:    req.Message,
	}

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&message).Error; err != nil {
			return err
		}
		return tx.Create(&models.Notification{
			UserID:   req.ReceiverID,
			Title:    "New Message",
			Message:  fmt.Sprintf("%s sent you a message about %q", sender.Name, listing.Title),
			Category: models.NotificationChat,
		}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    message,
		Message: "Message sent",
	})
}

// GetConversation returns the message history with one user and marks their
// messages to the caller as read.
func (cc *ChatController) GetConversation(c *gin.Context) {
	user := utils.GetUser(c)
	otherID, ok := parseUintParam(c, "userId")
	if !ok {
		return
	}

	var messages []models.ChatMessage
	err := cc.DB.
		Preload("Listing", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			user.UserID, otherID, otherID, user.UserID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching messages"})
		return
	}

	cc.DB.Model(&models.ChatMessage{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", otherID, user.UserID, false).
		Update("is_read", true)

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    messages,
		Meta:    gin.H{"count": len(messages)},
	})
}

// GetConversations lists the users the caller has chatted with, with unread
// counts.
func (cc *ChatController) GetConversations(c *gin.Context) {
	user := utils.GetUser(c)

	var partnerIDs []uint
	err := cc.DB.Model(&models.ChatMessage{}).
		Select("DISTINCT CASE WHEN sender_id = ? THEN receiver_id ELSE sender_id END", user.UserID).
		Where("sender_id = ? OR receiver_id = ?", user.UserID, user.UserID).
		Scan(&partnerIDs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching conversations"})
		return
	}

	type conversation struct {
		Participant models.User        `json:"participant"`
		LastMessage models.ChatMessage `json:"last_message"`
		UnreadCount int64              `json:"unread_count"`
	}

	conversations := make([]conversation, 0, len(partnerIDs))
	for _, partnerID := range partnerIDs {
		var participant models.User
		if err := cc.DB.First(&participant, partnerID).Error; err != nil {
			continue
		}

		var last models.ChatMessage
		cc.DB.
			Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
				user.UserID, partnerID, partnerID, user.UserID).
			Order("created_at DESC").
			First(&last)

		var unread int64
		cc.DB.Model(&models.ChatMessage{}).
			Where("sender_id = ? AND receiver_id = ? AND is_read = ?", partnerID, user.UserID, false).
			Count(&unread)

		conversations = append(conversations, conversation{
			Participant: participant,
			LastMessage: last,
			UnreadCount: unread,
		})
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    conversations,
		Meta:    gin.H{"count": len(conversations)},
	})
}

func (cc *ChatController) GetUnreadCount(c *gin.Context) {
	user := utils.GetUser(c)

	var unread int64
	cc.DB.Model(&models.ChatMessage{}).
		Where("receiver_id = ? AND is_read = ?", user.UserID, false).
		Count(&unread)

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Meta:    gin.H{"unreadCount": unread},
	})
}
