package services

import (
	"github.com/sekenkampus/api-go/models"
	"gorm.io/gorm"
)

// createNotification inserts one notification row inside the caller's
// transaction, so the notification is only ever visible together with the
// state change that produced it.
func createNotification(tx *gorm.DB, userID uint, title, message, category string) error {
	return tx.Create(&models.Notification{
		UserID:   userID,
		Title:    title,
		Message:  message,
		Category: category,
	}).Error
}
