package models

import "time"

// Notification categories.
const (
	NotificationTransaction = "transaction"
	NotificationChat        = "chat"
	NotificationReport      = "report"
	NotificationSystem      = "system"
)

// Notification rows are only ever created as a side effect of another
// operation. Recipients may flip the read flag or delete them.
type Notification struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Category  string    `gorm:"size:20;not null" json:"category"` // "transaction", "chat", "report", "system"
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
}
