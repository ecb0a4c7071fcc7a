package models

import "time"

type ChatMessage struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	SenderID   uint      `gorm:"not null;index" json:"sender_id"`
	Sender     User      `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	ReceiverID uint      `gorm:"not null;index" json:"receiver_id"`
	Receiver   User      `json:"receiver,omitempty" gorm:"foreignKey:ReceiverID"`
	ListingID  uint      `gorm:"not null;index" json:"listing_id"`
	Listing    Listing   `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	IsRead     bool      `gorm:"not null;default:false" json:"is_read"`
}
