package models

import "time"

type Rating struct {
	ID            uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
	TransactionID uint        `gorm:"not null;uniqueIndex" json:"transaction_id"`
	Transaction   Transaction `json:"transaction,omitempty" gorm:"foreignKey:TransactionID"`
	ReviewerID    uint        `gorm:"not null;index" json:"reviewer_id"`
	Reviewer      User        `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID"`
	ReviewedID    uint        `gorm:"not null;index" json:"reviewed_id"`
	Reviewed      User        `json:"reviewed,omitempty" gorm:"foreignKey:ReviewedID"`
	Score         int         `gorm:"not null" json:"score"` // 1-5
	Review        string      `gorm:"type:text" json:"review"`
}
