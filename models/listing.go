package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Listing statuses. Only the transaction lifecycle moves a listing
// between these values.
const (
	ListingAvailable = "available"
	ListingReserved  = "reserved"
	ListingSold      = "sold"
)

// Listing conditions accepted on create/update.
const (
	ConditionNew            = "new"
	ConditionLikeNew        = "like-new"
	ConditionUsed           = "used"
	ConditionLightlyDamaged = "lightly-damaged"
)

type Listing struct {
	ID          uint                       `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time                  `json:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at"`
	DeletedAt   gorm.DeletedAt             `gorm:"index" json:"deleted_at"`
	UserID      uint                       `gorm:"not null;index" json:"user_id"`
	User        User                       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CategoryID  uint                       `gorm:"not null;index" json:"category_id"`
	Category    Category                   `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Title       string                     `gorm:"size:100;not null" json:"title"`
	Description string                     `gorm:"type:text;not null" json:"description"`
	Photos      datatypes.JSONSlice[string] `json:"photos"`
	Price       decimal.Decimal            `gorm:"type:numeric(10,2);not null" json:"price"`
	Location    string                     `gorm:"size:100" json:"location"`
	Condition   string                     `gorm:"size:20;not null" json:"condition"` // "new", "like-new", "used", "lightly-damaged"
	ViewCount   int                        `gorm:"not null;default:0" json:"view_count"`
	Status      string                     `gorm:"size:20;not null;default:'available'" json:"status"` // "available", "reserved", "sold"
}
