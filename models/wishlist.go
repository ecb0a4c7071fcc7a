package models

import "time"

type Wishlist struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_wishlists_user_listing" json:"user_id"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	ListingID uint      `gorm:"not null;uniqueIndex:idx_wishlists_user_listing" json:"listing_id"`
	Listing   Listing   `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
}
