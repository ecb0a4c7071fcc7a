package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account statuses. A blocked account keeps its data but cannot sign in.
const (
	AccountActive  = "active"
	AccountBlocked = "blocked"
)

type User struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  *string        `json:"-"` // nil for Google-only accounts
	GoogleID  *string        `gorm:"unique" json:"-"`
	Phone     string         `gorm:"size:20" json:"phone"`
	Address   string         `json:"address"`
	Campus    string         `gorm:"size:100;index" json:"campus"`
	Avatar    string         `json:"avatar"`
	Role      string         `gorm:"size:10;not null;default:'user'" json:"role"`     // "user" or "admin"
	Status    string         `gorm:"size:10;not null;default:'active'" json:"status"` // "active" or "blocked"

	Listings      []Listing      `json:"listings,omitempty" gorm:"foreignKey:UserID"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsBlocked() bool {
	return u.Status == AccountBlocked
}
