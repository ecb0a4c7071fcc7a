package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction statuses. pending -> paid -> processing -> shipped -> completed
// is the happy path; pending -> cancelled is the only side branch. completed
// and cancelled are terminal.
const (
	TransactionPending    = "pending"
	TransactionPaid       = "paid"
	TransactionProcessing = "processing"
	TransactionShipped    = "shipped"
	TransactionCompleted  = "completed"
	TransactionCancelled  = "cancelled"
)

// ValidTransactionStatus reports whether s is one of the six lifecycle values.
func ValidTransactionStatus(s string) bool {
	switch s {
	case TransactionPending, TransactionPaid, TransactionProcessing,
		TransactionShipped, TransactionCompleted, TransactionCancelled:
		return true
	}
	return false
}

type Transaction struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	ListingID     uint            `gorm:"not null;index" json:"listing_id"`
	Listing       Listing         `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
	SellerID      uint            `gorm:"not null;index" json:"seller_id"`
	Seller        User            `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
	BuyerID       uint            `gorm:"not null;index" json:"buyer_id"`
	Buyer         User            `json:"buyer,omitempty" gorm:"foreignKey:BuyerID"`
	PaymentMethod string          `gorm:"size:50" json:"payment_method"`
	TotalPrice    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_price"` // snapshot of the listing price at creation
	Status        string          `gorm:"size:20;not null;default:'pending'" json:"status"`
	Note          string          `gorm:"type:text" json:"note"`
}
