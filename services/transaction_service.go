package services

import (
	"errors"
	"fmt"

	"github.com/sekenkampus/api-go/models"
	"gorm.io/gorm"
)

type TransactionService struct {
	DB *gorm.DB
}

func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{DB: db}
}

type CreateTransactionInput struct {
	BuyerID       uint
	ListingID     uint
	PaymentMethod string
	Note          string
}

// Create opens a purchase on an available listing. The listing reservation,
// the transaction row and the seller notification land in one atomic unit;
// the reservation is a compare-and-swap on the listing status, so of two
// concurrent buyers exactly one wins and the other sees a conflict.
func (s *TransactionService) Create(in CreateTransactionInput) (*models.Transaction, error) {
	var listing models.Listing
	if err := s.DB.First(&listing, in.ListingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("listing not found")
		}
		return nil, err
	}

	if listing.UserID == in.BuyerID {
		return nil, Forbidden("you cannot buy your own listing")
	}
	if listing.Status != models.ListingAvailable {
		return nil, Conflict("listing is not available for purchase")
	}

	transaction := models.Transaction{
		ListingID:     listing.ID,
		SellerID:      listing.UserID,
		BuyerID:       in.BuyerID,
		PaymentMethod: in.PaymentMethod,
		TotalPrice:    listing.Price, // price snapshot, never recomputed
		Status:        models.TransactionPending,
		Note:          in.Note,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// Re-check availability as part of the write itself. A racing buyer
		// who lost this update gets RowsAffected == 0.
		res := tx.Model(&models.Listing{}).
			Where("id = ? AND status = ?", listing.ID, models.ListingAvailable).
			Update("status", models.ListingReserved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return Conflict("listing is not available for purchase")
		}

		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}

		return createNotification(tx, listing.UserID, "New Order",
			fmt.Sprintf("Your listing %q has a new order.", listing.Title),
			models.NotificationTransaction)
	})
	if err != nil {
		return nil, err
	}

	return &transaction, nil
}

// UpdateStatus advances (or cancels) a transaction. Preconditions are checked
// in order: existence, target status validity, actor permission, and only
// then is the status change, its listing side effect and the counterparty
// notification committed as one unit.
func (s *TransactionService) UpdateStatus(id uint, target string, actorID uint, isAdmin bool) (*models.Transaction, error) {
	transaction, err := s.loadWithListing(id)
	if err != nil {
		return nil, err
	}

	if !models.ValidTransactionStatus(target) {
		return nil, InvalidInput("invalid status value")
	}

	actor := Actor{
		UserID:   actorID,
		IsAdmin:  isAdmin,
		IsBuyer:  transaction.BuyerID == actorID,
		IsSeller: transaction.SellerID == actorID,
	}
	outcome, err := ResolveTransition(transaction.Status, target, actor)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// The permission check above ran against a snapshot. Guard the write
		// with the status it was authorized for, so a transition committed in
		// between is never overwritten.
		res := tx.Model(&models.Transaction{}).
			Where("id = ? AND status = ?", transaction.ID, transaction.Status).
			Update("status", target)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return Conflict("transaction status has changed, please retry")
		}

		switch outcome.Effect {
		case EffectRelease:
			if err := s.setListingStatus(tx, transaction.ListingID, models.ListingAvailable); err != nil {
				return err
			}
		case EffectMarkSold:
			if err := s.setListingStatus(tx, transaction.ListingID, models.ListingSold); err != nil {
				return err
			}
		}

		if recipient, message, ok := notificationFor(outcome, transaction, target); ok {
			return createNotification(tx, recipient, "Transaction Update", message,
				models.NotificationTransaction)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	transaction.Status = target
	return transaction, nil
}

// GetByID returns a transaction to one of its parties or an admin.
func (s *TransactionService) GetByID(id, actorID uint, isAdmin bool) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.withParties().First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("transaction not found")
		}
		return nil, err
	}
	if transaction.BuyerID != actorID && transaction.SellerID != actorID && !isAdmin {
		return nil, Forbidden("not authorized to view this transaction")
	}
	return &transaction, nil
}

// withParties is the shared read scaffolding: the listing (even when soft
// deleted), its category and both parties.
func (s *TransactionService) withParties() *gorm.DB {
	return s.DB.
		Preload("Listing", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("Listing.Category").
		Preload("Buyer").Preload("Seller")
}

// List returns all transactions the actor is a party to; admins see everything.
func (s *TransactionService) List(actorID uint, isAdmin bool) ([]models.Transaction, error) {
	query := s.withParties().Order("created_at DESC")
	if !isAdmin {
		query = query.Where("buyer_id = ? OR seller_id = ?", actorID, actorID)
	}

	var transactions []models.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// ListAsBuyer returns the actor's purchases, newest first.
func (s *TransactionService) ListAsBuyer(actorID uint) ([]models.Transaction, error) {
	return s.listByRole("buyer_id", actorID)
}

// ListAsSeller returns the actor's sales, newest first.
func (s *TransactionService) ListAsSeller(actorID uint) ([]models.Transaction, error) {
	return s.listByRole("seller_id", actorID)
}

// History returns the actor's transactions filtered by status and sorted.
// sortBy is one of "newest", "oldest", "price_high", "price_low".
func (s *TransactionService) History(actorID uint, isAdmin bool, status, sortBy string) ([]models.Transaction, error) {
	query := s.withParties()
	if !isAdmin {
		query = query.Where("buyer_id = ? OR seller_id = ?", actorID, actorID)
	}
	if status != "" {
		if !models.ValidTransactionStatus(status) {
			return nil, InvalidInput("invalid status value")
		}
		query = query.Where("status = ?", status)
	}

	switch sortBy {
	case "oldest":
		query = query.Order("created_at ASC")
	case "price_high":
		query = query.Order("total_price DESC")
	case "price_low":
		query = query.Order("total_price ASC")
	default:
		query = query.Order("created_at DESC")
	}

	var transactions []models.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *TransactionService) listByRole(column string, actorID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.withParties().
		Where(column+" = ?", actorID).
		Order("created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *TransactionService) loadWithListing(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	err := s.DB.
		Preload("Listing", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		First(&transaction, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("transaction not found")
		}
		return nil, err
	}
	return &transaction, nil
}

// setListingStatus writes the listing side effect. Unscoped so a listing
// soft-deleted after the sale still tracks its transaction.
func (s *TransactionService) setListingStatus(tx *gorm.DB, listingID uint, status string) error {
	return tx.Unscoped().Model(&models.Listing{}).
		Where("id = ?", listingID).
		Update("status", status).Error
}

func notificationFor(outcome Outcome, transaction *models.Transaction, target string) (uint, string, bool) {
	var recipient uint
	switch {
	case outcome.NotifySeller:
		recipient = transaction.SellerID
	case outcome.NotifyBuyer:
		recipient = transaction.BuyerID
	default:
		return 0, "", false
	}

	title := transaction.Listing.Title
	var message string
	switch target {
	case models.TransactionCancelled:
		message = fmt.Sprintf("Transaction for %q has been cancelled.", title)
	case models.TransactionPaid:
		message = fmt.Sprintf("Payment received for %q.", title)
	case models.TransactionProcessing:
		message = fmt.Sprintf("Your order for %q is being processed.", title)
	case models.TransactionShipped:
		message = fmt.Sprintf("Your order for %q has been shipped.", title)
	case models.TransactionCompleted:
		message = fmt.Sprintf("Transaction for %q has been completed.", title)
	default:
		message = fmt.Sprintf("Transaction for %q was updated to %s.", title, target)
	}
	return recipient, message, true
}
