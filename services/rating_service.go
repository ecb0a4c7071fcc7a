package services

import (
	"errors"
	"math"

	"github.com/sekenkampus/api-go/models"
	"gorm.io/gorm"
)

type RatingService struct {
	DB *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{DB: db}
}

type SubmitRatingInput struct {
	TransactionID uint
	ReviewerID    uint
	Score         int
	Review        string
}

// Submit records the single rating a completed transaction may carry. The
// reviewed party is always the reviewer's counterparty; the unique index on
// transaction_id is the final arbiter against double submission.
func (s *RatingService) Submit(in SubmitRatingInput) (*models.Rating, error) {
	if in.Score < 1 || in.Score > 5 {
		return nil, InvalidInput("score must be between 1 and 5")
	}

	var transaction models.Transaction
	if err := s.DB.First(&transaction, in.TransactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("transaction not found")
		}
		return nil, err
	}

	if transaction.Status != models.TransactionCompleted {
		return nil, Conflict("cannot rate incomplete transaction")
	}
	if transaction.BuyerID != in.ReviewerID && transaction.SellerID != in.ReviewerID {
		return nil, Forbidden("not authorized to rate this transaction")
	}

	reviewedID := transaction.SellerID
	if in.ReviewerID == transaction.SellerID {
		reviewedID = transaction.BuyerID
	}

	rating := models.Rating{
		TransactionID: transaction.ID,
		ReviewerID:    in.ReviewerID,
		ReviewedID:    reviewedID,
		Score:         in.Score,
		Review:        in.Review,
	}
	if err := s.DB.Create(&rating).Error; err != nil {
		return nil, asConflict(err, "transaction has already been rated")
	}
	return &rating, nil
}

// ForUser returns all ratings received by a user, newest first.
func (s *RatingService) ForUser(userID uint) ([]models.Rating, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("user not found")
		}
		return nil, err
	}

	var ratings []models.Rating
	err := s.DB.
		Preload("Reviewer").
		Preload("Transaction.Listing", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Where("reviewed_id = ?", userID).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// AverageForUser is the arithmetic mean of a user's received scores, rounded
// to one decimal place. 0 when the user has no ratings.
func (s *RatingService) AverageForUser(userID uint) (float64, error) {
	var ratings []models.Rating
	if err := s.DB.Where("reviewed_id = ?", userID).Find(&ratings).Error; err != nil {
		return 0, err
	}
	if len(ratings) == 0 {
		return 0, nil
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Score
	}
	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*10) / 10, nil
}

// GetByID returns one rating with its parties.
func (s *RatingService) GetByID(id uint) (*models.Rating, error) {
	var rating models.Rating
	err := s.DB.
		Preload("Reviewer").Preload("Reviewed").
		Preload("Transaction.Listing", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		First(&rating, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("rating not found")
		}
		return nil, err
	}
	return &rating, nil
}

// ForTransaction returns the rating on a transaction, or nil when it has none.
func (s *RatingService) ForTransaction(transactionID uint) (*models.Rating, error) {
	var transaction models.Transaction
	if err := s.DB.First(&transaction, transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("transaction not found")
		}
		return nil, err
	}

	var rating models.Rating
	err := s.DB.
		Preload("Reviewer").Preload("Reviewed").
		Where("transaction_id = ?", transactionID).
		First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}
