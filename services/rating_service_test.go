package services

import (
	"testing"

	"github.com/sekenkampus/api-go/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedTransaction(t *testing.T, db *gorm.DB, buyer, seller *models.User, status string) *models.Transaction {
	t.Helper()
	listing := createListing(t, db, seller, "25000")
	transaction := models.Transaction{
		ListingID:  listing.ID,
		BuyerID:    buyer.ID,
		SellerID:   seller.ID,
		Status:     status,
		TotalPrice: decimal.RequireFromString("25000"),
	}
	require.NoError(t, db.Create(&transaction).Error)
	return &transaction
}

func TestSubmitRating(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	seller := createUser(t, db, "seller", models.RoleUser)
	buyer := createUser(t, db, "buyer", models.RoleUser)
	transaction := seedTransaction(t, db, buyer, seller, models.TransactionCompleted)

	rating, err := svc.Submit(SubmitRatingInput{
		TransactionID: transaction.ID,
		ReviewerID:    buyer.ID,
		Score:         4,
		Review:        "smooth handover",
	})
	require.NoError(t, err)
	assert.Equal(t, seller.ID, rating.ReviewedID)
	assert.Equal(t, 4, rating.Score)
}

func TestSubmitRatingSellerRatesBuyer(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	seller := createUser(t, db, "seller", models.RoleUser)
	buyer := createUser(t, db, "buyer", models.RoleUser)
	transaction := seedTransaction(t, db, buyer, seller, models.TransactionCompleted)

	rating, err := svc.Submit(SubmitRatingInput{
		TransactionID: transaction.ID,
		ReviewerID:    seller.ID,
		Score:         5,
	})
	require.NoError(t, err)
	assert.Equal(t, buyer.ID, rating.ReviewedID)
}

func TestSubmitRatingRejections(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	seller := createUser(t, db, "seller", models.RoleUser)
	buyer := createUser(t, db, "buyer", models.RoleUser)
	outsider := createUser(t, db, "outsider", models.RoleUser)

	pending := seedTransaction(t, db, buyer, seller, models.TransactionPending)
	completed := seedTransaction(t, db, buyer, seller, models.TransactionCompleted)

	cases := []struct {
		name string
		in   SubmitRatingInput
		kind Kind
	}{
		{"score too low", SubmitRatingInput{TransactionID: completed.ID, ReviewerID: buyer.ID, Score: 0}, KindInvalidInput},
		{"score too high", SubmitRatingInput{TransactionID: completed.ID, ReviewerID: buyer.ID, Score: 6}, KindInvalidInput},
		{"missing transaction", SubmitRatingInput{TransactionID: 999, ReviewerID: buyer.ID, Score: 3}, KindNotFound},
		{"incomplete transaction", SubmitRatingInput{TransactionID: pending.ID, ReviewerID: buyer.ID, Score: 3}, KindConflict},
		{"outsider", SubmitRatingInput{TransactionID: completed.ID, ReviewerID: outsider.ID, Score: 3}, KindForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(tc.in)
			assert.Equal(t, tc.kind, KindOf(err))
		})
	}
}

// One rating per transaction; a second submission conflicts and the first
// stays as written.
func TestSubmitRatingOnlyOnce(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	seller := createUser(t, db, "seller", models.RoleUser)
	buyer := createUser(t, db, "buyer", models.RoleUser)
	transaction := seedTransaction(t, db, buyer, seller, models.TransactionCompleted)

	first, err := svc.Submit(SubmitRatingInput{TransactionID: transaction.ID, ReviewerID: buyer.ID, Score: 4})
	require.NoError(t, err)

	_, err = svc.Submit(SubmitRatingInput{TransactionID: transaction.ID, ReviewerID: seller.ID, Score: 1})
	assert.Equal(t, KindConflict, KindOf(err))

	stored, err := svc.ForTransaction(transaction.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, 4, stored.Score)
	assert.Equal(t, buyer.ID, stored.ReviewerID)
}

func TestAverageForUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	seller := createUser(t, db, "seller", models.RoleUser)

	avg, err := svc.AverageForUser(seller.ID)
	require.NoError(t, err)
	assert.Zero(t, avg)

	for i, score := range []int{5, 4, 4} {
		buyer := createUser(t, db, string(rune('a'+i))+"buyer", models.RoleUser)
		transaction := seedTransaction(t, db, buyer, seller, models.TransactionCompleted)
		_, err := svc.Submit(SubmitRatingInput{TransactionID: transaction.ID, ReviewerID: buyer.ID, Score: score})
		require.NoError(t, err)
	}

	avg, err = svc.AverageForUser(seller.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.3, avg, 0.001)
}

func TestForTransactionWithoutRating(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	seller := createUser(t, db, "seller", models.RoleUser)
	buyer := createUser(t, db, "buyer", models.RoleUser)
	transaction := seedTransaction(t, db, buyer, seller, models.TransactionCompleted)

	rating, err := svc.ForTransaction(transaction.ID)
	require.NoError(t, err)
	assert.Nil(t, rating)

	_, err = svc.ForTransaction(999)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestForUserOrdering(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	seller := createUser(t, db, "seller", models.RoleUser)
	buyer := createUser(t, db, "buyer", models.RoleUser)
	other := createUser(t, db, "other", models.RoleUser)

	first := seedTransaction(t, db, buyer, seller, models.TransactionCompleted)
	second := seedTransaction(t, db, other, seller, models.TransactionCompleted)

	_, err := svc.Submit(SubmitRatingInput{TransactionID: first.ID, ReviewerID: buyer.ID, Score: 5})
	require.NoError(t, err)
	_, err = svc.Submit(SubmitRatingInput{TransactionID: second.ID, ReviewerID: other.ID, Score: 2})
	require.NoError(t, err)

	ratings, err := svc.ForUser(seller.ID)
	require.NoError(t, err)
	assert.Len(t, ratings, 2)

	_, err = svc.ForUser(999)
	assert.Equal(t, KindNotFound, KindOf(err))
}
