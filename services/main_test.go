package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/sekenkampus/api-go/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the same error
// translation the real connection uses, so unique-key violations come back
// as gorm.ErrDuplicatedKey here too.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Listing{},
		&models.Transaction{},
		&models.Rating{},
		&models.Report{},
		&models.Notification{},
		&models.Wishlist{},
	))

	return db
}

func createUser(t *testing.T, db *gorm.DB, name, role string) *models.User {
	t.Helper()

	user := models.User{
		Name:   name,
		Email:  fmt.Sprintf("%s@campus.test", name),
		Campus: "Universitas Test",
		Role:   role,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := models.Category{Name: name, Slug: name}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

var categorySeq atomic.Uint64

func createListing(t *testing.T, db *gorm.DB, owner *models.User, price string) *models.Listing {
	t.Helper()

	category := createCategory(t, db, fmt.Sprintf("category-%d", categorySeq.Add(1)))
	listing := models.Listing{
		UserID:      owner.ID,
		CategoryID:  category.ID,
		Title:       "Used calculus textbook",
		Description: "Third edition, some notes in the margins",
		Price:       decimal.RequireFromString(price),
		Location:    "Depok",
		Condition:   models.ConditionUsed,
		Status:      models.ListingAvailable,
	}
	require.NoError(t, db.Create(&listing).Error)
	return &listing
}

func notificationsFor(t *testing.T, db *gorm.DB, userID uint) []models.Notification {
	t.Helper()

	var notifications []models.Notification
	require.NoError(t, db.Where("user_id = ?", userID).Order("id ASC").Find(&notifications).Error)
	return notifications
}
