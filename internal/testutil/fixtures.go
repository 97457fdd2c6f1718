package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"investdesk/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates an operator account with a hashed password and
// unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    fmt.Sprintf("user%d@test.com", nextID()),
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestClient creates a client with a unique email.
func CreateTestClient(t *testing.T, db *gorm.DB) *models.Client {
	t.Helper()

	n := nextID()
	client := &models.Client{
		Name:     fmt.Sprintf("Test Client %d", n),
		Email:    fmt.Sprintf("client%d@test.com", n),
		IsActive: true,
	}
	if err := db.Create(client).Error; err != nil {
		t.Fatalf("failed to create test client: %v", err)
	}
	return client
}

// CreateTestAsset creates an asset with a unique ticker.
func CreateTestAsset(t *testing.T, db *gorm.DB) *models.Asset {
	t.Helper()

	asset := &models.Asset{
		Ticker:   fmt.Sprintf("TST%d", nextID()),
		Name:     "Test Asset",
		Exchange: "NasdaqGS",
		Currency: "USD",
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// CreateTestTransaction creates a transaction for a client.
func CreateTestTransaction(t *testing.T, db *gorm.DB, clientID uint, transactionType models.TransactionType, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		ClientID: clientID,
		Type:     transactionType,
		Amount:   amount,
		Date:     date,
	}
	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return transaction
}

// CreateTestAllocation creates an allocation lot for a client and asset.
func CreateTestAllocation(t *testing.T, db *gorm.DB, clientID, assetID uint, quantity, buyPrice float64) *models.Allocation {
	t.Helper()

	allocation := &models.Allocation{
		ClientID: clientID,
		AssetID:  assetID,
		Quantity: quantity,
		BuyPrice: buyPrice,
		BuyDate:  time.Now(),
	}
	if err := db.Create(allocation).Error; err != nil {
		t.Fatalf("failed to create test allocation: %v", err)
	}
	return allocation
}
