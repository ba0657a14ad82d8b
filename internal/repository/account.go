package repository

import (
	"dao-governance-backend/internal/database/models"

	"gorm.io/gorm"
)

// AccountRepository handles database operations for escrow accounts
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Get retrieves the account of one holder for one asset
func (r *AccountRepository) Get(holder, asset string) (*models.Account, error) {
	var account models.Account
	err := r.db.First(&account, "holder = ? AND asset = ?", holder, asset).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Create creates a new account
func (r *AccountRepository) Create(account *models.Account) error {
	return r.db.Create(account).Error
}

// Update updates an account
func (r *AccountRepository) Update(account *models.Account) error {
	return r.db.Save(account).Error
}
