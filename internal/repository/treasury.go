package repository

import (
	"dao-governance-backend/internal/database/models"

	"gorm.io/gorm"
)

// TreasuryRepository handles database operations for treasury balances
type TreasuryRepository struct {
	db *gorm.DB
}

// NewTreasuryRepository creates a new treasury repository
func NewTreasuryRepository(db *gorm.DB) *TreasuryRepository {
	return &TreasuryRepository{db: db}
}

// Get retrieves one organization's treasury balance for one asset
func (r *TreasuryRepository) Get(organizationID int64, asset string) (*models.TreasuryBalance, error) {
	var balance models.TreasuryBalance
	err := r.db.First(&balance, "organization_id = ? AND asset = ?", organizationID, asset).Error
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

// Create creates a new treasury balance row
func (r *TreasuryRepository) Create(balance *models.TreasuryBalance) error {
	return r.db.Create(balance).Error
}

// Update updates a treasury balance row
func (r *TreasuryRepository) Update(balance *models.TreasuryBalance) error {
	return r.db.Save(balance).Error
}
