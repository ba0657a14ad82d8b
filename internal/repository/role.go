package repository

import (
	"dao-governance-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoleRepository handles database operations for role grants
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// Grant records a role grant. Granting an already-held role is a no-op.
func (r *RoleRepository) Grant(grant *models.RoleGrant) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(grant).Error
}

// Has reports whether the address holds the role
func (r *RoleRepository) Has(role models.Role, address string) (bool, error) {
	var count int64
	err := r.db.Model(&models.RoleGrant{}).
		Where("role = ? AND address = ?", role, address).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
