package repository

import (
	"dao-governance-backend/internal/database/models"

	"gorm.io/gorm"
)

// MembershipRepository handles database operations for memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new membership record
func (r *MembershipRepository) Create(membership *models.Membership) error {
	return r.db.Create(membership).Error
}

// Get retrieves the membership record for one address in one organization
func (r *MembershipRepository) Get(organizationID int64, address string) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.First(&membership, "organization_id = ? AND address = ?", organizationID, address).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetByOrganization retrieves the active memberships of an organization with pagination
func (r *MembershipRepository) GetByOrganization(organizationID int64, limit, offset int) ([]models.Membership, int64, error) {
	var memberships []models.Membership
	var total int64

	query := r.db.Model(&models.Membership{}).Where("organization_id = ? AND stake > 0", organizationID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("id").Limit(limit).Offset(offset).Find(&memberships).Error
	if err != nil {
		return nil, 0, err
	}

	return memberships, total, nil
}

// Update updates a membership record
func (r *MembershipRepository) Update(membership *models.Membership) error {
	return r.db.Save(membership).Error
}
