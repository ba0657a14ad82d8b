package repository

import (
	"dao-governance-backend/internal/database/models"

	"gorm.io/gorm"
)

// ProposalRepository handles database operations for proposals
type ProposalRepository struct {
	db *gorm.DB
}

// NewProposalRepository creates a new proposal repository
func NewProposalRepository(db *gorm.DB) *ProposalRepository {
	return &ProposalRepository{db: db}
}

// Create creates a new proposal
func (r *ProposalRepository) Create(proposal *models.Proposal) error {
	return r.db.Create(proposal).Error
}

// GetByID retrieves a proposal by ID
func (r *ProposalRepository) GetByID(id int64) (*models.Proposal, error) {
	var proposal models.Proposal
	err := r.db.First(&proposal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// GetByOrganization retrieves an organization's proposals with pagination
func (r *ProposalRepository) GetByOrganization(organizationID int64, limit, offset int) ([]models.Proposal, int64, error) {
	var proposals []models.Proposal
	var total int64

	query := r.db.Model(&models.Proposal{}).Where("organization_id = ?", organizationID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("id").Limit(limit).Offset(offset).Find(&proposals).Error
	if err != nil {
		return nil, 0, err
	}

	return proposals, total, nil
}

// GetAll retrieves all proposals with pagination
func (r *ProposalRepository) GetAll(limit, offset int) ([]models.Proposal, int64, error) {
	var proposals []models.Proposal
	var total int64

	if err := r.db.Model(&models.Proposal{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("id").Limit(limit).Offset(offset).Find(&proposals).Error
	if err != nil {
		return nil, 0, err
	}

	return proposals, total, nil
}

// Update updates a proposal
func (r *ProposalRepository) Update(proposal *models.Proposal) error {
	return r.db.Save(proposal).Error
}
