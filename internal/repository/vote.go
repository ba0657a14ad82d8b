package repository

import (
	"dao-governance-backend/internal/database/models"

	"gorm.io/gorm"
)

// VoteRepository handles database operations for votes
type VoteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new vote repository
func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// Create creates a new vote. The (proposal, voter) unique index rejects a
// second ballot from the same member.
func (r *VoteRepository) Create(vote *models.Vote) error {
	return r.db.Create(vote).Error
}

// Get retrieves one voter's ballot on one proposal
func (r *VoteRepository) Get(proposalID int64, voter string) (*models.Vote, error) {
	var vote models.Vote
	err := r.db.First(&vote, "proposal_id = ? AND voter = ?", proposalID, voter).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

// GetByProposal retrieves all ballots cast on a proposal
func (r *VoteRepository) GetByProposal(proposalID int64) ([]models.Vote, error) {
	var votes []models.Vote
	err := r.db.Where("proposal_id = ?", proposalID).Order("id").Find(&votes).Error
	if err != nil {
		return nil, err
	}
	return votes, nil
}
