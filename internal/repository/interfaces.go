package repository

import (
	"dao-governance-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id int64) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	Create(membership *models.Membership) error
	Get(organizationID int64, address string) (*models.Membership, error)
	GetByOrganization(organizationID int64, limit, offset int) ([]models.Membership, int64, error)
	Update(membership *models.Membership) error
}

// ProposalRepositoryInterface defines the interface for proposal repository operations
type ProposalRepositoryInterface interface {
	Create(proposal *models.Proposal) error
	GetByID(id int64) (*models.Proposal, error)
	GetByOrganization(organizationID int64, limit, offset int) ([]models.Proposal, int64, error)
	GetAll(limit, offset int) ([]models.Proposal, int64, error)
	Update(proposal *models.Proposal) error
}

// VoteRepositoryInterface defines the interface for vote repository operations
type VoteRepositoryInterface interface {
	Create(vote *models.Vote) error
	Get(proposalID int64, voter string) (*models.Vote, error)
	GetByProposal(proposalID int64) ([]models.Vote, error)
}

// AgentRepositoryInterface defines the interface for agent repository operations
type AgentRepositoryInterface interface {
	Create(agent *models.Agent) error
	GetByAddress(address string) (*models.Agent, error)
	GetAll(limit, offset int) ([]models.Agent, int64, error)
	Update(agent *models.Agent) error
}

// AccountRepositoryInterface defines the interface for escrow account repository operations
type AccountRepositoryInterface interface {
	Get(holder, asset string) (*models.Account, error)
	Create(account *models.Account) error
	Update(account *models.Account) error
}

// TreasuryRepositoryInterface defines the interface for treasury repository operations
type TreasuryRepositoryInterface interface {
	Get(organizationID int64, asset string) (*models.TreasuryBalance, error)
	Create(balance *models.TreasuryBalance) error
	Update(balance *models.TreasuryBalance) error
}

// RoleRepositoryInterface defines the interface for role grant repository operations
type RoleRepositoryInterface interface {
	Grant(grant *models.RoleGrant) error
	Has(role models.Role, address string) (bool, error)
}

// SystemRepositoryInterface defines the interface for system state repository operations
type SystemRepositoryInterface interface {
	Get() (*models.SystemState, error)
	Save(state *models.SystemState) error
}
