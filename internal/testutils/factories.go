package testutils

import (
	"fmt"
	"time"

	"dao-governance-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		Name:         "Test Organization",
		Description:  "A test organization for testing purposes",
		Owner:        TestAddress("owner"),
		StakingAsset: models.AssetNative,
		MinStake:     10,
		Active:       true,
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// WithMinStake sets a custom minimum stake for the organization
func (f *OrganizationFactory) WithMinStake(minStake int64) *models.Organization {
	org := f.Create()
	org.MinStake = minStake
	return org
}

// WithStake sets the accumulator fields as if members had joined
func (f *OrganizationFactory) WithStake(totalStaked int64, memberCount int) *models.Organization {
	org := f.Create()
	org.TotalStaked = totalStaked
	org.MemberCount = memberCount
	return org
}

// MembershipFactory provides methods to create test Membership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a test Membership with default values
func (f *MembershipFactory) Create(organizationID int64, address string, stake int64) *models.Membership {
	joined := time.Now().Add(-2 * time.Hour)
	return &models.Membership{
		OrganizationID: organizationID,
		Address:        address,
		Stake:          stake,
		JoinedAt:       &joined,
	}
}

// WithJoinedAt sets a custom join time
func (f *MembershipFactory) WithJoinedAt(organizationID int64, address string, stake int64, joinedAt time.Time) *models.Membership {
	m := f.Create(organizationID, address, stake)
	m.JoinedAt = &joinedAt
	return m
}

// ProposalFactory provides methods to create test Proposal data
type ProposalFactory struct{}

// NewProposalFactory creates a new ProposalFactory
func NewProposalFactory() *ProposalFactory {
	return &ProposalFactory{}
}

// Create creates a test pending Proposal with default values
func (f *ProposalFactory) Create(organizationID int64) *models.Proposal {
	return &models.Proposal{
		OrganizationID: organizationID,
		Title:          "Test Proposal",
		Description:    "A test proposal for testing purposes",
		Proposer:       TestAddress("proposer"),
		Amount:         5,
		Asset:          models.AssetNative,
		Recipient:      TestAddress("recipient"),
		Status:         models.ProposalStatusPending,
	}
}

// Active creates a test Proposal in the active state with an open window
func (f *ProposalFactory) Active(organizationID int64) *models.Proposal {
	p := f.Create(organizationID)
	start := time.Now().Add(-time.Hour)
	end := start.Add(24 * time.Hour)
	p.Status = models.ProposalStatusActive
	p.VotingStart = &start
	p.VotingEnd = &end
	p.AnalysisRef = "0xanalysis"
	p.RiskLevel = 1
	p.Confidence = 85
	return p
}

// Approved creates a test Proposal in the approved state
func (f *ProposalFactory) Approved(organizationID int64) *models.Proposal {
	p := f.Active(organizationID)
	end := time.Now().Add(-time.Minute)
	p.VotingEnd = &end
	p.Status = models.ProposalStatusApproved
	p.ForVotes = 20
	return p
}

// AgentFactory provides methods to create test Agent data
type AgentFactory struct{}

// NewAgentFactory creates a new AgentFactory
func NewAgentFactory() *AgentFactory {
	return &AgentFactory{}
}

// Create creates a test Agent with default values
func (f *AgentFactory) Create(address string) *models.Agent {
	return &models.Agent{
		Address:      address,
		Name:         "Test Agent",
		Active:       true,
		RegisteredAt: time.Now(),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	Membership   *MembershipFactory
	Proposal     *ProposalFactory
	Agent        *AgentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		Membership:   NewMembershipFactory(),
		Proposal:     NewProposalFactory(),
		Agent:        NewAgentFactory(),
	}
}

// TestAddress generates a unique fake address with a readable label prefix
func TestAddress(label string) string {
	return fmt.Sprintf("0x%s%s", label, uuid.NewString()[:8])
}
