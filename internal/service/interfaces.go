package service

import (
	"dao-governance-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AccessServiceInterface defines the interface for the access control service
type AccessServiceInterface interface {
	GrantRole(caller string, req *GrantRoleRequest) error
	HasRole(role models.Role, address string) (bool, error)
	Pause(caller string) error
	Unpause(caller string) error
	Paused() (bool, error)
	RegisterAgent(caller string, req *RegisterAgentRequest) (*AgentResponse, error)
	DeactivateAgent(caller, address string) (*AgentResponse, error)
	GetAgent(address string) (*AgentResponse, error)
	GetAgents(page, pageSize int) (*AgentListResponse, error)
	EnsureGenesisAdmin(address string) error
}

// OrganizationServiceInterface defines the interface for the organization registry service
type OrganizationServiceInterface interface {
	Create(caller string, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id int64) (*OrganizationResponse, error)
	GetAll(page, pageSize int) (*OrganizationListResponse, error)
	GetMembers(id int64, page, pageSize int) (*MemberListResponse, error)
	GetMemberStake(id int64, address string) (*MemberResponse, error)
	Join(caller string, id int64, req *JoinRequest) (*MemberResponse, error)
	IncreaseStake(caller string, id int64, req *IncreaseStakeRequest) (*MemberResponse, error)
	Leave(caller string, id int64) (*LeaveResponse, error)
}

// ProposalServiceInterface defines the interface for the proposal state machine service
type ProposalServiceInterface interface {
	Create(caller string, req *CreateProposalRequest) (*ProposalResponse, error)
	GetByID(id int64) (*ProposalResponse, error)
	GetAll(organizationID *int64, page, pageSize int) (*ProposalListResponse, error)
	SubmitAnalysis(caller string, id int64, req *SubmitAnalysisRequest) (*ProposalResponse, error)
	SubmitSentiment(caller string, id int64, req *SubmitSentimentRequest) error
	SubmitExecutionCheck(caller string, id int64, req *SubmitExecutionCheckRequest) (*ProposalResponse, error)
	Vote(caller string, id int64, req *VoteRequest) (*VoteResponse, error)
	Finalize(caller string, id int64) (*ProposalResponse, error)
	Execute(caller string, id int64) (*ProposalResponse, error)
	GetVotingSnapshot(id int64) (*VotingSnapshotResponse, error)
	GetAnalysis(id int64) (*AnalysisResponse, error)
	GetVote(id int64, voter string) (*VoteResponse, error)
}

// TreasuryServiceInterface defines the interface for the treasury service
type TreasuryServiceInterface interface {
	Fund(caller string, organizationID int64, req *FundTreasuryRequest) (*TreasuryBalanceResponse, error)
	GetBalance(organizationID int64, asset string) (*TreasuryBalanceResponse, error)
}

// AccountServiceInterface defines the interface for the escrow account service
type AccountServiceInterface interface {
	Deposit(caller string, req *DepositRequest) (*AccountResponse, error)
	GetBalance(holder, asset string) (*AccountResponse, error)
}
