package service_test

import (
	"sync"
	"testing"
	"time"

	"dao-governance-backend/internal/database/models"
	apperrors "dao-governance-backend/internal/errors"
	"dao-governance-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ProposalServiceTestSuite defines the test suite for ProposalService
type ProposalServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repos   *mockRepos
	svc     *service.ProposalService
	now     time.Time
	caller  string
	agent   string
	orgID   int64
	propID  int64
	joined  time.Time
	votEnd  time.Time
	votPast time.Time
}

// SetupTest sets up the test suite
func (suite *ProposalServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	repos, set, tx := newMockRepos(suite.ctrl)
	suite.repos = repos

	var mu sync.Mutex
	suite.svc = service.NewProposalService(set, tx, &mu, validator.New(), testGovernance())

	suite.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.svc.SetClock(fixedClock(suite.now))

	suite.caller = "0xvoter1"
	suite.agent = "0xagent1"
	suite.orgID = 1
	suite.propID = 7
	suite.joined = suite.now.Add(-2 * time.Hour)
	suite.votEnd = suite.now.Add(12 * time.Hour)
	suite.votPast = suite.now.Add(-time.Minute)
}

// TearDownTest cleans up after each test
func (suite *ProposalServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProposalServiceTestSuite) unpaused() {
	suite.repos.System.EXPECT().
		Get().
		Return(&models.SystemState{ID: models.SystemStateID, Paused: false}, nil)
}

func (suite *ProposalServiceTestSuite) paused() {
	suite.repos.System.EXPECT().
		Get().
		Return(&models.SystemState{ID: models.SystemStateID, Paused: true}, nil)
}

func (suite *ProposalServiceTestSuite) hasRole(role models.Role, address string, ok bool) {
	suite.repos.Roles.EXPECT().
		Has(role, address).
		Return(ok, nil)
}

func (suite *ProposalServiceTestSuite) noAgentRecord(address string) {
	suite.repos.Agents.EXPECT().
		GetByAddress(address).
		Return(nil, gorm.ErrRecordNotFound)
}

func (suite *ProposalServiceTestSuite) organization(totalStaked int64) *models.Organization {
	return &models.Organization{
		ID:           suite.orgID,
		Name:         "Test Organization",
		StakingAsset: models.AssetNative,
		MinStake:     10,
		TotalStaked:  totalStaked,
		Active:       true,
	}
}

func (suite *ProposalServiceTestSuite) pendingProposal() *models.Proposal {
	return &models.Proposal{
		ID:             suite.propID,
		OrganizationID: suite.orgID,
		Title:          "Fund grants",
		Proposer:       suite.caller,
		Amount:         40,
		Asset:          models.AssetNative,
		Recipient:      "0xrecipient",
		Status:         models.ProposalStatusPending,
	}
}

func (suite *ProposalServiceTestSuite) activeProposal(end time.Time) *models.Proposal {
	p := suite.pendingProposal()
	start := end.Add(-24 * time.Hour)
	p.Status = models.ProposalStatusActive
	p.VotingStart = &start
	p.VotingEnd = &end
	return p
}

// TestCreate tests creating a proposal

func (suite *ProposalServiceTestSuite) TestCreate() {
	req := &service.CreateProposalRequest{
		OrganizationID: suite.orgID,
		Title:          "Fund grants",
		Description:    "quarterly grants round",
		Amount:         40,
		Asset:          models.AssetNative,
		Recipient:      "0xrecipient",
	}

	suite.repos.Organizations.EXPECT().
		GetByID(suite.orgID).
		Return(suite.organization(100), nil)
	suite.repos.Memberships.EXPECT().
		Get(suite.orgID, suite.caller).
		Return(&models.Membership{OrganizationID: suite.orgID, Address: suite.caller, Stake: 30, JoinedAt: &suite.joined}, nil)
	suite.repos.Proposals.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(p *models.Proposal) error {
			p.ID = suite.propID
			return nil
		})

	resp, err := suite.svc.Create(suite.caller, req)

	suite.NoError(err)
	suite.Equal(models.ProposalStatusPending, resp.Status)
	suite.Equal(suite.caller, resp.Proposer)
	suite.Nil(resp.VotingEnd)
}

func (suite *ProposalServiceTestSuite) TestCreateNotAMember() {
	req := &service.CreateProposalRequest{
		OrganizationID: suite.orgID,
		Title:          "Fund grants",
		Amount:         40,
		Asset:          models.AssetNative,
		Recipient:      "0xrecipient",
	}

	suite.repos.Organizations.EXPECT().
		GetByID(suite.orgID).
		Return(suite.organization(100), nil)
	suite.repos.Memberships.EXPECT().
		Get(suite.orgID, suite.caller).
		Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.Create(suite.caller, req)

	suite.ErrorIs(err, apperrors.ErrNotAMember)
	suite.Nil(resp)
}

func (suite *ProposalServiceTestSuite) TestCreateZeroRecipient() {
	req := &service.CreateProposalRequest{
		OrganizationID: suite.orgID,
		Title:          "Fund grants",
		Amount:         40,
		Asset:          models.AssetNative,
		Recipient:      "0x0000",
	}

	resp, err := suite.svc.Create(suite.caller, req)

	suite.True(apperrors.IsValidation(err))
	suite.Nil(resp)
}

func (suite *ProposalServiceTestSuite) TestCreateOrganizationNotFound() {
	req := &service.CreateProposalRequest{
		OrganizationID: 99,
		Title:          "Fund grants",
		Amount:         40,
		Asset:          models.AssetNative,
		Recipient:      "0xrecipient",
	}

	suite.repos.Organizations.EXPECT().
		GetByID(int64(99)).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.Create(suite.caller, req)

	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
}

// TestSubmitAnalysis tests the admission gate

func (suite *ProposalServiceTestSuite) TestSubmitAnalysisOpensVoting() {
	req := &service.SubmitAnalysisRequest{
		AnalysisRef:     "ipfs://analysis-1",
		RiskLevel:       2,
		Confidence:      85,
		RecommendVoting: true,
	}

	suite.hasRole(models.RoleProposalAgent, suite.agent, true)
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(suite.pendingProposal(), nil)
	suite.repos.Proposals.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(p *models.Proposal) error {
			assert.Equal(suite.T(), models.ProposalStatusActive, p.Status)
			assert.Equal(suite.T(), suite.now, *p.VotingStart)
			assert.Equal(suite.T(), suite.now.Add(24*time.Hour), *p.VotingEnd)
			return nil
		})
	suite.noAgentRecord(suite.agent)

	resp, err := suite.svc.SubmitAnalysis(suite.agent, suite.propID, req)

	suite.NoError(err)
	suite.Equal(models.ProposalStatusActive, resp.Status)
}

func (suite *ProposalServiceTestSuite) TestSubmitAnalysisLowConfidenceCancels() {
	req := &service.SubmitAnalysisRequest{
		AnalysisRef:     "ipfs://analysis-2",
		RiskLevel:       3,
		Confidence:      50,
		RecommendVoting: true,
	}

	suite.hasRole(models.RoleProposalAgent, suite.agent, true)
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(suite.pendingProposal(), nil)
	suite.repos.Proposals.EXPECT().
		Update(gomock.Any()).
		Return(nil)
	suite.noAgentRecord(suite.agent)

	resp, err := suite.svc.SubmitAnalysis(suite.agent, suite.propID, req)

	suite.NoError(err)
	suite.Equal(models.ProposalStatusCancelled, resp.Status)
	suite.Nil(resp.VotingEnd)
}

func (suite *ProposalServiceTestSuite) TestSubmitAnalysisNoRecommendationCancels() {
	req := &service.SubmitAnalysisRequest{
		AnalysisRef:     "ipfs://analysis-3",
		RiskLevel:       1,
		Confidence:      95,
		RecommendVoting: false,
	}

	suite.hasRole(models.RoleProposalAgent, suite.agent, true)
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(suite.pendingProposal(), nil)
	suite.repos.Proposals.EXPECT().
		Update(gomock.Any()).
		Return(nil)
	suite.noAgentRecord(suite.agent)

	resp, err := suite.svc.SubmitAnalysis(suite.agent, suite.propID, req)

	suite.NoError(err)
	suite.Equal(models.ProposalStatusCancelled, resp.Status)
}

func (suite *ProposalServiceTestSuite) TestSubmitAnalysisUnauthorized() {
	req := &service.SubmitAnalysisRequest{
		AnalysisRef:     "ipfs://analysis-4",
		RiskLevel:       1,
		Confidence:      90,
		RecommendVoting: true,
	}

	suite.hasRole(models.RoleProposalAgent, suite.caller, false)

	_, err := suite.svc.SubmitAnalysis(suite.caller, suite.propID, req)

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *ProposalServiceTestSuite) TestSubmitAnalysisNotPending() {
	req := &service.SubmitAnalysisRequest{
		AnalysisRef:     "ipfs://analysis-5",
		RiskLevel:       1,
		Confidence:      90,
		RecommendVoting: true,
	}

	suite.hasRole(models.RoleProposalAgent, suite.agent, true)
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(suite.activeProposal(suite.votEnd), nil)

	_, err := suite.svc.SubmitAnalysis(suite.agent, suite.propID, req)

	suite.ErrorIs(err, apperrors.ErrProposalNotPending)
}

// TestSubmitSentiment tests the voter agent signal path

func (suite *ProposalServiceTestSuite) TestSubmitSentiment() {
	req := &service.SubmitSentimentRequest{Payload: `{"score":0.8}`}

	suite.hasRole(models.RoleVoterAgent, suite.agent, true)
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(suite.activeProposal(suite.votEnd), nil)
	suite.repos.Proposals.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(p *models.Proposal) error {
			assert.Equal(suite.T(), `{"score":0.8}`, p.Sentiment)
			return nil
		})
	suite.noAgentRecord(suite.agent)

	err := suite.svc.SubmitSentiment(suite.agent, suite.propID, req)

	suite.NoError(err)
}

func (suite *ProposalServiceTestSuite) TestSubmitSentimentAllowedOnSettledProposal() {
	req := &service.SubmitSentimentRequest{Payload: "bearish"}

	proposal := suite.pendingProposal()
	proposal.Status = models.ProposalStatusRejected

	suite.hasRole(models.RoleVoterAgent, suite.agent, true)
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(proposal, nil)
	suite.repos.Proposals.EXPECT().
		Update(gomock.Any()).
		Return(nil)
	suite.noAgentRecord(suite.agent)

	err := suite.svc.SubmitSentiment(suite.agent, suite.propID, req)

	suite.NoError(err)
}

func (suite *ProposalServiceTestSuite) TestSubmitSentimentUnauthorized() {
	req := &service.SubmitSentimentRequest{Payload: "bullish"}

	suite.hasRole(models.RoleVoterAgent, suite.caller, false)

	err := suite.svc.SubmitSentiment(suite.caller, suite.propID, req)

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// TestSubmitExecutionCheck tests the execution gate

func (suite *ProposalServiceTestSuite) TestSubmitExecutionCheck() {
	approved := true
	req := &service.SubmitExecutionCheckRequest{Approved: &approved}

	proposal := suite.pendingProposal()
	proposal.Status = models.ProposalStatusApproved

	suite.hasRole(models.RoleExecutionAgent, suite.agent, true)
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(proposal, nil)
	suite.repos.Proposals.EXPECT().
		Update(gomock.Any()).
		Return(nil)
	suite.noAgentRecord(suite.agent)

	resp, err := suite.svc.SubmitExecutionCheck(suite.agent, suite.propID, req)

	suite.NoError(err)
	suite.True(resp.ExecutionApproved)
}

func (suite *ProposalServiceTestSuite) TestSubmitExecutionCheckRejection() {
	approved := false
	req := &service.SubmitExecutionCheckRequest{Approved: &approved}

	proposal := suite.pendingProposal()
	proposal.Status = models.ProposalStatusApproved
	proposal.ExecutionApproved = true

	suite.hasRole(models.RoleExecutionAgent, suite.agent, true)
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(proposal, nil)
	suite.repos.Proposals.EXPECT().
		Update(gomock.Any()).
		Return(nil)
	suite.noAgentRecord(suite.agent)

	resp, err := suite.svc.SubmitExecutionCheck(suite.agent, suite.propID, req)

	suite.NoError(err)
	suite.False(resp.ExecutionApproved)
}

func (suite *ProposalServiceTestSuite) TestSubmitExecutionCheckNotApproved() {
	approved := true
	req := &service.SubmitExecutionCheckRequest{Approved: &approved}

	suite.hasRole(models.RoleExecutionAgent, suite.agent, true)
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(suite.activeProposal(suite.votEnd), nil)

	_, err := suite.svc.SubmitExecutionCheck(suite.agent, suite.propID, req)

	suite.ErrorIs(err, apperrors.ErrProposalNotApproved)
}

// TestVote tests ballot casting

func (suite *ProposalServiceTestSuite) TestVote() {
	req := &service.VoteRequest{Choice: models.VoteChoiceFor}

	suite.unpaused()
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(suite.activeProposal(suite.votEnd), nil)
	suite.repos.Votes.EXPECT().
		Get(suite.propID, suite.caller).
		Return(nil, gorm.ErrRecordNotFound)
	suite.repos.Memberships.EXPECT().
		Get(suite.orgID, suite.caller).
		Return(&models.Membership{OrganizationID: suite.orgID, Address: suite.caller, Stake: 30, JoinedAt: &suite.joined}, nil)
	suite.repos.Votes.EXPECT().
		Create(gomock.Any()).
		Return(nil)
	suite.repos.Proposals.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(p *models.Proposal) error {
			assert.Equal(suite.T(), int64(30), p.ForVotes)
			assert.Equal(suite.T(), models.ProposalStatusActive, p.Status)
			return nil
		})

	resp, err := suite.svc.Vote(suite.caller, suite.propID, req)

	suite.NoError(err)
	suite.Equal(int64(30), resp.Weight)
	suite.Equal(models.VoteChoiceFor, resp.Choice)
	suite.False(resp.Finalized)
}

func (suite *ProposalServiceTestSuite) TestVoteWhilePaused() {
	req := &service.VoteRequest{Choice: models.VoteChoiceFor}

	suite.paused()

	_, err := suite.svc.Vote(suite.caller, suite.propID, req)

	suite.ErrorIs(err, apperrors.ErrSystemPaused)
}

func (suite *ProposalServiceTestSuite) TestVoteOnCancelledProposal() {
	req := &service.VoteRequest{Choice: models.VoteChoiceFor}

	proposal := suite.pendingProposal()
	proposal.Status = models.ProposalStatusCancelled

	suite.unpaused()
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(proposal, nil)

	_, err := suite.svc.Vote(suite.caller, suite.propID, req)

	suite.ErrorIs(err, apperrors.ErrProposalNotActive)
}

func (suite *ProposalServiceTestSuite) TestVoteAfterDeadline() {
	req := &service.VoteRequest{Choice: models.VoteChoiceFor}

	suite.unpaused()
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(suite.activeProposal(suite.votPast), nil)

	_, err := suite.svc.Vote(suite.caller, suite.propID, req)

	suite.ErrorIs(err, apperrors.ErrVotingClosed)
}

func (suite *ProposalServiceTestSuite) TestVoteDuplicate() {
	req := &service.VoteRequest{Choice: models.VoteChoiceAgainst}

	suite.unpaused()
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(suite.activeProposal(suite.votEnd), nil)
	suite.repos.Votes.EXPECT().
		Get(suite.propID, suite.caller).
		Return(&models.Vote{ProposalID: suite.propID, Voter: suite.caller, Choice: models.VoteChoiceFor, Weight: 30}, nil)

	_, err := suite.svc.Vote(suite.caller, suite.propID, req)

	suite.ErrorIs(err, apperrors.ErrDuplicateVote)
}

func (suite *ProposalServiceTestSuite) TestVoteNotAMember() {
	req := &service.VoteRequest{Choice: models.VoteChoiceFor}

	suite.unpaused()
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(suite.activeProposal(suite.votEnd), nil)
	suite.repos.Votes.EXPECT().
		Get(suite.propID, suite.caller).
		Return(nil, gorm.ErrRecordNotFound)
	suite.repos.Memberships.EXPECT().
		Get(suite.orgID, suite.caller).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.Vote(suite.caller, suite.propID, req)

	suite.ErrorIs(err, apperrors.ErrNotAMember)
}

func (suite *ProposalServiceTestSuite) TestVoteStakeTooRecent() {
	req := &service.VoteRequest{Choice: models.VoteChoiceFor}

	recentJoin := suite.now.Add(-30 * time.Minute)

	suite.unpaused()
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(suite.activeProposal(suite.votEnd), nil)
	suite.repos.Votes.EXPECT().
		Get(suite.propID, suite.caller).
		Return(nil, gorm.ErrRecordNotFound)
	suite.repos.Memberships.EXPECT().
		Get(suite.orgID, suite.caller).
		Return(&models.Membership{OrganizationID: suite.orgID, Address: suite.caller, Stake: 30, JoinedAt: &recentJoin}, nil)

	_, err := suite.svc.Vote(suite.caller, suite.propID, req)

	suite.ErrorIs(err, apperrors.ErrStakeTooRecent)
}

func (suite *ProposalServiceTestSuite) TestVoteAtExactLockBoundary() {
	req := &service.VoteRequest{Choice: models.VoteChoiceFor}

	// Joined exactly one hour ago: the lock period has elapsed.
	boundaryJoin := suite.now.Add(-time.Hour)

	suite.unpaused()
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(suite.activeProposal(suite.votEnd), nil)
	suite.repos.Votes.EXPECT().
		Get(suite.propID, suite.caller).
		Return(nil, gorm.ErrRecordNotFound)
	suite.repos.Memberships.EXPECT().
		Get(suite.orgID, suite.caller).
		Return(&models.Membership{OrganizationID: suite.orgID, Address: suite.caller, Stake: 30, JoinedAt: &boundaryJoin}, nil)
	suite.repos.Votes.EXPECT().
		Create(gomock.Any()).
		Return(nil)
	suite.repos.Proposals.EXPECT().
		Update(gomock.Any()).
		Return(nil)

	resp, err := suite.svc.Vote(suite.caller, suite.propID, req)

	suite.NoError(err)
	suite.Equal(int64(30), resp.Weight)
}

func (suite *ProposalServiceTestSuite) TestVoteAtDeadlineFinalizesInSameCall() {
	req := &service.VoteRequest{Choice: models.VoteChoiceFor}

	// The deadline is exactly now: the ballot is still admitted and the
	// proposal settles in the same call.
	proposal := suite.activeProposal(suite.now)
	proposal.ForVotes = 10

	suite.unpaused()
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(proposal, nil)
	suite.repos.Votes.EXPECT().
		Get(suite.propID, suite.caller).
		Return(nil, gorm.ErrRecordNotFound)
	suite.repos.Memberships.EXPECT().
		Get(suite.orgID, suite.caller).
		Return(&models.Membership{OrganizationID: suite.orgID, Address: suite.caller, Stake: 30, JoinedAt: &suite.joined}, nil)
	suite.repos.Votes.EXPECT().
		Create(gomock.Any()).
		Return(nil)
	suite.repos.Organizations.EXPECT().
		GetByID(suite.orgID).
		Return(suite.organization(100), nil)
	suite.repos.Proposals.EXPECT().
		Update(gomock.Any()).
		Return(nil)

	resp, err := suite.svc.Vote(suite.caller, suite.propID, req)

	suite.NoError(err)
	suite.True(resp.Finalized)
	suite.Equal(models.ProposalStatusApproved, resp.Status)
}

// TestFinalize tests the quorum rule

func (suite *ProposalServiceTestSuite) finalizeWithTallies(forVotes, againstVotes, abstainVotes, totalStaked int64) *service.ProposalResponse {
	proposal := suite.activeProposal(suite.votPast)
	proposal.ForVotes = forVotes
	proposal.AgainstVotes = againstVotes
	proposal.AbstainVotes = abstainVotes

	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(proposal, nil)
	suite.repos.Organizations.EXPECT().
		GetByID(suite.orgID).
		Return(suite.organization(totalStaked), nil)
	suite.repos.Proposals.EXPECT().
		Update(gomock.Any()).
		Return(nil)

	resp, err := suite.svc.Finalize(suite.caller, suite.propID)
	suite.Require().NoError(err)
	return resp
}

func (suite *ProposalServiceTestSuite) TestFinalizeBelowQuorumRejects() {
	// Quorum is 100/10 = 10; a lone 6-weight ballot falls short.
	resp := suite.finalizeWithTallies(6, 0, 0, 100)
	suite.Equal(models.ProposalStatusRejected, resp.Status)
}

func (suite *ProposalServiceTestSuite) TestFinalizeMajorityAboveQuorumApproves() {
	// 11 total weight meets quorum and for outweighs against.
	resp := suite.finalizeWithTallies(6, 5, 0, 100)
	suite.Equal(models.ProposalStatusApproved, resp.Status)
}

func (suite *ProposalServiceTestSuite) TestFinalizeTieRejects() {
	resp := suite.finalizeWithTallies(5, 5, 0, 100)
	suite.Equal(models.ProposalStatusRejected, resp.Status)
}

func (suite *ProposalServiceTestSuite) TestFinalizeAbstainCountsTowardQuorumOnly() {
	// Abstain weight lifts participation past quorum without touching the
	// for/against comparison.
	resp := suite.finalizeWithTallies(6, 0, 5, 100)
	suite.Equal(models.ProposalStatusApproved, resp.Status)
}

func (suite *ProposalServiceTestSuite) TestFinalizeUnstakedOrganizationRejects() {
	resp := suite.finalizeWithTallies(50, 0, 0, 0)
	suite.Equal(models.ProposalStatusRejected, resp.Status)
}

func (suite *ProposalServiceTestSuite) TestFinalizeQuorumFloorsAtOne() {
	// TotalStaked 5 with divisor 10 floors to a quorum of 1.
	resp := suite.finalizeWithTallies(1, 0, 0, 5)
	suite.Equal(models.ProposalStatusApproved, resp.Status)
}

func (suite *ProposalServiceTestSuite) TestFinalizeWhileVotingStillOpen() {
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(suite.activeProposal(suite.votEnd), nil)

	_, err := suite.svc.Finalize(suite.caller, suite.propID)

	suite.ErrorIs(err, apperrors.ErrVotingStillOpen)
}

func (suite *ProposalServiceTestSuite) TestFinalizeTwice() {
	proposal := suite.pendingProposal()
	proposal.Status = models.ProposalStatusRejected

	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(proposal, nil)

	_, err := suite.svc.Finalize(suite.caller, suite.propID)

	suite.ErrorIs(err, apperrors.ErrProposalNotActive)
}

// TestExecute tests payout execution

func (suite *ProposalServiceTestSuite) executableProposal() *models.Proposal {
	p := suite.pendingProposal()
	p.Status = models.ProposalStatusApproved
	p.ExecutionApproved = true
	return p
}

func (suite *ProposalServiceTestSuite) TestExecute() {
	suite.unpaused()
	suite.hasRole(models.RoleExecutionAgent, suite.agent, true)
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(suite.executableProposal(), nil)
	suite.repos.Treasury.EXPECT().
		Get(suite.orgID, models.AssetNative).
		Return(&models.TreasuryBalance{OrganizationID: suite.orgID, Asset: models.AssetNative, Balance: 100}, nil)
	suite.repos.Treasury.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(b *models.TreasuryBalance) error {
			assert.Equal(suite.T(), int64(60), b.Balance)
			return nil
		})
	suite.repos.Proposals.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(p *models.Proposal) error {
			assert.Equal(suite.T(), models.ProposalStatusExecuted, p.Status)
			assert.Equal(suite.T(), suite.now, *p.ExecutedAt)
			return nil
		})
	suite.repos.Accounts.EXPECT().
		Get("0xrecipient", models.AssetNative).
		Return(nil, gorm.ErrRecordNotFound)
	suite.repos.Accounts.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(a *models.Account) error {
			assert.Equal(suite.T(), int64(40), a.Balance)
			return nil
		})
	suite.noAgentRecord(suite.agent)

	resp, err := suite.svc.Execute(suite.agent, suite.propID)

	suite.NoError(err)
	suite.Equal(models.ProposalStatusExecuted, resp.Status)
	suite.NotNil(resp.ExecutedAt)
}

func (suite *ProposalServiceTestSuite) TestExecuteInsufficientTreasury() {
	suite.unpaused()
	suite.hasRole(models.RoleExecutionAgent, suite.agent, true)
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(suite.executableProposal(), nil)
	suite.repos.Treasury.EXPECT().
		Get(suite.orgID, models.AssetNative).
		Return(&models.TreasuryBalance{OrganizationID: suite.orgID, Asset: models.AssetNative, Balance: 30}, nil)

	_, err := suite.svc.Execute(suite.agent, suite.propID)

	suite.ErrorIs(err, apperrors.ErrInsufficientTreasury)
}

func (suite *ProposalServiceTestSuite) TestExecuteUnfundedTreasury() {
	suite.unpaused()
	suite.hasRole(models.RoleExecutionAgent, suite.agent, true)
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(suite.executableProposal(), nil)
	suite.repos.Treasury.EXPECT().
		Get(suite.orgID, models.AssetNative).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.Execute(suite.agent, suite.propID)

	suite.ErrorIs(err, apperrors.ErrInsufficientTreasury)
}

func (suite *ProposalServiceTestSuite) TestExecuteWithoutExecutionApproval() {
	proposal := suite.executableProposal()
	proposal.ExecutionApproved = false

	suite.unpaused()
	suite.hasRole(models.RoleExecutionAgent, suite.agent, true)
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(proposal, nil)

	_, err := suite.svc.Execute(suite.agent, suite.propID)

	suite.ErrorIs(err, apperrors.ErrExecutionNotApproved)
}

func (suite *ProposalServiceTestSuite) TestExecuteNotApprovedProposal() {
	suite.unpaused()
	suite.hasRole(models.RoleExecutionAgent, suite.agent, true)
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(suite.activeProposal(suite.votEnd), nil)

	_, err := suite.svc.Execute(suite.agent, suite.propID)

	suite.ErrorIs(err, apperrors.ErrProposalNotApproved)
}

func (suite *ProposalServiceTestSuite) TestExecuteUnauthorized() {
	suite.unpaused()
	suite.hasRole(models.RoleExecutionAgent, suite.caller, false)

	_, err := suite.svc.Execute(suite.caller, suite.propID)

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *ProposalServiceTestSuite) TestExecuteWhilePaused() {
	suite.paused()

	_, err := suite.svc.Execute(suite.agent, suite.propID)

	suite.ErrorIs(err, apperrors.ErrSystemPaused)
}

// TestReadProjections tests the query views

func (suite *ProposalServiceTestSuite) TestGetVotingSnapshot() {
	proposal := suite.activeProposal(suite.votEnd)
	proposal.ForVotes = 20
	proposal.AgainstVotes = 5
	proposal.AbstainVotes = 3

	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(proposal, nil)

	resp, err := suite.svc.GetVotingSnapshot(suite.propID)

	suite.NoError(err)
	suite.Equal(int64(28), resp.TotalVotes)
	suite.Equal(int64(20), resp.ForVotes)
	suite.Equal(models.ProposalStatusActive, resp.Status)
}

func (suite *ProposalServiceTestSuite) TestGetAnalysis() {
	proposal := suite.activeProposal(suite.votEnd)
	proposal.AnalysisRef = "ipfs://analysis-1"
	proposal.RiskLevel = 2
	proposal.Confidence = 85
	proposal.Sentiment = "bullish"

	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(proposal, nil)

	resp, err := suite.svc.GetAnalysis(suite.propID)

	suite.NoError(err)
	suite.Equal("ipfs://analysis-1", resp.AnalysisRef)
	suite.Equal(85, resp.Confidence)
	suite.Equal("bullish", resp.Sentiment)
}

func (suite *ProposalServiceTestSuite) TestGetVote() {
	cast := suite.now.Add(-time.Hour)

	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(suite.activeProposal(suite.votEnd), nil)
	suite.repos.Votes.EXPECT().
		Get(suite.propID, suite.caller).
		Return(&models.Vote{ProposalID: suite.propID, Voter: suite.caller, Choice: models.VoteChoiceFor, Weight: 30, CastAt: cast}, nil)

	resp, err := suite.svc.GetVote(suite.propID, suite.caller)

	suite.NoError(err)
	suite.Equal(int64(30), resp.Weight)
	suite.Equal(models.VoteChoiceFor, resp.Choice)
}

func (suite *ProposalServiceTestSuite) TestGetVoteNotFound() {
	suite.repos.Proposals.EXPECT().
		GetByID(suite.propID).
		Return(suite.activeProposal(suite.votEnd), nil)
	suite.repos.Votes.EXPECT().
		Get(suite.propID, suite.caller).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.GetVote(suite.propID, suite.caller)

	suite.ErrorIs(err, apperrors.ErrVoteNotFound)
}

func (suite *ProposalServiceTestSuite) TestGetProposalNotFound() {
	suite.repos.Proposals.EXPECT().
		GetByID(int64(404)).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.GetByID(404)

	suite.ErrorIs(err, apperrors.ErrProposalNotFound)
}

// TestProposalServiceTestSuite runs the test suite
func TestProposalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProposalServiceTestSuite))
}
