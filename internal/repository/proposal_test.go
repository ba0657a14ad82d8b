//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"dao-governance-backend/internal/database/models"
	"dao-governance-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProposalRepositoryTestSuite tests the ProposalRepository
type ProposalRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProposalRepository
	orgRepo       *OrganizationRepository
	factories     *testutils.FactorySet
	orgID         int64
}

// SetupSuite runs before all tests in the suite
func (suite *ProposalRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewProposalRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProposalRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProposalRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	org := suite.factories.Organization.Create()
	suite.Require().NoError(suite.orgRepo.Create(org))
	suite.orgID = org.ID
}

// TearDownTest runs after each test
func (suite *ProposalRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new proposal
func (suite *ProposalRepositoryTestSuite) TestCreate() {
	proposal := suite.factories.Proposal.Create(suite.orgID)

	err := suite.repo.Create(proposal)

	suite.NoError(err)
	suite.NotZero(proposal.ID)
	suite.Equal(models.ProposalStatusPending, proposal.Status)
	suite.NotZero(proposal.CreatedAt)
}

// TestGetByID tests retrieving a proposal by ID
func (suite *ProposalRepositoryTestSuite) TestGetByID() {
	proposal := suite.factories.Proposal.Active(suite.orgID)
	suite.NoError(suite.repo.Create(proposal))

	found, err := suite.repo.GetByID(proposal.ID)

	suite.NoError(err)
	suite.Equal(models.ProposalStatusActive, found.Status)
	suite.NotNil(found.VotingStart)
	suite.NotNil(found.VotingEnd)
	suite.Equal("0xanalysis", found.AnalysisRef)
	suite.Equal(85, found.Confidence)
}

// TestGetByIDNotFound tests retrieving a non-existent proposal
func (suite *ProposalRepositoryTestSuite) TestGetByIDNotFound() {
	found, err := suite.repo.GetByID(99999)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(found)
}

// TestGetByOrganization tests listing one organization's proposals
func (suite *ProposalRepositoryTestSuite) TestGetByOrganization() {
	other := suite.factories.Organization.Create()
	suite.Require().NoError(suite.orgRepo.Create(other))

	suite.NoError(suite.repo.Create(suite.factories.Proposal.Create(suite.orgID)))
	suite.NoError(suite.repo.Create(suite.factories.Proposal.Create(suite.orgID)))
	suite.NoError(suite.repo.Create(suite.factories.Proposal.Create(other.ID)))

	proposals, total, err := suite.repo.GetByOrganization(suite.orgID, 20, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(proposals, 2)
	for _, p := range proposals {
		suite.Equal(suite.orgID, p.OrganizationID)
	}
}

// TestGetAll tests listing proposals across organizations
func (suite *ProposalRepositoryTestSuite) TestGetAll() {
	suite.NoError(suite.repo.Create(suite.factories.Proposal.Create(suite.orgID)))
	suite.NoError(suite.repo.Create(suite.factories.Proposal.Create(suite.orgID)))

	proposals, total, err := suite.repo.GetAll(1, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(proposals, 1)
}

// TestUpdateTallies tests persisting the settlement outcome
func (suite *ProposalRepositoryTestSuite) TestUpdateTallies() {
	proposal := suite.factories.Proposal.Active(suite.orgID)
	suite.NoError(suite.repo.Create(proposal))

	proposal.Status = models.ProposalStatusApproved
	proposal.ForVotes = 30
	proposal.AgainstVotes = 10
	proposal.AbstainVotes = 5
	suite.NoError(suite.repo.Update(proposal))

	found, err := suite.repo.GetByID(proposal.ID)
	suite.NoError(err)
	suite.Equal(models.ProposalStatusApproved, found.Status)
	suite.Equal(int64(30), found.ForVotes)
	suite.Equal(int64(10), found.AgainstVotes)
	suite.Equal(int64(5), found.AbstainVotes)
}

// TestUpdateExecution tests marking a proposal executed
func (suite *ProposalRepositoryTestSuite) TestUpdateExecution() {
	proposal := suite.factories.Proposal.Approved(suite.orgID)
	proposal.ExecutionApproved = true
	suite.NoError(suite.repo.Create(proposal))

	executedAt := time.Now().UTC()
	proposal.Status = models.ProposalStatusExecuted
	proposal.ExecutedAt = &executedAt
	suite.NoError(suite.repo.Update(proposal))

	found, err := suite.repo.GetByID(proposal.ID)
	suite.NoError(err)
	suite.Equal(models.ProposalStatusExecuted, found.Status)
	suite.True(found.ExecutionApproved)
	suite.NotNil(found.ExecutedAt)
	suite.WithinDuration(executedAt, *found.ExecutedAt, time.Second)
}

// TestProposalRepositoryTestSuite runs the test suite
func TestProposalRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProposalRepositoryTestSuite))
}
