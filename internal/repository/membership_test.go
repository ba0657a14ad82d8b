//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"dao-governance-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MembershipRepositoryTestSuite tests the MembershipRepository
type MembershipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MembershipRepository
	orgRepo       *OrganizationRepository
	factories     *testutils.FactorySet
	orgID         int64
}

// SetupSuite runs before all tests in the suite
func (suite *MembershipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MembershipRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MembershipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	org := suite.factories.Organization.Create()
	suite.Require().NoError(suite.orgRepo.Create(org))
	suite.orgID = org.ID
}

// TearDownTest runs after each test
func (suite *MembershipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new membership
func (suite *MembershipRepositoryTestSuite) TestCreate() {
	membership := suite.factories.Membership.Create(suite.orgID, testutils.TestAddress("member"), 25)

	err := suite.repo.Create(membership)

	suite.NoError(err)
	suite.NotZero(membership.ID)
	suite.NotZero(membership.CreatedAt)
}

// TestCreateDuplicate tests the one-row-per-member unique index
func (suite *MembershipRepositoryTestSuite) TestCreateDuplicate() {
	address := testutils.TestAddress("member")
	suite.NoError(suite.repo.Create(suite.factories.Membership.Create(suite.orgID, address, 25)))

	err := suite.repo.Create(suite.factories.Membership.Create(suite.orgID, address, 10))

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGet tests retrieving a membership
func (suite *MembershipRepositoryTestSuite) TestGet() {
	address := testutils.TestAddress("member")
	joined := time.Now().Add(-90 * time.Minute).UTC()
	suite.NoError(suite.repo.Create(suite.factories.Membership.WithJoinedAt(suite.orgID, address, 40, joined)))

	found, err := suite.repo.Get(suite.orgID, address)

	suite.NoError(err)
	suite.Equal(int64(40), found.Stake)
	suite.NotNil(found.JoinedAt)
	suite.WithinDuration(joined, *found.JoinedAt, time.Second)
}

// TestGetNotFound tests retrieving a non-existent membership
func (suite *MembershipRepositoryTestSuite) TestGetNotFound() {
	found, err := suite.repo.Get(suite.orgID, testutils.TestAddress("stranger"))

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(found)
}

// TestGetByOrganization tests listing members, excluding zero-stake rows
func (suite *MembershipRepositoryTestSuite) TestGetByOrganization() {
	suite.NoError(suite.repo.Create(suite.factories.Membership.Create(suite.orgID, testutils.TestAddress("a"), 25)))
	suite.NoError(suite.repo.Create(suite.factories.Membership.Create(suite.orgID, testutils.TestAddress("b"), 15)))

	// A departed member keeps a row with zero stake; the listing skips it
	departed := suite.factories.Membership.Create(suite.orgID, testutils.TestAddress("c"), 0)
	departed.JoinedAt = nil
	suite.NoError(suite.repo.Create(departed))

	members, total, err := suite.repo.GetByOrganization(suite.orgID, 20, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(members, 2)
	for _, m := range members {
		suite.Positive(m.Stake)
	}
}

// TestUpdate tests zeroing a membership on leave
func (suite *MembershipRepositoryTestSuite) TestUpdate() {
	address := testutils.TestAddress("member")
	membership := suite.factories.Membership.Create(suite.orgID, address, 40)
	suite.NoError(suite.repo.Create(membership))

	membership.Stake = 0
	membership.JoinedAt = nil
	suite.NoError(suite.repo.Update(membership))

	found, err := suite.repo.Get(suite.orgID, address)
	suite.NoError(err)
	suite.Zero(found.Stake)
	suite.Nil(found.JoinedAt)
}

// TestMembershipRepositoryTestSuite runs the test suite
func TestMembershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipRepositoryTestSuite))
}
