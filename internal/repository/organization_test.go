//go:build integration
// +build integration

package repository

import (
	"testing"

	"dao-governance-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganizationRepositoryTestSuite tests the OrganizationRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new organization
func (suite *OrganizationRepositoryTestSuite) TestCreate() {
	org := suite.factories.Organization.Create()

	err := suite.repo.Create(org)

	suite.NoError(err)
	suite.NotZero(org.ID)
	suite.NotZero(org.CreatedAt)
	suite.NotZero(org.UpdatedAt)
}

// TestGetByID tests retrieving an organization by ID
func (suite *OrganizationRepositoryTestSuite) TestGetByID() {
	org := suite.factories.Organization.WithName("governance-guild")
	suite.NoError(suite.repo.Create(org))

	found, err := suite.repo.GetByID(org.ID)

	suite.NoError(err)
	suite.Equal(org.ID, found.ID)
	suite.Equal("governance-guild", found.Name)
	suite.True(found.Active)
}

// TestGetByIDNotFound tests retrieving a non-existent organization
func (suite *OrganizationRepositoryTestSuite) TestGetByIDNotFound() {
	found, err := suite.repo.GetByID(99999)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(found)
}

// TestGetAll tests retrieving organizations with pagination
func (suite *OrganizationRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 3; i++ {
		org := suite.factories.Organization.Create()
		suite.NoError(suite.repo.Create(org))
	}

	orgs, total, err := suite.repo.GetAll(2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(orgs, 2)
	// Ordered by ID, so page two holds the last one
	orgs, total, err = suite.repo.GetAll(2, 2)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(orgs, 1)
}

// TestUpdate tests updating the stake accumulators
func (suite *OrganizationRepositoryTestSuite) TestUpdate() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))

	org.TotalStaked = 150
	org.MemberCount = 4
	org.Active = false
	suite.NoError(suite.repo.Update(org))

	found, err := suite.repo.GetByID(org.ID)
	suite.NoError(err)
	suite.Equal(int64(150), found.TotalStaked)
	suite.Equal(4, found.MemberCount)
	suite.False(found.Active)
}

// TestOrganizationRepositoryTestSuite runs the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
