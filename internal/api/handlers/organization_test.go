package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"dao-governance-backend/internal/api/handlers"
	apperrors "dao-governance-backend/internal/errors"
	"dao-governance-backend/internal/mocks"
	"dao-governance-backend/internal/service"
	"dao-governance-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrganizationHandlerTestSuite defines the test suite for OrganizationHandler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockOrganizationServiceInterface
	handler     *handlers.OrganizationHandler
	httpSuite   *testutils.HTTPTestSuite
	caller      string
}

// SetupTest sets up the test suite
func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewOrganizationHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.caller = "0xmember1"

	authed := suite.httpSuite.Router.Group("/api", func(c *gin.Context) {
		c.Set("address", suite.caller)
	})
	organizations := authed.Group("/organizations")
	{
		organizations.POST("", suite.handler.CreateOrganization)
		organizations.GET("", suite.handler.GetOrganizations)
		organizations.GET("/:id", suite.handler.GetOrganization)
		organizations.GET("/:id/members", suite.handler.GetMembers)
		organizations.GET("/:id/members/:address", suite.handler.GetMemberStake)
		organizations.POST("/:id/join", suite.handler.Join)
		organizations.POST("/:id/stake", suite.handler.IncreaseStake)
		organizations.POST("/:id/leave", suite.handler.Leave)
	}
}

// TearDownTest cleans up after each test
func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationHandlerTestSuite) TestCreateOrganization() {
	requestBody := map[string]interface{}{
		"name":          "Grant Collective",
		"staking_asset": "native",
		"min_stake":     10,
	}

	expected := &service.OrganizationResponse{
		ID:           1,
		Name:         "Grant Collective",
		Owner:        suite.caller,
		StakingAsset: "native",
		MinStake:     10,
		Active:       true,
	}

	suite.mockService.EXPECT().
		Create(suite.caller, gomock.Any()).
		Return(expected, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/organizations", requestBody)

	var resp service.OrganizationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	suite.Equal("Grant Collective", resp.Name)
	suite.Equal(suite.caller, resp.Owner)
}

func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationInvalidBody() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/organizations", "not an object")

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *OrganizationHandlerTestSuite) TestGetOrganization() {
	expected := &service.OrganizationResponse{ID: 1, Name: "Grant Collective", TotalStaked: 100}

	suite.mockService.EXPECT().
		GetByID(int64(1)).
		Return(expected, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/organizations/1", nil)

	var resp service.OrganizationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(int64(100), resp.TotalStaked)
}

func (suite *OrganizationHandlerTestSuite) TestGetOrganizationNotFound() {
	suite.mockService.EXPECT().
		GetByID(int64(99)).
		Return(nil, apperrors.ErrOrganizationNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/organizations/99", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "organization not found")
}

func (suite *OrganizationHandlerTestSuite) TestGetOrganizations() {
	expected := &service.OrganizationListResponse{
		Organizations: []service.OrganizationResponse{{ID: 1}, {ID: 2}},
		Total:         2,
		Page:          1,
		PageSize:      20,
	}

	suite.mockService.EXPECT().
		GetAll(1, 20).
		Return(expected, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/organizations", nil)

	var resp service.OrganizationListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Len(resp.Organizations, 2)
}

func (suite *OrganizationHandlerTestSuite) TestGetOrganizationsWithPagination() {
	expected := &service.OrganizationListResponse{
		Organizations: []service.OrganizationResponse{},
		Total:         0,
		Page:          2,
		PageSize:      5,
	}

	suite.mockService.EXPECT().
		GetAll(2, 5).
		Return(expected, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/organizations?page=2&page_size=5", nil)

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *OrganizationHandlerTestSuite) TestGetMembers() {
	joined := time.Now().UTC().Add(-time.Hour)
	expected := &service.MemberListResponse{
		Members: []service.MemberResponse{
			{OrganizationID: 1, Address: suite.caller, Stake: 20, JoinedAt: &joined},
		},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}

	suite.mockService.EXPECT().
		GetMembers(int64(1), 1, 20).
		Return(expected, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/organizations/1/members", nil)

	var resp service.MemberListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Len(resp.Members, 1)
}

func (suite *OrganizationHandlerTestSuite) TestGetMemberStake() {
	expected := &service.MemberResponse{OrganizationID: 1, Address: "0xother", Stake: 0}

	suite.mockService.EXPECT().
		GetMemberStake(int64(1), "0xother").
		Return(expected, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/organizations/1/members/0xother", nil)

	var resp service.MemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(int64(0), resp.Stake)
}

func (suite *OrganizationHandlerTestSuite) TestJoin() {
	requestBody := map[string]interface{}{
		"amount": 40,
		"asset":  "native",
	}

	joined := time.Now().UTC()
	expected := &service.MemberResponse{OrganizationID: 1, Address: suite.caller, Stake: 40, JoinedAt: &joined}

	suite.mockService.EXPECT().
		Join(suite.caller, int64(1), gomock.Any()).
		Return(expected, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/organizations/1/join", requestBody)

	var resp service.MemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(int64(40), resp.Stake)
}

func (suite *OrganizationHandlerTestSuite) TestJoinErrorMapping() {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"below minimum stake", apperrors.ErrInsufficientStake, http.StatusBadRequest},
		{"asset mismatch", apperrors.ErrAssetMismatch, http.StatusBadRequest},
		{"already a member", apperrors.ErrAlreadyMember, http.StatusConflict},
		{"transfer failed", apperrors.ErrTransferFailed, http.StatusConflict},
		{"system paused", apperrors.ErrSystemPaused, http.StatusServiceUnavailable},
		{"organization inactive", apperrors.ErrOrganizationInactive, http.StatusConflict},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.mockService.EXPECT().
				Join(suite.caller, int64(1), gomock.Any()).
				Return(nil, tc.err)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/organizations/1/join", map[string]interface{}{"amount": 40, "asset": "native"})

			suite.Equal(tc.wantStatus, recorder.Code)
		})
	}
}

func (suite *OrganizationHandlerTestSuite) TestIncreaseStake() {
	requestBody := map[string]interface{}{
		"amount": 15,
		"asset":  "native",
	}

	expected := &service.MemberResponse{OrganizationID: 1, Address: suite.caller, Stake: 35}

	suite.mockService.EXPECT().
		IncreaseStake(suite.caller, int64(1), gomock.Any()).
		Return(expected, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/organizations/1/stake", requestBody)

	var resp service.MemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(int64(35), resp.Stake)
}

func (suite *OrganizationHandlerTestSuite) TestLeave() {
	expected := &service.LeaveResponse{OrganizationID: 1, Address: suite.caller, Returned: 40, Asset: "native"}

	suite.mockService.EXPECT().
		Leave(suite.caller, int64(1)).
		Return(expected, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/organizations/1/leave", nil)

	var resp service.LeaveResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(int64(40), resp.Returned)
}

func (suite *OrganizationHandlerTestSuite) TestLeaveNotAMember() {
	suite.mockService.EXPECT().
		Leave(suite.caller, int64(1)).
		Return(nil, apperrors.ErrNotAMember)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/organizations/1/leave", nil)

	suite.Equal(http.StatusForbidden, recorder.Code)
}

// TestOrganizationHandlerTestSuite runs the test suite
func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}
