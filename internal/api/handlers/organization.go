package handlers

import (
	"net/http"
	"strconv"

	"dao-governance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// parseID parses an integer id path parameter
func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + param})
		return 0, false
	}
	return id, true
}

// parsePagination reads page and page_size query parameters
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}

// CreateOrganization handles POST /api/organizations
// @Summary Create a new organization
// @Description Create a new organization with the provided details. Any caller may create one; no stake is required.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} service.OrganizationResponse "Successfully created organization"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.Create(caller, &req)
	if err != nil {
		handleServiceError(c, err, "Failed to create organization")
		return
	}

	c.JSON(http.StatusCreated, org)
}

// GetOrganization handles GET /api/organizations/:id
// @Summary Get organization by ID
// @Description Get a specific organization by its ID
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {object} service.OrganizationResponse "Successfully retrieved organization"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	org, err := h.service.GetByID(id)
	if err != nil {
		handleServiceError(c, err, "Failed to get organization")
		return
	}

	c.JSON(http.StatusOK, org)
}

// GetOrganizations handles GET /api/organizations
// @Summary List organizations
// @Description Get all organizations with pagination
// @Tags organizations
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.OrganizationListResponse "Successfully retrieved organizations"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /organizations [get]
func (h *OrganizationHandler) GetOrganizations(c *gin.Context) {
	page, pageSize := parsePagination(c)

	orgs, err := h.service.GetAll(page, pageSize)
	if err != nil {
		handleServiceError(c, err, "Failed to get organizations")
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// GetMembers handles GET /api/organizations/:id/members
// @Summary List organization members
// @Description Get an organization's active members with pagination
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.MemberListResponse "Successfully retrieved members"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /organizations/{id}/members [get]
func (h *OrganizationHandler) GetMembers(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	members, err := h.service.GetMembers(id, page, pageSize)
	if err != nil {
		handleServiceError(c, err, "Failed to get members")
		return
	}

	c.JSON(http.StatusOK, members)
}

// GetMemberStake handles GET /api/organizations/:id/members/:address
// @Summary Get a member's stake
// @Description Get one member's locked stake in an organization. A non-member reads as zero.
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Param address path string true "Member address"
// @Success 200 {object} service.MemberResponse "Successfully retrieved stake"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /organizations/{id}/members/{address} [get]
func (h *OrganizationHandler) GetMemberStake(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	address := c.Param("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Member address is required"})
		return
	}

	member, err := h.service.GetMemberStake(id, address)
	if err != nil {
		handleServiceError(c, err, "Failed to get member stake")
		return
	}

	c.JSON(http.StatusOK, member)
}

// Join handles POST /api/organizations/:id/join
// @Summary Join an organization
// @Description Lock the given stake into the organization. The amount must meet the organization minimum and the asset must match.
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Param request body service.JoinRequest true "Stake to lock"
// @Success 200 {object} service.MemberResponse "Successfully joined"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 409 {object} map[string]interface{} "Already a member or transfer failed"
// @Failure 503 {object} map[string]interface{} "System is paused"
// @Security BearerAuth
// @Router /organizations/{id}/join [post]
func (h *OrganizationHandler) Join(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	member, err := h.service.Join(caller, id, &req)
	if err != nil {
		handleServiceError(c, err, "Failed to join organization")
		return
	}

	c.JSON(http.StatusOK, member)
}

// IncreaseStake handles POST /api/organizations/:id/stake
// @Summary Increase stake
// @Description Add to the caller's locked stake in the organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Param request body service.IncreaseStakeRequest true "Additional stake"
// @Success 200 {object} service.MemberResponse "Successfully increased stake"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Caller is not a member"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 503 {object} map[string]interface{} "System is paused"
// @Security BearerAuth
// @Router /organizations/{id}/stake [post]
func (h *OrganizationHandler) IncreaseStake(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.IncreaseStakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	member, err := h.service.IncreaseStake(caller, id, &req)
	if err != nil {
		handleServiceError(c, err, "Failed to increase stake")
		return
	}

	c.JSON(http.StatusOK, member)
}

// Leave handles POST /api/organizations/:id/leave
// @Summary Leave an organization
// @Description Zero the caller's stake and return it in full. Available even while the system is paused.
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {object} service.LeaveResponse "Successfully left"
// @Failure 403 {object} map[string]interface{} "Caller is not a member"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id}/leave [post]
func (h *OrganizationHandler) Leave(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.service.Leave(caller, id)
	if err != nil {
		handleServiceError(c, err, "Failed to leave organization")
		return
	}

	c.JSON(http.StatusOK, result)
}
