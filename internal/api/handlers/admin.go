package handlers

import (
	"net/http"

	"dao-governance-backend/internal/database/models"
	"dao-governance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles HTTP requests for roles, agents and the pause switch
type AdminHandler struct {
	service service.AccessServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service service.AccessServiceInterface) *AdminHandler {
	return &AdminHandler{service: service}
}

// GrantRole handles POST /api/admin/roles
// @Summary Grant a role
// @Description Grant a role to an address. Admin only; grants are idempotent.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body service.GrantRoleRequest true "Role grant"
// @Success 204 "Role granted"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Security BearerAuth
// @Router /admin/roles [post]
func (h *AdminHandler) GrantRole(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req service.GrantRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.GrantRole(caller, &req); err != nil {
		handleServiceError(c, err, "Failed to grant role")
		return
	}

	c.Status(http.StatusNoContent)
}

// HasRole handles GET /api/roles/:role/:address
// @Summary Check a role
// @Description Report whether an address holds a role
// @Tags admin
// @Accept json
// @Produce json
// @Param role path string true "Role name"
// @Param address path string true "Address"
// @Success 200 {object} map[string]interface{} "Role check result"
// @Failure 400 {object} map[string]interface{} "Invalid role"
// @Router /roles/{role}/{address} [get]
func (h *AdminHandler) HasRole(c *gin.Context) {
	role := models.Role(c.Param("role"))
	if !role.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}
	address := c.Param("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Address is required"})
		return
	}

	has, err := h.service.HasRole(role, address)
	if err != nil {
		handleServiceError(c, err, "Failed to check role")
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": role, "address": address, "granted": has})
}

// Pause handles POST /api/admin/pause
// @Summary Pause the system
// @Description Block fund-moving operations until unpaused. Admin only; leaving an organization stays available.
// @Tags admin
// @Produce json
// @Success 204 "System paused"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Security BearerAuth
// @Router /admin/pause [post]
func (h *AdminHandler) Pause(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	if err := h.service.Pause(caller); err != nil {
		handleServiceError(c, err, "Failed to pause")
		return
	}

	c.Status(http.StatusNoContent)
}

// Unpause handles POST /api/admin/unpause
// @Summary Unpause the system
// @Description Re-enable fund-moving operations. Admin only.
// @Tags admin
// @Produce json
// @Success 204 "System unpaused"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Security BearerAuth
// @Router /admin/unpause [post]
func (h *AdminHandler) Unpause(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	if err := h.service.Unpause(caller); err != nil {
		handleServiceError(c, err, "Failed to unpause")
		return
	}

	c.Status(http.StatusNoContent)
}

// Status handles GET /api/status
// @Summary Get the pause state
// @Description Report whether the global pause switch is on
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Pause state"
// @Router /status [get]
func (h *AdminHandler) Status(c *gin.Context) {
	paused, err := h.service.Paused()
	if err != nil {
		handleServiceError(c, err, "Failed to get status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"paused": paused})
}

// RegisterAgent handles POST /api/admin/agents
// @Summary Register an agent
// @Description Register an agent identity. Admin only; re-registering an active agent fails.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body service.RegisterAgentRequest true "Agent data"
// @Success 201 {object} service.AgentResponse "Successfully registered agent"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Failure 409 {object} map[string]interface{} "Agent already registered and active"
// @Security BearerAuth
// @Router /admin/agents [post]
func (h *AdminHandler) RegisterAgent(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req service.RegisterAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	agent, err := h.service.RegisterAgent(caller, &req)
	if err != nil {
		handleServiceError(c, err, "Failed to register agent")
		return
	}

	c.JSON(http.StatusCreated, agent)
}

// DeactivateAgent handles DELETE /api/admin/agents/:address
// @Summary Deactivate an agent
// @Description Mark an agent inactive. Admin only; the record survives for history.
// @Tags admin
// @Produce json
// @Param address path string true "Agent address"
// @Success 200 {object} service.AgentResponse "Successfully deactivated agent"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Security BearerAuth
// @Router /admin/agents/{address} [delete]
func (h *AdminHandler) DeactivateAgent(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}
	address := c.Param("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Agent address is required"})
		return
	}

	agent, err := h.service.DeactivateAgent(caller, address)
	if err != nil {
		handleServiceError(c, err, "Failed to deactivate agent")
		return
	}

	c.JSON(http.StatusOK, agent)
}

// GetAgent handles GET /api/agents/:address
// @Summary Get agent by address
// @Description Get a registered agent's record
// @Tags admin
// @Produce json
// @Param address path string true "Agent address"
// @Success 200 {object} service.AgentResponse "Successfully retrieved agent"
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Router /agents/{address} [get]
func (h *AdminHandler) GetAgent(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Agent address is required"})
		return
	}

	agent, err := h.service.GetAgent(address)
	if err != nil {
		handleServiceError(c, err, "Failed to get agent")
		return
	}

	c.JSON(http.StatusOK, agent)
}

// GetAgents handles GET /api/agents
// @Summary List agents
// @Description Get all registered agents with pagination
// @Tags admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.AgentListResponse "Successfully retrieved agents"
// @Router /agents [get]
func (h *AdminHandler) GetAgents(c *gin.Context) {
	page, pageSize := parsePagination(c)

	agents, err := h.service.GetAgents(page, pageSize)
	if err != nil {
		handleServiceError(c, err, "Failed to get agents")
		return
	}

	c.JSON(http.StatusOK, agents)
}
