package handlers

import (
	"net/http"

	"dao-governance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TreasuryHandler handles HTTP requests for organization treasuries
type TreasuryHandler struct {
	service service.TreasuryServiceInterface
}

// NewTreasuryHandler creates a new treasury handler
func NewTreasuryHandler(service service.TreasuryServiceInterface) *TreasuryHandler {
	return &TreasuryHandler{service: service}
}

// Fund handles POST /api/organizations/:id/treasury
// @Summary Fund an organization treasury
// @Description Move funds from the caller's escrow account into the organization's treasury pool
// @Tags treasury
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Param request body service.FundTreasuryRequest true "Deposit"
// @Success 200 {object} service.TreasuryBalanceResponse "New pool balance"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 409 {object} map[string]interface{} "Organization inactive or transfer failed"
// @Failure 503 {object} map[string]interface{} "System is paused"
// @Security BearerAuth
// @Router /organizations/{id}/treasury [post]
func (h *TreasuryHandler) Fund(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.FundTreasuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	balance, err := h.service.Fund(caller, id, &req)
	if err != nil {
		handleServiceError(c, err, "Failed to fund treasury")
		return
	}

	c.JSON(http.StatusOK, balance)
}

// GetBalance handles GET /api/organizations/:id/treasury/:asset
// @Summary Get a treasury pool balance
// @Description Get one (organization, asset) treasury balance. An unfunded pool reads as zero.
// @Tags treasury
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Param asset path string true "Asset reference"
// @Success 200 {object} service.TreasuryBalanceResponse "Successfully retrieved balance"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Router /organizations/{id}/treasury/{asset} [get]
func (h *TreasuryHandler) GetBalance(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	asset := c.Param("asset")
	if asset == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Asset is required"})
		return
	}

	balance, err := h.service.GetBalance(id, asset)
	if err != nil {
		handleServiceError(c, err, "Failed to get treasury balance")
		return
	}

	c.JSON(http.StatusOK, balance)
}
