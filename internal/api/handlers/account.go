package handlers

import (
	"net/http"

	"dao-governance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles HTTP requests for escrow accounts
type AccountHandler struct {
	service service.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(service service.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{service: service}
}

// Deposit handles POST /api/accounts/deposit
// @Summary Deposit into the caller's escrow account
// @Description Credit the caller's (holder, asset) escrow balance. Stake and treasury transfers settle against this balance.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body service.DepositRequest true "Deposit"
// @Success 200 {object} service.AccountResponse "New account balance"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 503 {object} map[string]interface{} "System is paused"
// @Security BearerAuth
// @Router /accounts/deposit [post]
func (h *AccountHandler) Deposit(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req service.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	account, err := h.service.Deposit(caller, &req)
	if err != nil {
		handleServiceError(c, err, "Failed to deposit")
		return
	}

	c.JSON(http.StatusOK, account)
}

// GetBalance handles GET /api/accounts/:address/:asset
// @Summary Get an escrow account balance
// @Description Get one (holder, asset) escrow balance. An unused account reads as zero.
// @Tags accounts
// @Accept json
// @Produce json
// @Param address path string true "Holder address"
// @Param asset path string true "Asset reference"
// @Success 200 {object} service.AccountResponse "Successfully retrieved balance"
// @Router /accounts/{address}/{asset} [get]
func (h *AccountHandler) GetBalance(c *gin.Context) {
	address := c.Param("address")
	asset := c.Param("asset")
	if address == "" || asset == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Address and asset are required"})
		return
	}

	account, err := h.service.GetBalance(address, asset)
	if err != nil {
		handleServiceError(c, err, "Failed to get account balance")
		return
	}

	c.JSON(http.StatusOK, account)
}
