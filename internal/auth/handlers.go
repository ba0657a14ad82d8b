package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Token handles POST /api/auth/token
// @Summary Mint a bearer token for an address
// @Description Issues a JWT carrying the given ledger address. The token only asserts identity; role checks happen per operation.
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Address to mint a token for"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Failed to sign token"
// @Router /api/auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	response, err := h.service.GenerateJWT(req.Address)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Validate handles GET /api/auth/validate
// @Summary Validate the presented bearer token
// @Description Returns the claims of a valid token
// @Tags authentication
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Router /api/auth/validate [get]
func (h *AuthHandler) Validate(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "claims": claims})
}
