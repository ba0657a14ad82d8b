package handlers

import (
	"net/http"
	"strconv"

	"dao-governance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProposalHandler handles HTTP requests for proposals
type ProposalHandler struct {
	service service.ProposalServiceInterface
}

// NewProposalHandler creates a new proposal handler
func NewProposalHandler(service service.ProposalServiceInterface) *ProposalHandler {
	return &ProposalHandler{service: service}
}

// CreateProposal handles POST /api/proposals
// @Summary Create a new proposal
// @Description Create a pending funding proposal. The caller must hold nonzero stake in the owning organization.
// @Tags proposals
// @Accept json
// @Produce json
// @Param proposal body service.CreateProposalRequest true "Proposal data"
// @Success 201 {object} service.ProposalResponse "Successfully created proposal"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Caller is not a member"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /proposals [post]
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req service.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	proposal, err := h.service.Create(caller, &req)
	if err != nil {
		handleServiceError(c, err, "Failed to create proposal")
		return
	}

	c.JSON(http.StatusCreated, proposal)
}

// GetProposal handles GET /api/proposals/:id
// @Summary Get proposal by ID
// @Description Get a specific proposal by its ID
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 200 {object} service.ProposalResponse "Successfully retrieved proposal"
// @Failure 404 {object} map[string]interface{} "Proposal not found"
// @Router /proposals/{id} [get]
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	proposal, err := h.service.GetByID(id)
	if err != nil {
		handleServiceError(c, err, "Failed to get proposal")
		return
	}

	c.JSON(http.StatusOK, proposal)
}

// GetProposals handles GET /api/proposals
// @Summary List proposals
// @Description Get proposals with pagination, optionally filtered by organization
// @Tags proposals
// @Accept json
// @Produce json
// @Param organization_id query int false "Filter by organization ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ProposalListResponse "Successfully retrieved proposals"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /proposals [get]
func (h *ProposalHandler) GetProposals(c *gin.Context) {
	page, pageSize := parsePagination(c)

	var organizationID *int64
	if raw := c.Query("organization_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization_id"})
			return
		}
		organizationID = &id
	}

	proposals, err := h.service.GetAll(organizationID, page, pageSize)
	if err != nil {
		handleServiceError(c, err, "Failed to get proposals")
		return
	}

	c.JSON(http.StatusOK, proposals)
}

// SubmitAnalysis handles POST /api/proposals/:id/analysis
// @Summary Submit agent analysis
// @Description Record a proposal agent's admission verdict on a pending proposal. A positive recommendation with sufficient confidence opens voting; anything else cancels.
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Param analysis body service.SubmitAnalysisRequest true "Analysis verdict"
// @Success 200 {object} service.ProposalResponse "Verdict recorded"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Caller lacks the proposal agent role"
// @Failure 404 {object} map[string]interface{} "Proposal not found"
// @Failure 409 {object} map[string]interface{} "Proposal is not pending"
// @Security BearerAuth
// @Router /proposals/{id}/analysis [post]
func (h *ProposalHandler) SubmitAnalysis(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.SubmitAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	proposal, err := h.service.SubmitAnalysis(caller, id, &req)
	if err != nil {
		handleServiceError(c, err, "Failed to submit analysis")
		return
	}

	c.JSON(http.StatusOK, proposal)
}

// SubmitSentiment handles POST /api/proposals/:id/sentiment
// @Summary Submit agent sentiment
// @Description Store a voter agent's sentiment payload verbatim, in any proposal state
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Param sentiment body service.SubmitSentimentRequest true "Sentiment payload"
// @Success 204 "Payload stored"
// @Failure 403 {object} map[string]interface{} "Caller lacks the voter agent role"
// @Failure 404 {object} map[string]interface{} "Proposal not found"
// @Security BearerAuth
// @Router /proposals/{id}/sentiment [post]
func (h *ProposalHandler) SubmitSentiment(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.SubmitSentimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.SubmitSentiment(caller, id, &req); err != nil {
		handleServiceError(c, err, "Failed to submit sentiment")
		return
	}

	c.Status(http.StatusNoContent)
}

// SubmitExecutionCheck handles POST /api/proposals/:id/execution-check
// @Summary Submit execution approval
// @Description Record an execution agent's approval flag on an approved proposal
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Param check body service.SubmitExecutionCheckRequest true "Approval flag"
// @Success 200 {object} service.ProposalResponse "Flag recorded"
// @Failure 403 {object} map[string]interface{} "Caller lacks the execution agent role"
// @Failure 404 {object} map[string]interface{} "Proposal not found"
// @Failure 409 {object} map[string]interface{} "Proposal is not approved"
// @Security BearerAuth
// @Router /proposals/{id}/execution-check [post]
func (h *ProposalHandler) SubmitExecutionCheck(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.SubmitExecutionCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	proposal, err := h.service.SubmitExecutionCheck(caller, id, &req)
	if err != nil {
		handleServiceError(c, err, "Failed to submit execution check")
		return
	}

	c.JSON(http.StatusOK, proposal)
}

// Vote handles POST /api/proposals/:id/vote
// @Summary Cast a vote
// @Description Cast a stake-weighted ballot on an active proposal during its voting window
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Param vote body service.VoteRequest true "Ballot choice"
// @Success 200 {object} service.VoteResponse "Ballot recorded"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Caller is not a member"
// @Failure 404 {object} map[string]interface{} "Proposal not found"
// @Failure 409 {object} map[string]interface{} "Duplicate vote, stake too recent, or voting closed"
// @Failure 503 {object} map[string]interface{} "System is paused"
// @Security BearerAuth
// @Router /proposals/{id}/vote [post]
func (h *ProposalHandler) Vote(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	vote, err := h.service.Vote(caller, id, &req)
	if err != nil {
		handleServiceError(c, err, "Failed to cast vote")
		return
	}

	c.JSON(http.StatusOK, vote)
}

// Finalize handles POST /api/proposals/:id/finalize
// @Summary Finalize a proposal
// @Description Settle an active proposal once its voting window has closed. Callable by anyone.
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 200 {object} service.ProposalResponse "Proposal settled"
// @Failure 404 {object} map[string]interface{} "Proposal not found"
// @Failure 409 {object} map[string]interface{} "Proposal is not active or voting is still open"
// @Security BearerAuth
// @Router /proposals/{id}/finalize [post]
func (h *ProposalHandler) Finalize(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	proposal, err := h.service.Finalize(caller, id)
	if err != nil {
		handleServiceError(c, err, "Failed to finalize proposal")
		return
	}

	c.JSON(http.StatusOK, proposal)
}

// Execute handles POST /api/proposals/:id/execute
// @Summary Execute a proposal
// @Description Transfer the requested amount from the organization treasury to the recipient and mark the proposal executed
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 200 {object} service.ProposalResponse "Proposal executed"
// @Failure 403 {object} map[string]interface{} "Caller lacks the execution agent role"
// @Failure 404 {object} map[string]interface{} "Proposal not found"
// @Failure 409 {object} map[string]interface{} "Proposal not approved, execution not approved, or insufficient treasury"
// @Failure 503 {object} map[string]interface{} "System is paused"
// @Security BearerAuth
// @Router /proposals/{id}/execute [post]
func (h *ProposalHandler) Execute(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	proposal, err := h.service.Execute(caller, id)
	if err != nil {
		handleServiceError(c, err, "Failed to execute proposal")
		return
	}

	c.JSON(http.StatusOK, proposal)
}

// GetVotingSnapshot handles GET /api/proposals/:id/votes
// @Summary Get voting snapshot
// @Description Get the current tallies and voting deadline for a proposal
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 200 {object} service.VotingSnapshotResponse "Successfully retrieved snapshot"
// @Failure 404 {object} map[string]interface{} "Proposal not found"
// @Router /proposals/{id}/votes [get]
func (h *ProposalHandler) GetVotingSnapshot(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	snapshot, err := h.service.GetVotingSnapshot(id)
	if err != nil {
		handleServiceError(c, err, "Failed to get voting snapshot")
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// GetAnalysis handles GET /api/proposals/:id/analysis
// @Summary Get analysis snapshot
// @Description Get the agent-submitted analysis fields for a proposal
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 200 {object} service.AnalysisResponse "Successfully retrieved analysis"
// @Failure 404 {object} map[string]interface{} "Proposal not found"
// @Router /proposals/{id}/analysis [get]
func (h *ProposalHandler) GetAnalysis(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	analysis, err := h.service.GetAnalysis(id)
	if err != nil {
		handleServiceError(c, err, "Failed to get analysis")
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// GetVote handles GET /api/proposals/:id/votes/:address
// @Summary Get one voter's ballot
// @Description Get the recorded choice and weight of one voter on a proposal
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Param address path string true "Voter address"
// @Success 200 {object} service.VoteResponse "Successfully retrieved vote"
// @Failure 404 {object} map[string]interface{} "Proposal or vote not found"
// @Router /proposals/{id}/votes/{address} [get]
func (h *ProposalHandler) GetVote(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	address := c.Param("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Voter address is required"})
		return
	}

	vote, err := h.service.GetVote(id, address)
	if err != nil {
		handleServiceError(c, err, "Failed to get vote")
		return
	}

	c.JSON(http.StatusOK, vote)
}
