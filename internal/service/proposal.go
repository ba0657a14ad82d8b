package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"dao-governance-backend/internal/config"
	"dao-governance-backend/internal/database/models"
	apperrors "dao-governance-backend/internal/errors"
	"dao-governance-backend/internal/metrics"
	"dao-governance-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ProposalService owns the proposal lifecycle: creation, agent-gated
// admission, weighted voting, quorum-gated finalization, and execution.
type ProposalService struct {
	repos     *repository.Set
	tx        repository.TxRunner
	mu        *sync.Mutex
	validator *validator.Validate
	params    *config.Governance
	now       func() time.Time
}

// NewProposalService creates a new proposal service
func NewProposalService(repos *repository.Set, tx repository.TxRunner, mu *sync.Mutex, validator *validator.Validate, params *config.Governance) *ProposalService {
	return &ProposalService{
		repos:     repos,
		tx:        tx,
		mu:        mu,
		validator: validator,
		params:    params,
		now:       time.Now,
	}
}

// SetClock replaces the service clock, for tests
func (s *ProposalService) SetClock(now func() time.Time) {
	s.now = now
}

// CreateProposalRequest represents the request to create a proposal
type CreateProposalRequest struct {
	OrganizationID int64  `json:"organization_id" validate:"required,gt=0"`
	Title          string `json:"title" validate:"required,min=1,max=200"`
	Description    string `json:"description,omitempty"`
	Amount         int64  `json:"amount" validate:"required,gt=0"`
	Asset          string `json:"asset" validate:"required,max=64"`
	Recipient      string `json:"recipient" validate:"required"`
}

// SubmitAnalysisRequest carries a proposal agent's admission verdict
type SubmitAnalysisRequest struct {
	AnalysisRef     string `json:"analysis_ref" validate:"required,max=200"`
	RiskLevel       int    `json:"risk_level" validate:"required,min=1,max=3"`
	Confidence      int    `json:"confidence" validate:"min=0,max=100"`
	RecommendVoting bool   `json:"recommend_voting"`
}

// SubmitSentimentRequest carries a voter agent's sentiment payload, stored
// verbatim
type SubmitSentimentRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// SubmitExecutionCheckRequest carries an execution agent's approval flag
type SubmitExecutionCheckRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

// VoteRequest represents a member's ballot
type VoteRequest struct {
	Choice models.VoteChoice `json:"choice" validate:"required"`
}

// ProposalResponse represents the response for proposal operations
type ProposalResponse struct {
	ID                int64                 `json:"id"`
	OrganizationID    int64                 `json:"organization_id"`
	Title             string                `json:"title"`
	Description       string                `json:"description"`
	Proposer          string                `json:"proposer"`
	Amount            int64                 `json:"amount"`
	Asset             string                `json:"asset"`
	Recipient         string                `json:"recipient"`
	Status            models.ProposalStatus `json:"status"`
	CreatedAt         time.Time             `json:"created_at"`
	VotingStart       *time.Time            `json:"voting_start,omitempty"`
	VotingEnd         *time.Time            `json:"voting_end,omitempty"`
	ExecutedAt        *time.Time            `json:"executed_at,omitempty"`
	ForVotes          int64                 `json:"for_votes"`
	AgainstVotes      int64                 `json:"against_votes"`
	AbstainVotes      int64                 `json:"abstain_votes"`
	ExecutionApproved bool                  `json:"execution_approved"`
}

// ProposalListResponse represents a paginated list of proposals
type ProposalListResponse struct {
	Proposals []ProposalResponse `json:"proposals"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// VoteResponse represents one recorded ballot
type VoteResponse struct {
	ProposalID int64             `json:"proposal_id"`
	Voter      string            `json:"voter"`
	Choice     models.VoteChoice `json:"choice"`
	Weight     int64             `json:"weight"`
	CastAt     time.Time         `json:"cast_at"`
	// Finalized reports whether this ballot tipped the proposal past its
	// deadline and triggered finalization in the same call.
	Finalized bool                  `json:"finalized"`
	Status    models.ProposalStatus `json:"status"`
}

// VotingSnapshotResponse is the read-only tally projection
type VotingSnapshotResponse struct {
	ProposalID   int64                 `json:"proposal_id"`
	Status       models.ProposalStatus `json:"status"`
	ForVotes     int64                 `json:"for_votes"`
	AgainstVotes int64                 `json:"against_votes"`
	AbstainVotes int64                 `json:"abstain_votes"`
	TotalVotes   int64                 `json:"total_votes"`
	VotingStart  *time.Time            `json:"voting_start,omitempty"`
	VotingEnd    *time.Time            `json:"voting_end,omitempty"`
}

// AnalysisResponse is the read-only agent verdict projection
type AnalysisResponse struct {
	ProposalID        int64  `json:"proposal_id"`
	AnalysisRef       string `json:"analysis_ref"`
	RiskLevel         int    `json:"risk_level"`
	Confidence        int    `json:"confidence"`
	Sentiment         string `json:"sentiment,omitempty"`
	ExecutionApproved bool   `json:"execution_approved"`
}

// Create creates a new pending proposal. The caller must hold nonzero stake
// in the owning organization.
func (s *ProposalService) Create(caller string, req *CreateProposalRequest) (*ProposalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !validAddress(req.Recipient) {
		return nil, apperrors.NewValidationError("recipient", "recipient must be a valid address")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var proposal *models.Proposal
	err := s.tx(func(r *repository.Set) error {
		if _, err := getOrganization(r, req.OrganizationID); err != nil {
			return err
		}

		membership, err := r.Memberships.Get(req.OrganizationID, caller)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get membership: %w", err)
		}
		if !membership.IsMember() {
			return apperrors.ErrNotAMember
		}

		proposal = &models.Proposal{
			OrganizationID: req.OrganizationID,
			Title:          req.Title,
			Description:    req.Description,
			Proposer:       caller,
			Amount:         req.Amount,
			Asset:          req.Asset,
			Recipient:      req.Recipient,
			Status:         models.ProposalStatusPending,
		}
		return r.Proposals.Create(proposal)
	})
	if err != nil {
		return nil, err
	}

	metrics.ProposalsCreated.Inc()
	return s.toResponse(proposal), nil
}

// GetByID retrieves a proposal summary by ID
func (s *ProposalService) GetByID(id int64) (*ProposalResponse, error) {
	proposal, err := getProposal(s.repos, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(proposal), nil
}

// GetAll retrieves proposals with pagination, optionally scoped to one
// organization
func (s *ProposalService) GetAll(organizationID *int64, page, pageSize int) (*ProposalListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var (
		proposals []models.Proposal
		total     int64
		err       error
	)
	if organizationID != nil {
		proposals, total, err = s.repos.Proposals.GetByOrganization(*organizationID, pageSize, offset)
	} else {
		proposals, total, err = s.repos.Proposals.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get proposals: %w", err)
	}

	responses := make([]ProposalResponse, len(proposals))
	for i, p := range proposals {
		responses[i] = *s.toResponse(&p)
	}

	return &ProposalListResponse{
		Proposals: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// SubmitAnalysis records a proposal agent's verdict on a pending proposal.
// A recommendation with sufficient confidence opens the voting window;
// anything else cancels the proposal. This is the sole admission gate.
func (s *ProposalService) SubmitAnalysis(caller string, id int64, req *SubmitAnalysisRequest) (*ProposalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var proposal *models.Proposal
	err := s.tx(func(r *repository.Set) error {
		if err := requireRole(r, models.RoleProposalAgent, caller); err != nil {
			return err
		}

		var err error
		proposal, err = getProposal(r, id)
		if err != nil {
			return err
		}
		if proposal.Status != models.ProposalStatusPending {
			return apperrors.ErrProposalNotPending
		}

		proposal.AnalysisRef = req.AnalysisRef
		proposal.RiskLevel = req.RiskLevel
		proposal.Confidence = req.Confidence

		if req.RecommendVoting && req.Confidence >= s.params.ConfidenceThreshold {
			start := now
			end := now.Add(s.params.VotingPeriod)
			proposal.Status = models.ProposalStatusActive
			proposal.VotingStart = &start
			proposal.VotingEnd = &end
		} else {
			proposal.Status = models.ProposalStatusCancelled
		}

		if err := r.Proposals.Update(proposal); err != nil {
			return fmt.Errorf("failed to update proposal: %w", err)
		}
		return touchAgent(r, caller, now)
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(proposal), nil
}

// SubmitSentiment stores a voter agent's sentiment payload verbatim. Allowed
// in any proposal state.
func (s *ProposalService) SubmitSentiment(caller string, id int64, req *SubmitSentimentRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	return s.tx(func(r *repository.Set) error {
		if err := requireRole(r, models.RoleVoterAgent, caller); err != nil {
			return err
		}

		proposal, err := getProposal(r, id)
		if err != nil {
			return err
		}

		proposal.Sentiment = req.Payload
		if err := r.Proposals.Update(proposal); err != nil {
			return fmt.Errorf("failed to update proposal: %w", err)
		}
		return touchAgent(r, caller, now)
	})
}

// SubmitExecutionCheck records an execution agent's approval flag on an
// approved proposal. Voting approval and execution approval are independent
// gates; both are required before Execute moves funds.
func (s *ProposalService) SubmitExecutionCheck(caller string, id int64, req *SubmitExecutionCheckRequest) (*ProposalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var proposal *models.Proposal
	err := s.tx(func(r *repository.Set) error {
		if err := requireRole(r, models.RoleExecutionAgent, caller); err != nil {
			return err
		}

		var err error
		proposal, err = getProposal(r, id)
		if err != nil {
			return err
		}
		if proposal.Status != models.ProposalStatusApproved {
			return apperrors.ErrProposalNotApproved
		}

		proposal.ExecutionApproved = *req.Approved
		if err := r.Proposals.Update(proposal); err != nil {
			return fmt.Errorf("failed to update proposal: %w", err)
		}
		return touchAgent(r, caller, now)
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(proposal), nil
}

// Vote casts a stake-weighted ballot. The weight is the caller's stake at
// cast time and never changes afterwards. If the deadline has already passed
// by the time the tally lands, the proposal is finalized in the same call.
func (s *ProposalService) Vote(caller string, id int64, req *VoteRequest) (*VoteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !req.Choice.IsValid() {
		return nil, apperrors.NewValidationError("choice", "choice must be for, against or abstain")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var (
		vote      *models.Vote
		finalized bool
		status    models.ProposalStatus
	)
	err := s.tx(func(r *repository.Set) error {
		if err := ensureNotPaused(r); err != nil {
			return err
		}

		proposal, err := getProposal(r, id)
		if err != nil {
			return err
		}
		if proposal.Status != models.ProposalStatusActive {
			return apperrors.ErrProposalNotActive
		}
		if proposal.VotingEnd == nil || now.After(*proposal.VotingEnd) {
			return apperrors.ErrVotingClosed
		}

		if _, err := r.Votes.Get(id, caller); err == nil {
			return apperrors.ErrDuplicateVote
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get vote: %w", err)
		}

		membership, err := r.Memberships.Get(proposal.OrganizationID, caller)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get membership: %w", err)
		}
		if !membership.IsMember() {
			return apperrors.ErrNotAMember
		}
		if membership.JoinedAt == nil || now.Sub(*membership.JoinedAt) < s.params.MinStakePeriod {
			return apperrors.ErrStakeTooRecent
		}

		vote = &models.Vote{
			ProposalID: id,
			Voter:      caller,
			Choice:     req.Choice,
			Weight:     membership.Stake,
			CastAt:     now,
		}
		if err := r.Votes.Create(vote); err != nil {
			return fmt.Errorf("failed to create vote: %w", err)
		}

		switch req.Choice {
		case models.VoteChoiceFor:
			proposal.ForVotes, err = addChecked(proposal.ForVotes, membership.Stake)
		case models.VoteChoiceAgainst:
			proposal.AgainstVotes, err = addChecked(proposal.AgainstVotes, membership.Stake)
		case models.VoteChoiceAbstain:
			proposal.AbstainVotes, err = addChecked(proposal.AbstainVotes, membership.Stake)
		}
		if err != nil {
			return err
		}

		// The deadline may land between the entry check and the tally; the
		// ballot that crosses it settles the proposal in the same operation.
		if !now.Before(*proposal.VotingEnd) {
			org, err := getOrganization(r, proposal.OrganizationID)
			if err != nil {
				return err
			}
			s.settle(proposal, org)
			finalized = true
		}
		status = proposal.Status

		return r.Proposals.Update(proposal)
	})
	if err != nil {
		return nil, err
	}

	metrics.VotesCast.WithLabelValues(string(req.Choice)).Inc()
	return &VoteResponse{
		ProposalID: vote.ProposalID,
		Voter:      vote.Voter,
		Choice:     vote.Choice,
		Weight:     vote.Weight,
		CastAt:     vote.CastAt,
		Finalized:  finalized,
		Status:     status,
	}, nil
}

// Finalize settles an active proposal once its voting window has closed.
// Callable by anyone; a proposal whose deadline passes with no further votes
// stays active until somebody calls this.
func (s *ProposalService) Finalize(caller string, id int64) (*ProposalResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var proposal *models.Proposal
	err := s.tx(func(r *repository.Set) error {
		var err error
		proposal, err = getProposal(r, id)
		if err != nil {
			return err
		}
		if proposal.Status != models.ProposalStatusActive {
			return apperrors.ErrProposalNotActive
		}
		if proposal.VotingEnd == nil || !now.After(*proposal.VotingEnd) {
			return apperrors.ErrVotingStillOpen
		}

		org, err := getOrganization(r, proposal.OrganizationID)
		if err != nil {
			return err
		}
		s.settle(proposal, org)

		return r.Proposals.Update(proposal)
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(proposal), nil
}

// Execute transfers the requested amount to the recipient and marks the
// proposal executed. The treasury debit, the recipient credit and the status
// change commit together; a failed transfer leaves everything as it was and
// the caller may retry.
func (s *ProposalService) Execute(caller string, id int64) (*ProposalResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var proposal *models.Proposal
	err := s.tx(func(r *repository.Set) error {
		if err := ensureNotPaused(r); err != nil {
			return err
		}
		if err := requireRole(r, models.RoleExecutionAgent, caller); err != nil {
			return err
		}

		var err error
		proposal, err = getProposal(r, id)
		if err != nil {
			return err
		}
		if proposal.Status != models.ProposalStatusApproved {
			return apperrors.ErrProposalNotApproved
		}
		if !proposal.ExecutionApproved {
			return apperrors.ErrExecutionNotApproved
		}

		balance, err := r.Treasury.Get(proposal.OrganizationID, proposal.Asset)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get treasury balance: %w", err)
		}
		if balance == nil || balance.Balance < proposal.Amount {
			return apperrors.ErrInsufficientTreasury
		}

		// Effects before the outbound transfer.
		balance.Balance -= proposal.Amount
		if err := r.Treasury.Update(balance); err != nil {
			return fmt.Errorf("failed to update treasury balance: %w", err)
		}
		executed := now
		proposal.Status = models.ProposalStatusExecuted
		proposal.ExecutedAt = &executed
		if err := r.Proposals.Update(proposal); err != nil {
			return fmt.Errorf("failed to update proposal: %w", err)
		}

		if err := creditAccount(r, proposal.Recipient, proposal.Asset, proposal.Amount); err != nil {
			return err
		}
		return touchAgent(r, caller, now)
	})
	if err != nil {
		return nil, err
	}

	metrics.ProposalsExecuted.Inc()
	metrics.Transfers.WithLabelValues("execute").Inc()
	return s.toResponse(proposal), nil
}

// GetVotingSnapshot retrieves the tally projection for a proposal
func (s *ProposalService) GetVotingSnapshot(id int64) (*VotingSnapshotResponse, error) {
	proposal, err := getProposal(s.repos, id)
	if err != nil {
		return nil, err
	}

	return &VotingSnapshotResponse{
		ProposalID:   proposal.ID,
		Status:       proposal.Status,
		ForVotes:     proposal.ForVotes,
		AgainstVotes: proposal.AgainstVotes,
		AbstainVotes: proposal.AbstainVotes,
		TotalVotes:   proposal.TotalVotes(),
		VotingStart:  proposal.VotingStart,
		VotingEnd:    proposal.VotingEnd,
	}, nil
}

// GetAnalysis retrieves the agent verdict projection for a proposal
func (s *ProposalService) GetAnalysis(id int64) (*AnalysisResponse, error) {
	proposal, err := getProposal(s.repos, id)
	if err != nil {
		return nil, err
	}

	return &AnalysisResponse{
		ProposalID:        proposal.ID,
		AnalysisRef:       proposal.AnalysisRef,
		RiskLevel:         proposal.RiskLevel,
		Confidence:        proposal.Confidence,
		Sentiment:         proposal.Sentiment,
		ExecutionApproved: proposal.ExecutionApproved,
	}, nil
}

// GetVote retrieves one voter's recorded ballot on a proposal
func (s *ProposalService) GetVote(id int64, voter string) (*VoteResponse, error) {
	proposal, err := getProposal(s.repos, id)
	if err != nil {
		return nil, err
	}

	vote, err := s.repos.Votes.Get(id, voter)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVoteNotFound
		}
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}

	return &VoteResponse{
		ProposalID: vote.ProposalID,
		Voter:      vote.Voter,
		Choice:     vote.Choice,
		Weight:     vote.Weight,
		CastAt:     vote.CastAt,
		Status:     proposal.Status,
	}, nil
}

// settle applies the quorum rule to an active proposal. Quorum is computed
// from the organization's current total stake: max(1, totalStaked/divisor),
// and a fully unstaked organization always rejects. Abstain ballots count
// toward quorum but not toward the for/against comparison; ties reject.
func (s *ProposalService) settle(proposal *models.Proposal, org *models.Organization) {
	if org.TotalStaked <= 0 {
		proposal.Status = models.ProposalStatusRejected
		metrics.ProposalsFinalized.WithLabelValues("rejected").Inc()
		return
	}

	quorum := org.TotalStaked / s.params.QuorumDivisor
	if quorum < 1 {
		quorum = 1
	}

	if proposal.TotalVotes() >= quorum && proposal.ForVotes > proposal.AgainstVotes {
		proposal.Status = models.ProposalStatusApproved
		metrics.ProposalsFinalized.WithLabelValues("approved").Inc()
	} else {
		proposal.Status = models.ProposalStatusRejected
		metrics.ProposalsFinalized.WithLabelValues("rejected").Inc()
	}
}

// getProposal loads a proposal or reports it missing
func getProposal(r *repository.Set, id int64) (*models.Proposal, error) {
	proposal, err := r.Proposals.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProposalNotFound
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	return proposal, nil
}

// touchAgent bumps a registered agent's last-activity timestamp. Role
// holders without an agent record are left alone.
func touchAgent(r *repository.Set, address string, now time.Time) error {
	agent, err := r.Agents.GetByAddress(address)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get agent: %w", err)
	}
	agent.LastActiveAt = &now
	return r.Agents.Update(agent)
}

// toResponse converts a proposal model to response
func (s *ProposalService) toResponse(p *models.Proposal) *ProposalResponse {
	return &ProposalResponse{
		ID:                p.ID,
		OrganizationID:    p.OrganizationID,
		Title:             p.Title,
		Description:       p.Description,
		Proposer:          p.Proposer,
		Amount:            p.Amount,
		Asset:             p.Asset,
		Recipient:         p.Recipient,
		Status:            p.Status,
		CreatedAt:         p.CreatedAt,
		VotingStart:       p.VotingStart,
		VotingEnd:         p.VotingEnd,
		ExecutedAt:        p.ExecutedAt,
		ForVotes:          p.ForVotes,
		AgainstVotes:      p.AgainstVotes,
		AbstainVotes:      p.AbstainVotes,
		ExecutionApproved: p.ExecutionApproved,
	}
}
