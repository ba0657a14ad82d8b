package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"dao-governance-backend/internal/database/models"
	apperrors "dao-governance-backend/internal/errors"
	"dao-governance-backend/internal/metrics"
	"dao-governance-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// OrganizationService handles the organization registry: creation, listing,
// and the join / increase-stake / leave stake accounting.
type OrganizationService struct {
	repos     *repository.Set
	tx        repository.TxRunner
	mu        *sync.Mutex
	validator *validator.Validate
	now       func() time.Time
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repos *repository.Set, tx repository.TxRunner, mu *sync.Mutex, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repos:     repos,
		tx:        tx,
		mu:        mu,
		validator: validator,
		now:       time.Now,
	}
}

// SetClock replaces the service clock, for tests
func (s *OrganizationService) SetClock(now func() time.Time) {
	s.now = now
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	Description  string `json:"description,omitempty"`
	StakingAsset string `json:"staking_asset" validate:"required,max=64"`
	MinStake     int64  `json:"min_stake" validate:"required,gt=0"`
}

// JoinRequest carries the stake transfer for joining an organization.
// Amount is both the declared stake and the transferred value; Asset must
// match the organization's staking asset.
type JoinRequest struct {
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Asset  string `json:"asset" validate:"required,max=64"`
}

// IncreaseStakeRequest carries the additional stake transfer
type IncreaseStakeRequest struct {
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Asset  string `json:"asset" validate:"required,max=64"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Owner        string    `json:"owner"`
	StakingAsset string    `json:"staking_asset"`
	MinStake     int64     `json:"min_stake"`
	TotalStaked  int64     `json:"total_staked"`
	MemberCount  int       `json:"member_count"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// OrganizationListResponse represents a paginated list of organizations
type OrganizationListResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// MemberResponse represents one member's stake in an organization
type MemberResponse struct {
	OrganizationID int64      `json:"organization_id"`
	Address        string     `json:"address"`
	Stake          int64      `json:"stake"`
	JoinedAt       *time.Time `json:"joined_at,omitempty"`
}

// MemberListResponse represents a paginated list of members
type MemberListResponse struct {
	Members  []MemberResponse `json:"members"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// LeaveResponse reports the stake returned to a leaving member
type LeaveResponse struct {
	OrganizationID int64  `json:"organization_id"`
	Address        string `json:"address"`
	Returned       int64  `json:"returned"`
	Asset          string `json:"asset"`
}

// Create creates a new organization. Any caller may create one; no stake is
// required.
func (s *OrganizationService) Create(caller string, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	org := &models.Organization{
		Name:         req.Name,
		Description:  req.Description,
		Owner:        caller,
		StakingAsset: req.StakingAsset,
		MinStake:     req.MinStake,
		Active:       true,
	}
	err := s.tx(func(r *repository.Set) error {
		return r.Organizations.Create(org)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return s.toResponse(org), nil
}

// GetByID retrieves an organization summary by ID
func (s *OrganizationService) GetByID(id int64) (*OrganizationResponse, error) {
	org, err := s.repos.Organizations.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return s.toResponse(org), nil
}

// GetAll retrieves all organizations with pagination
func (s *OrganizationService) GetAll(page, pageSize int) (*OrganizationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	orgs, total, err := s.repos.Organizations.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i, org := range orgs {
		responses[i] = *s.toResponse(&org)
	}

	return &OrganizationListResponse{
		Organizations: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// GetMembers retrieves an organization's active members with pagination
func (s *OrganizationService) GetMembers(id int64, page, pageSize int) (*MemberListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	if _, err := s.repos.Organizations.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	offset := (page - 1) * pageSize
	memberships, total, err := s.repos.Memberships.GetByOrganization(id, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	members := make([]MemberResponse, len(memberships))
	for i, m := range memberships {
		members[i] = MemberResponse{
			OrganizationID: m.OrganizationID,
			Address:        m.Address,
			Stake:          m.Stake,
			JoinedAt:       m.JoinedAt,
		}
	}

	return &MemberListResponse{
		Members:  members,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetMemberStake retrieves one member's stake in an organization
func (s *OrganizationService) GetMemberStake(id int64, address string) (*MemberResponse, error) {
	if _, err := s.repos.Organizations.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	membership, err := s.repos.Memberships.Get(id, address)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Never a member: report a zero stake rather than an error.
			return &MemberResponse{OrganizationID: id, Address: address}, nil
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &MemberResponse{
		OrganizationID: membership.OrganizationID,
		Address:        membership.Address,
		Stake:          membership.Stake,
		JoinedAt:       membership.JoinedAt,
	}, nil
}

// Join locks the caller's stake into an organization. The transferred asset
// and amount must match the declaration exactly; the escrow debit and the
// stake accounting commit or roll back together.
func (s *OrganizationService) Join(caller string, id int64, req *JoinRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var membership *models.Membership
	err := s.tx(func(r *repository.Set) error {
		if err := ensureNotPaused(r); err != nil {
			return err
		}

		org, err := getOrganization(r, id)
		if err != nil {
			return err
		}
		if !org.Active {
			return apperrors.ErrOrganizationInactive
		}
		if req.Asset != org.StakingAsset {
			return apperrors.ErrAssetMismatch
		}
		if req.Amount < org.MinStake {
			return apperrors.ErrInsufficientStake
		}

		existing, err := r.Memberships.Get(id, caller)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get membership: %w", err)
		}
		if existing.IsMember() {
			return apperrors.ErrAlreadyMember
		}

		if err := debitAccount(r, caller, org.StakingAsset, req.Amount); err != nil {
			return err
		}

		joined := now
		if existing != nil {
			existing.Stake = req.Amount
			existing.JoinedAt = &joined
			if err := r.Memberships.Update(existing); err != nil {
				return fmt.Errorf("failed to update membership: %w", err)
			}
			membership = existing
		} else {
			membership = &models.Membership{
				OrganizationID: id,
				Address:        caller,
				Stake:          req.Amount,
				JoinedAt:       &joined,
			}
			if err := r.Memberships.Create(membership); err != nil {
				return fmt.Errorf("failed to create membership: %w", err)
			}
		}

		total, err := addChecked(org.TotalStaked, req.Amount)
		if err != nil {
			return err
		}
		org.TotalStaked = total
		org.MemberCount++
		return r.Organizations.Update(org)
	})
	if err != nil {
		return nil, err
	}

	metrics.Transfers.WithLabelValues("join").Inc()
	return &MemberResponse{
		OrganizationID: membership.OrganizationID,
		Address:        membership.Address,
		Stake:          membership.Stake,
		JoinedAt:       membership.JoinedAt,
	}, nil
}

// IncreaseStake adds to an existing member's locked stake
func (s *OrganizationService) IncreaseStake(caller string, id int64, req *IncreaseStakeRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var membership *models.Membership
	err := s.tx(func(r *repository.Set) error {
		if err := ensureNotPaused(r); err != nil {
			return err
		}

		org, err := getOrganization(r, id)
		if err != nil {
			return err
		}
		if req.Asset != org.StakingAsset {
			return apperrors.ErrAssetMismatch
		}

		existing, err := r.Memberships.Get(id, caller)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get membership: %w", err)
		}
		if !existing.IsMember() {
			return apperrors.ErrNotAMember
		}

		if err := debitAccount(r, caller, org.StakingAsset, req.Amount); err != nil {
			return err
		}

		stake, err := addChecked(existing.Stake, req.Amount)
		if err != nil {
			return err
		}
		existing.Stake = stake
		if err := r.Memberships.Update(existing); err != nil {
			return fmt.Errorf("failed to update membership: %w", err)
		}
		membership = existing

		total, err := addChecked(org.TotalStaked, req.Amount)
		if err != nil {
			return err
		}
		org.TotalStaked = total
		return r.Organizations.Update(org)
	})
	if err != nil {
		return nil, err
	}

	metrics.Transfers.WithLabelValues("stake").Inc()
	return &MemberResponse{
		OrganizationID: membership.OrganizationID,
		Address:        membership.Address,
		Stake:          membership.Stake,
		JoinedAt:       membership.JoinedAt,
	}, nil
}

// Leave zeroes the caller's stake and returns it in full. The membership row
// survives with zero stake for history. Stake accounting is updated before
// the return transfer is attempted; a failed transfer rolls everything back.
// Leave stays available while the system is paused.
func (s *OrganizationService) Leave(caller string, id int64) (*LeaveResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var response *LeaveResponse
	err := s.tx(func(r *repository.Set) error {
		org, err := getOrganization(r, id)
		if err != nil {
			return err
		}

		membership, err := r.Memberships.Get(id, caller)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get membership: %w", err)
		}
		if !membership.IsMember() {
			return apperrors.ErrNotAMember
		}

		returned := membership.Stake

		// State first, transfer second.
		membership.Stake = 0
		membership.JoinedAt = nil
		if err := r.Memberships.Update(membership); err != nil {
			return fmt.Errorf("failed to update membership: %w", err)
		}

		org.TotalStaked -= returned
		org.MemberCount--
		if err := r.Organizations.Update(org); err != nil {
			return fmt.Errorf("failed to update organization: %w", err)
		}

		if err := creditAccount(r, caller, org.StakingAsset, returned); err != nil {
			return err
		}

		response = &LeaveResponse{
			OrganizationID: id,
			Address:        caller,
			Returned:       returned,
			Asset:          org.StakingAsset,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.Transfers.WithLabelValues("leave").Inc()
	return response, nil
}

// getOrganization loads an organization or reports it missing
func getOrganization(r *repository.Set, id int64) (*models.Organization, error) {
	org, err := r.Organizations.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

// toResponse converts an organization model to response
func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:           org.ID,
		Name:         org.Name,
		Description:  org.Description,
		Owner:        org.Owner,
		StakingAsset: org.StakingAsset,
		MinStake:     org.MinStake,
		TotalStaked:  org.TotalStaked,
		MemberCount:  org.MemberCount,
		Active:       org.Active,
		CreatedAt:    org.CreatedAt,
	}
}
