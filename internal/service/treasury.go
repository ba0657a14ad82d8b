package service

import (
	"errors"
	"fmt"
	"sync"

	apperrors "dao-governance-backend/internal/errors"
	"dao-governance-backend/internal/metrics"
	"dao-governance-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TreasuryService handles per-organization fund pools. Treasury money is
// strictly segregated from member stakes; it only leaves through executed
// proposals.
type TreasuryService struct {
	repos     *repository.Set
	tx        repository.TxRunner
	mu        *sync.Mutex
	validator *validator.Validate
}

// NewTreasuryService creates a new treasury service
func NewTreasuryService(repos *repository.Set, tx repository.TxRunner, mu *sync.Mutex, validator *validator.Validate) *TreasuryService {
	return &TreasuryService{
		repos:     repos,
		tx:        tx,
		mu:        mu,
		validator: validator,
	}
}

// FundTreasuryRequest carries a deposit into an organization's treasury
type FundTreasuryRequest struct {
	Asset  string `json:"asset" validate:"required,max=64"`
	Amount int64  `json:"amount" validate:"required,gt=0"`
}

// TreasuryBalanceResponse represents one (organization, asset) pool
type TreasuryBalanceResponse struct {
	OrganizationID int64  `json:"organization_id"`
	Asset          string `json:"asset"`
	Balance        int64  `json:"balance"`
}

// Fund moves amount of asset from the caller's escrow account into the
// organization's treasury pool
func (s *TreasuryService) Fund(caller string, organizationID int64, req *FundTreasuryRequest) (*TreasuryBalanceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var response *TreasuryBalanceResponse
	err := s.tx(func(r *repository.Set) error {
		if err := ensureNotPaused(r); err != nil {
			return err
		}

		org, err := getOrganization(r, organizationID)
		if err != nil {
			return err
		}
		if !org.Active {
			return apperrors.ErrOrganizationInactive
		}

		if err := debitAccount(r, caller, req.Asset, req.Amount); err != nil {
			return err
		}
		if err := creditTreasury(r, organizationID, req.Asset, req.Amount); err != nil {
			return err
		}

		balance, err := r.Treasury.Get(organizationID, req.Asset)
		if err != nil {
			return fmt.Errorf("failed to get treasury balance: %w", err)
		}
		response = &TreasuryBalanceResponse{
			OrganizationID: organizationID,
			Asset:          req.Asset,
			Balance:        balance.Balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.Transfers.WithLabelValues("fund").Inc()
	return response, nil
}

// GetBalance retrieves one (organization, asset) treasury pool. An unfunded
// pool reads as zero.
func (s *TreasuryService) GetBalance(organizationID int64, asset string) (*TreasuryBalanceResponse, error) {
	if _, err := getOrganization(s.repos, organizationID); err != nil {
		return nil, err
	}

	balance, err := s.repos.Treasury.Get(organizationID, asset)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &TreasuryBalanceResponse{OrganizationID: organizationID, Asset: asset}, nil
		}
		return nil, fmt.Errorf("failed to get treasury balance: %w", err)
	}

	return &TreasuryBalanceResponse{
		OrganizationID: balance.OrganizationID,
		Asset:          balance.Asset,
		Balance:        balance.Balance,
	}, nil
}
