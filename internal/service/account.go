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

// AccountService handles the escrow accounts that stand in for external
// wallets: deposits credit an account, and every stake or treasury transfer
// settles against it.
type AccountService struct {
	repos     *repository.Set
	tx        repository.TxRunner
	mu        *sync.Mutex
	validator *validator.Validate
}

// NewAccountService creates a new account service
func NewAccountService(repos *repository.Set, tx repository.TxRunner, mu *sync.Mutex, validator *validator.Validate) *AccountService {
	return &AccountService{
		repos:     repos,
		tx:        tx,
		mu:        mu,
		validator: validator,
	}
}

// DepositRequest carries an inbound deposit to the caller's account
type DepositRequest struct {
	Asset  string `json:"asset" validate:"required,max=64"`
	Amount int64  `json:"amount" validate:"required,gt=0"`
}

// AccountResponse represents one (holder, asset) escrow balance
type AccountResponse struct {
	Holder  string `json:"holder"`
	Asset   string `json:"asset"`
	Balance int64  `json:"balance"`
}

// Deposit credits the caller's escrow account
func (s *AccountService) Deposit(caller string, req *DepositRequest) (*AccountResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var response *AccountResponse
	err := s.tx(func(r *repository.Set) error {
		if err := ensureNotPaused(r); err != nil {
			return err
		}

		if err := creditAccount(r, caller, req.Asset, req.Amount); err != nil {
			return err
		}

		account, err := r.Accounts.Get(caller, req.Asset)
		if err != nil {
			return fmt.Errorf("failed to get account: %w", err)
		}
		response = &AccountResponse{
			Holder:  account.Holder,
			Asset:   account.Asset,
			Balance: account.Balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.Transfers.WithLabelValues("deposit").Inc()
	return response, nil
}

// GetBalance retrieves one (holder, asset) escrow balance. An account that
// has never been used reads as zero.
func (s *AccountService) GetBalance(holder, asset string) (*AccountResponse, error) {
	account, err := s.repos.Accounts.Get(holder, asset)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &AccountResponse{Holder: holder, Asset: asset}, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &AccountResponse{
		Holder:  account.Holder,
		Asset:   account.Asset,
		Balance: account.Balance,
	}, nil
}
