package service

import (
	"errors"
	"math"
	"strings"

	"dao-governance-backend/internal/database/models"
	apperrors "dao-governance-backend/internal/errors"
	"dao-governance-backend/internal/repository"

	"gorm.io/gorm"
)

// addChecked adds two non-negative amounts, failing instead of wrapping
func addChecked(a, b int64) (int64, error) {
	if b > math.MaxInt64-a {
		return 0, apperrors.ErrAmountOverflow
	}
	return a + b, nil
}

// validAddress reports whether s is a usable identity: non-empty and not the
// zero address
func validAddress(s string) bool {
	if s == "" {
		return false
	}
	hex := strings.TrimPrefix(strings.ToLower(s), "0x")
	if hex == "" {
		return false
	}
	for _, c := range hex {
		if c != '0' {
			return true
		}
	}
	return false
}

// debitAccount withdraws amount of asset from holder's escrow account.
// A missing account or an insufficient balance is a failed inbound transfer.
func debitAccount(r *repository.Set, holder, asset string, amount int64) error {
	account, err := r.Accounts.Get(holder, asset)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTransferFailed
		}
		return err
	}
	if account.Balance < amount {
		return apperrors.ErrTransferFailed
	}
	account.Balance -= amount
	return r.Accounts.Update(account)
}

// creditAccount deposits amount of asset into holder's escrow account,
// creating the account row on first use
func creditAccount(r *repository.Set, holder, asset string, amount int64) error {
	account, err := r.Accounts.Get(holder, asset)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.Accounts.Create(&models.Account{
				Holder:  holder,
				Asset:   asset,
				Balance: amount,
			})
		}
		return err
	}
	balance, err := addChecked(account.Balance, amount)
	if err != nil {
		return apperrors.ErrTransferFailed
	}
	account.Balance = balance
	return r.Accounts.Update(account)
}

// creditTreasury adds amount of asset to an organization's treasury pool
func creditTreasury(r *repository.Set, organizationID int64, asset string, amount int64) error {
	balance, err := r.Treasury.Get(organizationID, asset)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.Treasury.Create(&models.TreasuryBalance{
				OrganizationID: organizationID,
				Asset:          asset,
				Balance:        amount,
			})
		}
		return err
	}
	total, err := addChecked(balance.Balance, amount)
	if err != nil {
		return err
	}
	balance.Balance = total
	return r.Treasury.Update(balance)
}

// ensureNotPaused rejects fund-moving operations while the global pause
// switch is on
func ensureNotPaused(r *repository.Set) error {
	state, err := r.System.Get()
	if err != nil {
		return err
	}
	if state.Paused {
		return apperrors.ErrSystemPaused
	}
	return nil
}
