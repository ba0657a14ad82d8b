package models

import "time"

// Account is an escrow balance held by the ledger on behalf of one address
// for one asset. Joining, staking more, and funding a treasury debit the
// caller's account; leaving and proposal execution credit accounts.
type Account struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Holder    string    `json:"holder" gorm:"not null;size:64;uniqueIndex:idx_accounts_holder_asset"`
	Asset     string    `json:"asset" gorm:"not null;size:64;uniqueIndex:idx_accounts_holder_asset"`
	Balance   int64     `json:"balance" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for Account
func (Account) TableName() string {
	return "accounts"
}
