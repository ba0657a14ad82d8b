package models

import "time"

// TreasuryBalance is one organization's fund pool for one asset. Treasury
// funds are strictly segregated from member stakes: execution can only draw
// from here, never from staked principal.
type TreasuryBalance struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	OrganizationID int64     `json:"organization_id" gorm:"not null;uniqueIndex:idx_treasury_org_asset"`
	Asset          string    `json:"asset" gorm:"not null;size:64;uniqueIndex:idx_treasury_org_asset"`
	Balance        int64     `json:"balance" gorm:"not null;default:0"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName returns the table name for TreasuryBalance
func (TreasuryBalance) TableName() string {
	return "treasury_balances"
}
