package models

import "time"

// Organization is a staking pool with its member set and proposal list.
// TotalStaked and MemberCount are accumulators maintained by the registry:
// TotalStaked always equals the sum of member stakes, MemberCount the number
// of memberships with nonzero stake.
type Organization struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description  string    `json:"description" gorm:"type:text"`
	Owner        string    `json:"owner" gorm:"not null;size:64;index"` // creator address, advisory only
	StakingAsset string    `json:"staking_asset" gorm:"not null;size:64"`
	MinStake     int64     `json:"min_stake" gorm:"not null"`
	TotalStaked  int64     `json:"total_staked" gorm:"not null;default:0"`
	MemberCount  int       `json:"member_count" gorm:"not null;default:0"`
	Active       bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:OrganizationID"`
	Proposals   []Proposal   `json:"proposals,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
