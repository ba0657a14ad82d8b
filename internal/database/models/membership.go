package models

import "time"

// Membership records one address's locked stake in one organization.
// Leaving zeroes Stake and JoinedAt instead of deleting the row, so the
// history of past members survives.
type Membership struct {
	ID             int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	OrganizationID int64      `json:"organization_id" gorm:"not null;uniqueIndex:idx_memberships_org_address"`
	Address        string     `json:"address" gorm:"not null;size:64;uniqueIndex:idx_memberships_org_address"`
	Stake          int64      `json:"stake" gorm:"not null;default:0"`
	JoinedAt       *time.Time `json:"joined_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}

// IsMember reports whether the record currently represents an active member
func (m *Membership) IsMember() bool {
	return m != nil && m.Stake > 0
}
