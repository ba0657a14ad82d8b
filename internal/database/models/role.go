package models

import "time"

// RoleGrant is one row in the role-membership table consulted at the top of
// every privileged operation.
type RoleGrant struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Role      Role      `json:"role" gorm:"not null;size:30;uniqueIndex:idx_role_grants_role_address"`
	Address   string    `json:"address" gorm:"not null;size:64;uniqueIndex:idx_role_grants_role_address"`
	GrantedBy string    `json:"granted_by" gorm:"size:64"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for RoleGrant
func (RoleGrant) TableName() string {
	return "role_grants"
}
