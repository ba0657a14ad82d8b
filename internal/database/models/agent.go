package models

import "time"

// Agent is the registration record of an off-chain analysis/sentiment/
// execution producer. The record does not carry privileges by itself; those
// come from role grants.
type Agent struct {
	ID           int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Address      string     `json:"address" gorm:"not null;size:64;uniqueIndex"`
	Name         string     `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Active       bool       `json:"active" gorm:"not null;default:true"`
	RegisteredAt time.Time  `json:"registered_at"`
	LastActiveAt *time.Time `json:"last_active_at"`
}

// TableName returns the table name for Agent
func (Agent) TableName() string {
	return "agents"
}
