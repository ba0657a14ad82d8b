package models

import "time"

// SystemStateID is the primary key of the single system state row.
const SystemStateID int64 = 1

// SystemState is the global pause switch. While paused, fund-moving entry
// points are rejected; leave stays available so members can always exit.
type SystemState struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Paused    bool      `json:"paused" gorm:"not null;default:false"`
	UpdatedBy string    `json:"updated_by" gorm:"size:64"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for SystemState
func (SystemState) TableName() string {
	return "system_state"
}
