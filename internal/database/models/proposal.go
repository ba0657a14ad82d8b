package models

import "time"

// Proposal is a funding request subject to agent admission, member voting,
// and agent-gated execution. Status is the single source of truth for the
// lifecycle; ExecutionApproved is an auxiliary gate that only matters while
// the proposal is approved. Tallies only ever grow and each voter
// contributes weight at most once (enforced by the votes table).
type Proposal struct {
	ID             int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OrganizationID int64          `json:"organization_id" gorm:"not null;index"`
	Title          string         `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description    string         `json:"description" gorm:"type:text"`
	Proposer       string         `json:"proposer" gorm:"not null;size:64;index"`
	Amount         int64          `json:"amount" gorm:"not null"`
	Asset          string         `json:"asset" gorm:"not null;size:64"`
	Recipient      string         `json:"recipient" gorm:"not null;size:64"`
	Status         ProposalStatus `json:"status" gorm:"not null;size:20;default:pending;index"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	VotingStart *time.Time `json:"voting_start"`
	VotingEnd   *time.Time `json:"voting_end"`
	ExecutedAt  *time.Time `json:"executed_at"`

	ForVotes     int64 `json:"for_votes" gorm:"not null;default:0"`
	AgainstVotes int64 `json:"against_votes" gorm:"not null;default:0"`
	AbstainVotes int64 `json:"abstain_votes" gorm:"not null;default:0"`

	// Agent-submitted fields. AnalysisRef and Sentiment are stored opaquely.
	AnalysisRef       string `json:"analysis_ref" gorm:"size:200"`
	RiskLevel         int    `json:"risk_level" gorm:"not null;default:0"`
	Confidence        int    `json:"confidence" gorm:"not null;default:0"`
	Sentiment         string `json:"sentiment" gorm:"type:text"`
	ExecutionApproved bool   `json:"execution_approved" gorm:"not null;default:false"`
}

// TableName returns the table name for Proposal
func (Proposal) TableName() string {
	return "proposals"
}

// TotalVotes returns the combined weight of all ballots cast so far
func (p *Proposal) TotalVotes() int64 {
	return p.ForVotes + p.AgainstVotes + p.AbstainVotes
}
