package models

import "time"

// Vote is one member's ballot on one proposal. Weight is the voter's stake
// at cast time and is immutable afterwards; later stake changes never touch
// a recorded ballot. The (proposal, voter) unique index is the backstop for
// the one-ballot-per-member rule.
type Vote struct {
	ID         int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	ProposalID int64      `json:"proposal_id" gorm:"not null;uniqueIndex:idx_votes_proposal_voter"`
	Voter      string     `json:"voter" gorm:"not null;size:64;uniqueIndex:idx_votes_proposal_voter"`
	Choice     VoteChoice `json:"choice" gorm:"not null;size:10"`
	Weight     int64      `json:"weight" gorm:"not null"`
	CastAt     time.Time  `json:"cast_at"`
}

// TableName returns the table name for Vote
func (Vote) TableName() string {
	return "votes"
}
