package models

// Role defines the privileged capabilities recognized by the ledger
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleProposalAgent  Role = "proposal_agent"
	RoleVoterAgent     Role = "voter_agent"
	RoleExecutionAgent Role = "execution_agent"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleProposalAgent, RoleVoterAgent, RoleExecutionAgent:
		return true
	}
	return false
}

// ProposalStatus defines the lifecycle states of a proposal
type ProposalStatus string

const (
	ProposalStatusPending   ProposalStatus = "pending"
	ProposalStatusActive    ProposalStatus = "active"
	ProposalStatusApproved  ProposalStatus = "approved"
	ProposalStatusRejected  ProposalStatus = "rejected"
	ProposalStatusExecuted  ProposalStatus = "executed"
	ProposalStatusCancelled ProposalStatus = "cancelled"
)

// IsValid checks if the ProposalStatus is valid
func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalStatusPending, ProposalStatusActive, ProposalStatusApproved,
		ProposalStatusRejected, ProposalStatusExecuted, ProposalStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible from s
func (s ProposalStatus) IsTerminal() bool {
	switch s {
	case ProposalStatusExecuted, ProposalStatusRejected, ProposalStatusCancelled:
		return true
	}
	return false
}

// VoteChoice defines the ballot options
type VoteChoice string

const (
	VoteChoiceFor     VoteChoice = "for"
	VoteChoiceAgainst VoteChoice = "against"
	VoteChoiceAbstain VoteChoice = "abstain"
)

// IsValid checks if the VoteChoice is valid
func (c VoteChoice) IsValid() bool {
	switch c {
	case VoteChoiceFor, VoteChoiceAgainst, VoteChoiceAbstain:
		return true
	}
	return false
}

// AssetNative is the sentinel asset reference for the chain's native asset.
// Any other value names a fungible token by address.
const AssetNative = "native"
