package repository

import (
	"gorm.io/gorm"
)

// Set bundles one repository per entity, all bound to the same database
// handle. Services read through a root Set and mutate through a Set bound to
// a transaction (see TxRunner).
type Set struct {
	Organizations OrganizationRepositoryInterface
	Memberships   MembershipRepositoryInterface
	Proposals     ProposalRepositoryInterface
	Votes         VoteRepositoryInterface
	Agents        AgentRepositoryInterface
	Accounts      AccountRepositoryInterface
	Treasury      TreasuryRepositoryInterface
	Roles         RoleRepositoryInterface
	System        SystemRepositoryInterface
}

// NewSet creates a repository set bound to db
func NewSet(db *gorm.DB) *Set {
	return &Set{
		Organizations: NewOrganizationRepository(db),
		Memberships:   NewMembershipRepository(db),
		Proposals:     NewProposalRepository(db),
		Votes:         NewVoteRepository(db),
		Agents:        NewAgentRepository(db),
		Accounts:      NewAccountRepository(db),
		Treasury:      NewTreasuryRepository(db),
		Roles:         NewRoleRepository(db),
		System:        NewSystemRepository(db),
	}
}

// TxRunner executes fn with a repository set bound to a single database
// transaction. The transaction commits only if fn returns nil; any error
// rolls every write back, so a public ledger operation is applied fully or
// not at all.
type TxRunner func(fn func(r *Set) error) error

// NewTxRunner creates a TxRunner on top of db
func NewTxRunner(db *gorm.DB) TxRunner {
	return func(fn func(r *Set) error) error {
		return db.Transaction(func(tx *gorm.DB) error {
			return fn(NewSet(tx))
		})
	}
}
