package service_test

import (
	"time"

	"dao-governance-backend/internal/config"
	"dao-governance-backend/internal/mocks"
	"dao-governance-backend/internal/repository"

	"go.uber.org/mock/gomock"
)

// mockRepos bundles one mock per repository so tests can set expectations on
// any of them.
type mockRepos struct {
	Organizations *mocks.MockOrganizationRepositoryInterface
	Memberships   *mocks.MockMembershipRepositoryInterface
	Proposals     *mocks.MockProposalRepositoryInterface
	Votes         *mocks.MockVoteRepositoryInterface
	Agents        *mocks.MockAgentRepositoryInterface
	Accounts      *mocks.MockAccountRepositoryInterface
	Treasury      *mocks.MockTreasuryRepositoryInterface
	Roles         *mocks.MockRoleRepositoryInterface
	System        *mocks.MockSystemRepositoryInterface
}

// newMockRepos creates the mock bundle, the repository set wired to it, and
// a transaction runner that hands the same set straight to the callback.
func newMockRepos(ctrl *gomock.Controller) (*mockRepos, *repository.Set, repository.TxRunner) {
	m := &mockRepos{
		Organizations: mocks.NewMockOrganizationRepositoryInterface(ctrl),
		Memberships:   mocks.NewMockMembershipRepositoryInterface(ctrl),
		Proposals:     mocks.NewMockProposalRepositoryInterface(ctrl),
		Votes:         mocks.NewMockVoteRepositoryInterface(ctrl),
		Agents:        mocks.NewMockAgentRepositoryInterface(ctrl),
		Accounts:      mocks.NewMockAccountRepositoryInterface(ctrl),
		Treasury:      mocks.NewMockTreasuryRepositoryInterface(ctrl),
		Roles:         mocks.NewMockRoleRepositoryInterface(ctrl),
		System:        mocks.NewMockSystemRepositoryInterface(ctrl),
	}
	set := &repository.Set{
		Organizations: m.Organizations,
		Memberships:   m.Memberships,
		Proposals:     m.Proposals,
		Votes:         m.Votes,
		Agents:        m.Agents,
		Accounts:      m.Accounts,
		Treasury:      m.Treasury,
		Roles:         m.Roles,
		System:        m.System,
	}
	tx := func(fn func(r *repository.Set) error) error {
		return fn(set)
	}
	return m, set, tx
}

// testGovernance returns the governance parameters used throughout the
// service tests: a 24h voting window, a 1h stake lock, quorum at a tenth of
// the total stake, and a 70 confidence bar for admission.
func testGovernance() *config.Governance {
	return &config.Governance{
		VotingPeriod:        24 * time.Hour,
		MinStakePeriod:      time.Hour,
		QuorumDivisor:       10,
		ConfidenceThreshold: 70,
	}
}

// fixedClock returns a deterministic clock pinned to t
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
