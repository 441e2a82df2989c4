package contract_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"community_fund/contract"
	"community_fund/contract/fund"
	"community_fund/sdk"
)

// =============================================================================
// Proposal Lifecycle Tests
// =============================================================================

func TestCreateProposalInitialState(t *testing.T) {
	f := setupFundTest(t)
	f.initUsers("alice")

	p := f.createProposal("alice", 5*sdk.UnitScale)
	assert.Equal(t, uint64(0), p.ID)
	assert.Equal(t, fund.StatusPending, p.Status)
	assert.Equal(t, uint64(0), p.VoteCount)
	assert.Empty(t, p.FundingApprovals)
	assert.Equal(t, defaultTimestamp, p.CreatedAt)
	assert.Equal(t, int64(0), p.FinalizedAt)
	assert.NotEmpty(t, p.Tx)

	stored := f.proposal("alice", 0)
	assert.Equal(t, p, stored)
}

func TestCreateProposalValidation(t *testing.T) {
	f := setupFundTest(t)
	_, err := f.c.CreateProposal(f.ctx, "alice", contract.CreateProposalArgs{Title: "t"})
	assert.ErrorIs(t, err, contract.ErrProfileNotFound)

	f.initUsers("alice")
	cases := []struct {
		name        string
		title, desc string
		want        error
	}{
		{"title at limit", strings.Repeat("a", 50), "", nil},
		{"multi-byte title at limit", strings.Repeat("é", 50), "", nil},
		{"title too long", strings.Repeat("a", 51), "", contract.ErrTitleTooLong},
		{"description at limit", "t", strings.Repeat("d", 200), nil},
		{"description too long", "t", strings.Repeat("d", 201), contract.ErrDescriptionTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.c.CreateProposal(f.ctx, "alice", contract.CreateProposalArgs{Title: tc.title, Description: tc.desc, Amount: 1})
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, contract.ErrValidation)
		})
	}
	// only the three valid cases consumed ids
	next, err := f.c.NextProposalID(f.ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), next)
}

func TestUpdateProposal(t *testing.T) {
	f := setupFundTest(t)
	f.setupAdmins()
	f.initUsers("alice")
	f.createProposal("alice", 1)

	_, err := f.c.UpdateProposal(f.ctx, "bob", contract.UpdateProposalArgs{Owner: "alice", ID: 0, Title: "x"})
	assert.ErrorIs(t, err, contract.ErrInvalidOwner)

	_, err = f.c.UpdateProposal(f.ctx, "alice", contract.UpdateProposalArgs{Owner: "alice", ID: 0, Title: strings.Repeat("x", 51)})
	assert.ErrorIs(t, err, contract.ErrTitleTooLong)

	p, err := f.c.UpdateProposal(f.ctx, "alice", contract.UpdateProposalArgs{Owner: "alice", ID: 0, Title: "new title", Description: "new text"})
	require.NoError(t, err)
	assert.Equal(t, "new title", p.Title)
	assert.Equal(t, "new text", f.proposal("alice", 0).Description)

	_, err = f.c.RejectProposal(f.ctx, authority, "alice", 0)
	require.NoError(t, err)
	_, err = f.c.UpdateProposal(f.ctx, "alice", contract.UpdateProposalArgs{Owner: "alice", ID: 0, Title: "late"})
	assert.ErrorIs(t, err, contract.ErrNotPending)

	_, err = f.c.UpdateProposal(f.ctx, "alice", contract.UpdateProposalArgs{Owner: "alice", ID: 9, Title: "late"})
	assert.ErrorIs(t, err, contract.ErrProposalNotFound)
}

func TestRejectProposal(t *testing.T) {
	f := setupFundTest(t)
	f.initUsers("alice")
	f.createProposal("alice", 2_000_000_000_000)

	_, err := f.c.RejectProposal(f.ctx, authority, "alice", 0)
	assert.ErrorIs(t, err, contract.ErrAdminsNotInitialized)

	f.setupAdmins()
	_, err = f.c.RejectProposal(f.ctx, "alice", "alice", 0)
	assert.ErrorIs(t, err, contract.ErrNotAdmin)

	// an earlier approval does not protect against the veto
	_, err = f.c.ApproveFunding(f.ctx, admin2, "alice", 0)
	require.NoError(t, err)
	p, err := f.c.RejectProposal(f.ctx, admin3, "alice", 0)
	require.NoError(t, err)
	assert.Equal(t, fund.StatusRejected, p.Status)

	_, err = f.c.RejectProposal(f.ctx, admin3, "alice", 0)
	assert.ErrorIs(t, err, contract.ErrNotPending)
	_, err = f.c.ApproveFunding(f.ctx, authority, "alice", 0)
	assert.ErrorIs(t, err, contract.ErrNotPending)
}

func TestApproveBelowThresholdNeedsOneAdmin(t *testing.T) {
	f := setupFundTest(t)
	f.setupAdmins()
	f.initUsers("alice")
	f.createProposal("alice", 1_000_000_000)

	p, err := f.c.ApproveFunding(f.ctx, admin2, "alice", 0)
	require.NoError(t, err)
	assert.Equal(t, fund.StatusApproved, p.Status)
	assert.Empty(t, p.FundingApprovals)
}

func TestApproveAtThresholdNeedsTwoAdmins(t *testing.T) {
	f := setupFundTest(t)
	f.setupAdmins()
	f.initUsers("alice")
	f.createProposal("alice", contract.MultisigThreshold)
	f.createProposal("alice", 2_000_000_000_000)

	for _, id := range []uint64{0, 1} {
		p, err := f.c.ApproveFunding(f.ctx, authority, "alice", id)
		require.NoError(t, err)
		assert.Equal(t, fund.StatusPending, p.Status)
		assert.Equal(t, []sdk.Address{authority}, p.FundingApprovals)

		_, err = f.c.ApproveFunding(f.ctx, authority, "alice", id)
		assert.ErrorIs(t, err, contract.ErrAlreadyApproved)

		p, err = f.c.ApproveFunding(f.ctx, admin3, "alice", id)
		require.NoError(t, err)
		assert.Equal(t, fund.StatusApproved, p.Status)
		assert.Equal(t, []sdk.Address{authority, admin3}, p.FundingApprovals)

		_, err = f.c.ApproveFunding(f.ctx, admin2, "alice", id)
		assert.ErrorIs(t, err, contract.ErrNotPending)
	}
}

func TestApproveRequiresAdmin(t *testing.T) {
	f := setupFundTest(t)
	f.initUsers("alice")
	f.createProposal("alice", 1)

	_, err := f.c.ApproveFunding(f.ctx, admin2, "alice", 0)
	assert.ErrorIs(t, err, contract.ErrAdminsNotInitialized)

	f.setupAdmins()
	_, err = f.c.ApproveFunding(f.ctx, "mallory", "alice", 0)
	assert.ErrorIs(t, err, contract.ErrNotAdmin)
	assert.ErrorIs(t, err, contract.ErrUnauthorized)
	assert.Equal(t, fund.StatusPending, f.proposal("alice", 0).Status)

	_, err = f.c.ApproveFunding(f.ctx, admin2, "alice", 7)
	assert.ErrorIs(t, err, contract.ErrProposalNotFound)
}

func TestFinalizeRespectsVotingWindow(t *testing.T) {
	f := setupFundTest(t)
	f.initUsers("alice")
	f.createProposal("alice", 1)
	_, err := f.c.VoteOnProposal(f.ctx, "bob", contract.VoteArgs{Owner: "alice", ID: 0, Weight: 1000})
	require.NoError(t, err)

	_, err = f.c.FinalizeProposal(f.ctx, "bob", "alice", 0)
	assert.ErrorIs(t, err, contract.ErrVotingStillActive)

	f.clock.Advance(contract.VotingWindow - 1)
	_, err = f.c.FinalizeProposal(f.ctx, "bob", "alice", 0)
	assert.ErrorIs(t, err, contract.ErrVotingStillActive)

	f.clock.Advance(1)
	p, err := f.c.FinalizeProposal(f.ctx, "bob", "alice", 0)
	require.NoError(t, err)
	assert.Equal(t, fund.StatusFinalized, p.Status)
	assert.Equal(t, defaultTimestamp+contract.VotingWindow, p.FinalizedAt)

	_, err = f.c.FinalizeProposal(f.ctx, "bob", "alice", 0)
	assert.ErrorIs(t, err, contract.ErrAlreadyFinalized)
}

func TestFinalizeBelowMinVotesRejects(t *testing.T) {
	f := setupFundTest(t)
	f.initUsers("alice")
	f.createProposal("alice", 1)
	_, err := f.c.VoteOnProposal(f.ctx, "bob", contract.VoteArgs{Owner: "alice", ID: 0, Weight: contract.MinVotes - 1})
	require.NoError(t, err)

	f.clock.Advance(contract.VotingWindow)
	p, err := f.c.FinalizeProposal(f.ctx, "carol", "alice", 0)
	require.NoError(t, err)
	assert.Equal(t, fund.StatusRejected, p.Status)
	assert.NotZero(t, p.FinalizedAt)
}

func TestFinalizeAfterCouncilDecision(t *testing.T) {
	f := setupFundTest(t)
	f.setupAdmins()
	f.initUsers("alice")
	f.createProposal("alice", 1)
	_, err := f.c.ApproveFunding(f.ctx, admin2, "alice", 0)
	require.NoError(t, err)

	// the window is checked before anything else
	_, err = f.c.FinalizeProposal(f.ctx, "bob", "alice", 0)
	assert.ErrorIs(t, err, contract.ErrVotingStillActive)

	f.clock.Advance(contract.VotingWindow)
	_, err = f.c.FinalizeProposal(f.ctx, "bob", "alice", 0)
	assert.ErrorIs(t, err, contract.ErrAlreadyFinalized)
	assert.Equal(t, fund.StatusApproved, f.proposal("alice", 0).Status)
}

func TestStatusEventsOnlyAfterCommit(t *testing.T) {
	f := setupFundTest(t)
	f.setupAdmins()
	f.initUsers("alice")
	f.createProposal("alice", 1)
	f.events.reset()

	f.store.setFail(true)
	_, err := f.c.ApproveFunding(f.ctx, admin2, "alice", 0)
	require.ErrorIs(t, err, errStoreDown)
	assert.Empty(t, f.events.kinds())
	assert.Equal(t, fund.StatusPending, f.proposal("alice", 0).Status)

	f.store.setFail(false)
	_, err = f.c.ApproveFunding(f.ctx, admin2, "alice", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"ps"}, f.events.kinds())
}

func TestProposalQueries(t *testing.T) {
	f := setupFundTest(t)
	f.initUsers("alice")
	_, err := f.c.ListProposals(f.ctx, "bob")
	assert.ErrorIs(t, err, contract.ErrProfileNotFound)

	list, err := f.c.ListProposals(f.ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, list)

	f.createProposal("alice", 1)
	f.createProposal("alice", 2)
	list, err = f.c.ListProposals(f.ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, uint64(2), list[1].AmountRequested)

	_, err = f.c.GetProposal(f.ctx, "alice", 2)
	assert.ErrorIs(t, err, contract.ErrNotFound)
}
