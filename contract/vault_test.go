package contract_test

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"community_fund/contract"
	"community_fund/contract/fund"
	"community_fund/sdk"
	"community_fund/state"
)

// =============================================================================
// Vault & Claim Tests
// =============================================================================

func TestInitializeVaultOnce(t *testing.T) {
	f := setupFundTest(t)
	_, err := f.c.GetVault(f.ctx)
	assert.ErrorIs(t, err, contract.ErrVaultNotInitialized)

	v, err := f.c.InitializeVault(f.ctx, "anyone")
	require.NoError(t, err)
	assert.Equal(t, &fund.Vault{}, v)

	_, err = f.c.InitializeVault(f.ctx, "someone-else")
	assert.ErrorIs(t, err, contract.ErrVaultInitialized)
}

func TestDeposit(t *testing.T) {
	f := setupFundTest(t)
	_, err := f.c.Deposit(f.ctx, "alice", 1)
	assert.ErrorIs(t, err, contract.ErrVaultNotInitialized)

	f.fundVault("alice", 3*sdk.UnitScale)
	assert.Equal(t, uint64(0), f.balance("alice"))
	assert.Equal(t, 3*sdk.UnitScale, f.balance(f.c.VaultAccount()))

	_, err = f.c.Deposit(f.ctx, "alice", 1)
	assert.ErrorIs(t, err, contract.ErrInsufficientBalance)
	assert.ErrorIs(t, err, contract.ErrInsufficientFunds)

	view, err := f.c.GetVault(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, fund.VaultView{
		Account:        contract.DefaultVaultAccount.String(),
		TotalDeposited: 3 * sdk.UnitScale,
		Available:      3 * sdk.UnitScale,
		Custody:        3 * sdk.UnitScale,
	}, view)
}

func TestDepositRollsBackTransferWhenCommitFails(t *testing.T) {
	f := setupFundTest(t)
	f.fundVault("alice", 1)
	require.NoError(t, f.c.Credit(f.ctx, "bob", 10))

	f.store.setFail(true)
	_, err := f.c.Deposit(f.ctx, "bob", 10)
	require.ErrorIs(t, err, errStoreDown)
	f.store.setFail(false)

	assert.Equal(t, uint64(10), f.balance("bob"))
	assert.Equal(t, uint64(1), f.balance(f.c.VaultAccount()))
	view, err := f.c.GetVault(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), view.TotalDeposited)
}

func TestClaimLifecycle(t *testing.T) {
	f := setupFundTest(t)
	f.setupAdmins()
	f.initUsers("alice")
	f.createProposal("alice", 2*sdk.UnitScale)
	f.fundVault("bob", 5*sdk.UnitScale)

	_, err := f.c.ClaimFunds(f.ctx, "alice", 0)
	assert.ErrorIs(t, err, contract.ErrNotApproved)
	_, err = f.c.ClaimFunds(f.ctx, "bob", 0)
	assert.ErrorIs(t, err, contract.ErrProposalNotFound, "claims are addressed by the caller's own proposals")

	_, err = f.c.ApproveFunding(f.ctx, admin2, "alice", 0)
	require.NoError(t, err)

	p, err := f.c.ClaimFunds(f.ctx, "alice", 0)
	require.NoError(t, err)
	assert.Equal(t, fund.StatusClaimed, p.Status)
	assert.Equal(t, 2*sdk.UnitScale, f.balance("alice"))
	assert.Equal(t, 3*sdk.UnitScale, f.balance(f.c.VaultAccount()))

	view, err := f.c.GetVault(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 2*sdk.UnitScale, view.TotalClaimed)
	assert.Equal(t, 3*sdk.UnitScale, view.Available)

	_, err = f.c.ClaimFunds(f.ctx, "alice", 0)
	assert.ErrorIs(t, err, contract.ErrAlreadyClaimed)
}

func TestClaimFinalizedProposal(t *testing.T) {
	f := setupFundTest(t)
	f.initUsers("alice")
	f.createProposal("alice", 10)
	f.fundVault("bob", 10)
	require.NoError(t, vote(f, "bob", "alice", 0, contract.MinVotes))

	f.clock.Advance(contract.VotingWindow)
	_, err := f.c.FinalizeProposal(f.ctx, "bob", "alice", 0)
	require.NoError(t, err)

	p, err := f.c.ClaimFunds(f.ctx, "alice", 0)
	require.NoError(t, err)
	assert.Equal(t, fund.StatusClaimed, p.Status)
	assert.Equal(t, uint64(10), f.balance("alice"))
}

func TestClaimRejectedProposal(t *testing.T) {
	f := setupFundTest(t)
	f.setupAdmins()
	f.initUsers("alice")
	f.createProposal("alice", 10)
	f.fundVault("bob", 10)
	_, err := f.c.RejectProposal(f.ctx, admin3, "alice", 0)
	require.NoError(t, err)

	_, err = f.c.ClaimFunds(f.ctx, "alice", 0)
	assert.ErrorIs(t, err, contract.ErrNotApproved)
}

func TestClaimNeedsAccountingAndCustody(t *testing.T) {
	f := setupFundTest(t)
	f.setupAdmins()
	f.initUsers("alice")
	f.createProposal("alice", 10)
	_, err := f.c.ApproveFunding(f.ctx, admin2, "alice", 0)
	require.NoError(t, err)

	_, err = f.c.ClaimFunds(f.ctx, "alice", 0)
	assert.ErrorIs(t, err, contract.ErrVaultNotInitialized)

	f.fundVault("bob", 9)
	_, err = f.c.ClaimFunds(f.ctx, "alice", 0)
	assert.ErrorIs(t, err, contract.ErrInsufficientVaultBalance)

	f.fundVault("bob", 1)
	// another writer sharing the store drained the vault account: 0x50|account
	require.NoError(t, f.store.Commit(f.ctx, state.Put("\x50"+f.c.VaultAccount().String(), "5")))
	_, err = f.c.ClaimFunds(f.ctx, "alice", 0)
	assert.ErrorIs(t, err, contract.ErrInsufficientVaultBalance)
	assert.Equal(t, fund.StatusApproved, f.proposal("alice", 0).Status)
}

func TestClaimRollsBackTransferWhenCommitFails(t *testing.T) {
	f := setupFundTest(t)
	f.setupAdmins()
	f.initUsers("alice")
	f.createProposal("alice", 10)
	f.fundVault("bob", 10)
	_, err := f.c.ApproveFunding(f.ctx, admin2, "alice", 0)
	require.NoError(t, err)

	f.store.setFail(true)
	_, err = f.c.ClaimFunds(f.ctx, "alice", 0)
	require.ErrorIs(t, err, errStoreDown)
	f.store.setFail(false)

	assert.Equal(t, uint64(0), f.balance("alice"))
	assert.Equal(t, uint64(10), f.balance(f.c.VaultAccount()))
	assert.Equal(t, fund.StatusApproved, f.proposal("alice", 0).Status)
}

func TestConcurrentClaimsNeverOverdraw(t *testing.T) {
	f := setupFundTest(t)
	f.setupAdmins()
	const owners = 6
	for i := 0; i < owners; i++ {
		owner := sdk.Address(fmt.Sprintf("owner%d", i))
		f.initUsers(owner)
		f.createProposal(owner, sdk.UnitScale)
		_, err := f.c.ApproveFunding(f.ctx, admin2, owner, 0)
		require.NoError(t, err)
	}
	f.fundVault("bob", 4*sdk.UnitScale)

	var ok atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < owners; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.c.ClaimFunds(f.ctx, sdk.Address(fmt.Sprintf("owner%d", i)), 0)
			if err == nil {
				ok.Add(1)
				return
			}
			assert.ErrorIs(t, err, contract.ErrInsufficientVaultBalance)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(4), ok.Load())
	view, err := f.c.GetVault(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, view.TotalDeposited, view.TotalClaimed)
	assert.Equal(t, uint64(0), view.Custody)
}
