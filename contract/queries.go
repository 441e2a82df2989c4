package contract

import (
	"context"
	"fmt"

	"community_fund/contract/fund"
	"community_fund/sdk"
)

// Queries read straight from the store without taking locks; every single
// record read is atomic, lists are assembled from several reads.

func (c *Contract) reader(ctx context.Context) *txn {
	return &txn{c: c, ctx: ctx, now: c.clock.Now(), reads: map[string]*string{}, staged: map[string]int{}}
}

func (c *Contract) GetProfile(ctx context.Context, owner sdk.Address) (*fund.Profile, error) {
	return c.reader(ctx).loadProfile(owner)
}

func (c *Contract) GetProposal(ctx context.Context, owner sdk.Address, id uint64) (*fund.Proposal, error) {
	return c.reader(ctx).loadProposal(owner, id)
}

// ListProposals walks the owner's ids from 0 up to the counter.
func (c *Contract) ListProposals(ctx context.Context, owner sdk.Address) ([]*fund.Proposal, error) {
	t := c.reader(ctx)
	prof, err := t.loadProfile(owner)
	if err != nil {
		return nil, err
	}
	out := make([]*fund.Proposal, 0, prof.ProposalCount)
	for id := uint64(0); id < prof.ProposalCount; id++ {
		p, err := t.loadProposal(owner, id)
		if err != nil {
			return nil, fmt.Errorf("proposal %d: %w", id, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// ListOwners returns every address with a profile, oldest first.
func (c *Contract) ListOwners(ctx context.Context) ([]sdk.Address, error) {
	entries, err := readIndex(c.reader(ctx), ownersIndex())
	if err != nil {
		return nil, err
	}
	out := make([]sdk.Address, len(entries))
	for i, e := range entries {
		out[i] = sdk.Address(e)
	}
	return out, nil
}

// GetVote returns ErrNotFound if voter never voted on the proposal.
func (c *Contract) GetVote(ctx context.Context, voter, owner sdk.Address, id uint64) (*fund.VoteRecord, error) {
	v, ok, err := c.reader(ctx).loadVote(voter, owner, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: vote", ErrNotFound)
	}
	return v, nil
}

// ListVotes returns the vote records of one proposal in casting order.
func (c *Contract) ListVotes(ctx context.Context, owner sdk.Address, id uint64) ([]*fund.VoteRecord, error) {
	t := c.reader(ctx)
	if _, err := t.loadProposal(owner, id); err != nil {
		return nil, err
	}
	voters, err := readIndex(t, proposalVotersIndex(owner, id))
	if err != nil {
		return nil, err
	}
	out := make([]*fund.VoteRecord, 0, len(voters))
	for _, voter := range voters {
		v, ok, err := t.loadVote(sdk.Address(voter), owner, id)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (c *Contract) GetAdmins(ctx context.Context) (*fund.Registry, error) {
	return c.reader(ctx).loadRegistry()
}

// GetVault reports the accounting totals next to what the vault account holds.
func (c *Contract) GetVault(ctx context.Context) (fund.VaultView, error) {
	t := c.reader(ctx)
	v, err := t.loadVault()
	if err != nil {
		return fund.VaultView{}, err
	}
	custody, err := t.balance(c.vaultAccount)
	if err != nil {
		return fund.VaultView{}, err
	}
	return fund.VaultView{
		Account:        c.vaultAccount.String(),
		TotalDeposited: v.TotalDeposited,
		TotalClaimed:   v.TotalClaimed,
		Available:      v.Available(),
		Custody:        custody,
	}, nil
}
