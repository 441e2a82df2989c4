package contract

import (
	"context"

	"community_fund/contract/fund"
	"community_fund/sdk"
)

// InitializeUser creates the caller's profile with a zero proposal counter.
// Example payload: c.InitializeUser(ctx, "alice")
func (c *Contract) InitializeUser(ctx context.Context, caller sdk.Address) (*fund.Profile, error) {
	var out *fund.Profile
	locks := []string{profileKey(caller), indexMetaKey(ownersIndex())}
	err := c.run(ctx, "initialize_user", caller, locks, func(t *txn) error {
		exists, err := t.exists(profileKey(caller))
		if err != nil {
			return err
		}
		if exists {
			return ErrProfileExists
		}
		p := &fund.Profile{Owner: caller}
		t.create(profileKey(caller), string(fund.EncodeProfile(p)), ErrProfileExists)
		if err := appendToIndex(t, ownersIndex(), caller.String()); err != nil {
			return err
		}
		emitUserInitializedEvent(t, caller)
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// NextProposalID is the id the owner's next proposal will get.
func (c *Contract) NextProposalID(ctx context.Context, owner sdk.Address) (uint64, error) {
	p, err := c.reader(ctx).loadProfile(owner)
	if err != nil {
		return 0, err
	}
	return p.ProposalCount, nil
}
