package contract

import (
	"context"
	"fmt"

	"community_fund/contract/fund"
	"community_fund/sdk"
)

// -----------------------------------------------------------------------------
// Admin Registry
// -----------------------------------------------------------------------------

// InitializeAdmin bootstraps the council once. Only the deployment authority
// may call it and becomes the first admin.
// Example payload: c.InitializeAdmin(ctx, "root", "carol", "dave")
func (c *Contract) InitializeAdmin(ctx context.Context, caller, admin2, admin3 sdk.Address) (*fund.Registry, error) {
	var out *fund.Registry
	err := c.run(ctx, "initialize_admin", caller, []string{registryKey()}, func(t *txn) error {
		ok, err := c.authority.IsAuthority(ctx, caller)
		if err != nil {
			return fmt.Errorf("authority check: %w", err)
		}
		if !ok {
			return ErrNotAuthority
		}
		reg := &fund.Registry{Admins: [fund.AdminSlots]sdk.Address{caller, admin2, admin3}}
		for _, a := range reg.Admins {
			if err := validateAddress(a); err != nil {
				return err
			}
		}
		if caller == admin2 || caller == admin3 || admin2 == admin3 {
			return ErrDuplicateAdmin
		}
		exists, err := t.exists(registryKey())
		if err != nil {
			return err
		}
		if exists {
			return ErrAdminsInitialized
		}
		t.create(registryKey(), string(fund.EncodeRegistry(reg)), ErrAdminsInitialized)
		emitAdminsInitializedEvent(t, reg)
		out = reg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TransferAdmin hands the seat held by old to new. Any current admin may do
// it, including for their own seat. Approvals old already gave stay on the
// proposal but no longer count towards the multisig.
func (c *Contract) TransferAdmin(ctx context.Context, caller, old, new sdk.Address) (*fund.Registry, error) {
	var out *fund.Registry
	err := c.run(ctx, "transfer_admin", caller, []string{registryKey()}, func(t *txn) error {
		reg, err := t.requireAdmin()
		if err != nil {
			return err
		}
		slot := reg.SlotOf(old)
		if slot < 0 {
			return ErrAdminNotFound
		}
		if err := validateAddress(new); err != nil {
			return err
		}
		if other := reg.SlotOf(new); other >= 0 && other != slot {
			return ErrDuplicateAdmin
		}
		reg.Admins[slot] = new
		t.put(registryKey(), string(fund.EncodeRegistry(reg)))
		emitAdminTransferredEvent(t, old, new)
		out = reg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
