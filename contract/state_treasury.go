package contract

import (
	"context"
	"fmt"

	"community_fund/contract/fund"
	"community_fund/sdk"
)

// -----------------------------------------------------------------------------
// Vault
// -----------------------------------------------------------------------------

// InitializeVault creates the zeroed vault accounting. Anyone may call it, once.
func (c *Contract) InitializeVault(ctx context.Context, caller sdk.Address) (*fund.Vault, error) {
	var out *fund.Vault
	err := c.run(ctx, "initialize_vault", caller, []string{vaultKey()}, func(t *txn) error {
		exists, err := t.exists(vaultKey())
		if err != nil {
			return err
		}
		if exists {
			return ErrVaultInitialized
		}
		v := &fund.Vault{}
		t.create(vaultKey(), string(fund.EncodeVault(v)), ErrVaultInitialized)
		emitVaultInitializedEvent(t, c.vaultAccount)
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Deposit moves amount from the caller's balance into the vault account.
// Example payload: c.Deposit(ctx, "alice", 2*sdk.UnitScale)
func (c *Contract) Deposit(ctx context.Context, caller sdk.Address, amount uint64) (*fund.Vault, error) {
	var out *fund.Vault
	locks := []string{vaultKey(), balanceKey(caller), balanceKey(c.vaultAccount)}
	err := c.run(ctx, "deposit", caller, locks, func(t *txn) error {
		v, err := t.loadVault()
		if err != nil {
			return err
		}
		if v.TotalDeposited, err = addU64(v.TotalDeposited, amount); err != nil {
			return err
		}
		if err := t.transfer(caller, c.vaultAccount, amount); err != nil {
			return err
		}
		t.saveVault(v)
		emitFundsAdded(t, amount)
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.metrics.vault(out)
	return out, nil
}

// ClaimFunds pays an approved or finalized proposal of the caller out of the
// vault. Both the accounting and the vault account balance have to cover it.
func (c *Contract) ClaimFunds(ctx context.Context, caller sdk.Address, id uint64) (*fund.Proposal, error) {
	var out *fund.Proposal
	locks := []string{proposalKey(caller, id), vaultKey(), balanceKey(caller), balanceKey(c.vaultAccount)}
	var vault *fund.Vault
	err := c.run(ctx, "claim_funds", caller, locks, func(t *txn) error {
		prpsl, err := t.loadProposal(caller, id)
		if err != nil {
			return err
		}
		if prpsl.Status == fund.StatusClaimed {
			return ErrAlreadyClaimed
		}
		if !prpsl.Status.Claimable() {
			return ErrNotApproved
		}
		v, err := t.loadVault()
		if err != nil {
			return err
		}
		amount := prpsl.AmountRequested
		if amount > v.Available() {
			return fmt.Errorf("%w: available %s, requested %s", ErrInsufficientVaultBalance,
				sdk.FormatAmount(v.Available()), sdk.FormatAmount(amount))
		}
		custody, err := t.balance(c.vaultAccount)
		if err != nil {
			return err
		}
		if amount > custody {
			return fmt.Errorf("%w: custody %s, requested %s", ErrInsufficientVaultBalance,
				sdk.FormatAmount(custody), sdk.FormatAmount(amount))
		}
		if err := t.setStatus(prpsl, fund.StatusClaimed); err != nil {
			return err
		}
		v.TotalClaimed += amount
		if err := t.transfer(c.vaultAccount, caller, amount); err != nil {
			return err
		}
		t.saveProposal(prpsl)
		t.saveVault(v)
		emitFundsClaimed(t, prpsl)
		out, vault = prpsl, v
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.metrics.vault(vault)
	return out, nil
}
