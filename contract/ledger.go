package contract

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"community_fund/sdk"
)

// Balances live in the state store next to the records that move them, so a
// deposit or claim commits the money and the accounting in one batch.

// systemCaller acts for operations the deployment runs on its own behalf.
const systemCaller sdk.Address = "system:fund"

var errGenesisApplied = fmt.Errorf("%w: genesis already applied", ErrAlreadyExists)

// Allocation is one starting balance in smallest units.
type Allocation struct {
	Address sdk.Address
	Amount  uint64
}

func (t *txn) balance(addr sdk.Address) (uint64, error) {
	raw, ok, err := t.get(balanceKey(addr))
	if err != nil || !ok || raw == "" {
		return 0, err
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("balance of %s: %w", addr, err)
	}
	return n, nil
}

func (t *txn) setBalance(addr sdk.Address, amount uint64) {
	t.put(balanceKey(addr), strconv.FormatUint(amount, 10))
}

func (t *txn) credit(addr sdk.Address, amount uint64) error {
	have, err := t.balance(addr)
	if err != nil {
		return err
	}
	next, err := addU64(have, amount)
	if err != nil {
		return fmt.Errorf("credit %s: %w", addr, err)
	}
	t.setBalance(addr, next)
	return nil
}

// transfer stages a move between two accounts. Either both sides change at
// commit or neither does.
func (t *txn) transfer(from, to sdk.Address, amount uint64) error {
	if from == to || amount == 0 {
		return nil
	}
	have, err := t.balance(from)
	if err != nil {
		return err
	}
	if have < amount {
		return fmt.Errorf("%w: %s has %s, needs %s", ErrInsufficientBalance,
			from, sdk.FormatAmount(have), sdk.FormatAmount(amount))
	}
	if err := t.credit(to, amount); err != nil {
		return err
	}
	t.setBalance(from, have-amount)
	return nil
}

// Balance is what addr holds, the vault account included.
func (c *Contract) Balance(ctx context.Context, addr sdk.Address) (uint64, error) {
	return c.reader(ctx).balance(addr)
}

// Credit mints amount into addr. It is a deployment operation, not reachable
// through the participant API.
// Example payload: c.Credit(ctx, "alice", 5*sdk.UnitScale)
func (c *Contract) Credit(ctx context.Context, addr sdk.Address, amount uint64) error {
	if !addr.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, addr.String())
	}
	return c.runSystem(ctx, "credit", []string{balanceKey(addr)}, func(t *txn) error {
		return t.credit(addr, amount)
	})
}

// ApplyGenesis mints the starting balances once per store. It reports false
// when an earlier start already did, leaving every balance untouched.
func (c *Contract) ApplyGenesis(ctx context.Context, allocs []Allocation) (bool, error) {
	locks := []string{genesisKey()}
	for _, a := range allocs {
		if !a.Address.IsValid() {
			return false, fmt.Errorf("%w: genesis %q", ErrInvalidAddress, a.Address.String())
		}
		locks = append(locks, balanceKey(a.Address))
	}
	err := c.runSystem(ctx, "apply_genesis", locks, func(t *txn) error {
		done, err := t.exists(genesisKey())
		if err != nil {
			return err
		}
		if done {
			return errGenesisApplied
		}
		for _, a := range allocs {
			if err := t.credit(a.Address, a.Amount); err != nil {
				return err
			}
		}
		t.create(genesisKey(), strconv.Itoa(len(allocs)), errGenesisApplied)
		return nil
	})
	if errors.Is(err, errGenesisApplied) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
