package contract

import (
	"context"
	"log/slog"
	"time"

	"community_fund/sdk"
	"community_fund/state"
)

// Contract is the community fund state machine. All exported operations are
// safe for concurrent use; each one runs as a single atomic unit against the store.
type Contract struct {
	store        state.Store
	clock        sdk.Clock
	authority    sdk.Authority
	events       *sdk.EventLog
	metrics      *Metrics
	logger       *slog.Logger
	vaultAccount sdk.Address
	locks        *lockTable
}

// Option tweaks a Contract at construction time.
type Option func(*Contract)

func WithClock(clock sdk.Clock) Option {
	return func(c *Contract) { c.clock = clock }
}

// WithAuthority sets who may bootstrap the admin council. Without it nobody can.
func WithAuthority(a sdk.Authority) Option {
	return func(c *Contract) { c.authority = a }
}

func WithEventLog(l *sdk.EventLog) Option {
	return func(c *Contract) { c.events = l }
}

func WithMetrics(m *Metrics) Option {
	return func(c *Contract) { c.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Contract) { c.logger = l }
}

// WithVaultAccount picks the account that holds the pool.
// Example payload: contract.WithVaultAccount("system:fund-vault")
func WithVaultAccount(addr sdk.Address) Option {
	return func(c *Contract) { c.vaultAccount = addr }
}

// New wires the contract to its store. Records and balances share it.
func New(store state.Store, opts ...Option) *Contract {
	c := &Contract{
		store:        store,
		clock:        sdk.NewMonotonicClock(),
		authority:    sdk.StaticAuthority{},
		logger:       slog.Default(),
		vaultAccount: DefaultVaultAccount,
		locks:        newLockTable(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// VaultAccount is the account deposits go to and claims come from.
func (c *Contract) VaultAccount() sdk.Address {
	return c.vaultAccount
}

// run executes one operation: lock the entities it touches, let fn read and
// stage through a fresh txn, then commit. Nothing fn staged survives an error.
func (c *Contract) run(ctx context.Context, op string, caller sdk.Address, lockKeys []string, fn func(tx *txn) error) error {
	return c.exec(ctx, op, caller, lockKeys, func(tx *txn) error {
		if !caller.IsParticipant() {
			return ErrInvalidAddress
		}
		return fn(tx)
	})
}

// runSystem is run for deployment operations that no participant signs.
func (c *Contract) runSystem(ctx context.Context, op string, lockKeys []string, fn func(tx *txn) error) error {
	return c.exec(ctx, op, systemCaller, lockKeys, fn)
}

func (c *Contract) exec(ctx context.Context, op string, caller sdk.Address, lockKeys []string, fn func(tx *txn) error) error {
	start := time.Now()
	err := c.runLocked(ctx, caller, lockKeys, fn)
	c.metrics.observe(op, start, err)
	if err != nil {
		c.logger.DebugContext(ctx, "operation failed",
			slog.String("op", op),
			slog.String("caller", caller.String()),
			slog.String("kind", ErrorKind(err)),
			slog.String("error", err.Error()),
		)
	}
	return err
}

func (c *Contract) runLocked(ctx context.Context, caller sdk.Address, lockKeys []string, fn func(tx *txn) error) error {
	unlock, err := c.locks.lock(ctx, lockKeys...)
	if err != nil {
		return err
	}
	defer unlock()

	tx := c.begin(ctx, caller)
	if err := fn(tx); err != nil {
		return err
	}
	return tx.commit()
}
