package contract_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"community_fund/contract"
	"community_fund/contract/fund"
	"community_fund/sdk"
	"community_fund/state"
)

// 2025-09-03T00:00:00Z
const defaultTimestamp int64 = 1_756_857_600

const (
	authority sdk.Address = "root"
	admin2    sdk.Address = "carol"
	admin3    sdk.Address = "dave"
)

type fixture struct {
	t      *testing.T
	ctx    context.Context
	c      *contract.Contract
	store  *flakyStore
	clock  *sdk.ManualClock
	events *recorder
}

// Setup an instance of a fund with an authority but no admins or vault yet.
func setupFundTest(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		t:      t,
		ctx:    context.Background(),
		store:  &flakyStore{Mem: state.NewMem()},
		clock:  sdk.NewManualClock(defaultTimestamp),
		events: &recorder{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.c = contract.New(f.store,
		contract.WithClock(f.clock),
		contract.WithAuthority(sdk.StaticAuthority{Address: authority}),
		contract.WithEventLog(sdk.NewEventLog(logger, f.events)),
		contract.WithLogger(logger),
	)
	return f
}

func (f *fixture) initUsers(addrs ...sdk.Address) {
	f.t.Helper()
	for _, a := range addrs {
		_, err := f.c.InitializeUser(f.ctx, a)
		require.NoError(f.t, err)
	}
}

func (f *fixture) createProposal(owner sdk.Address, amount uint64) *fund.Proposal {
	f.t.Helper()
	p, err := f.c.CreateProposal(f.ctx, owner, contract.CreateProposalArgs{
		Title:       "community grant",
		Description: "pay for the thing",
		Amount:      amount,
	})
	require.NoError(f.t, err)
	return p
}

func (f *fixture) setupAdmins() {
	f.t.Helper()
	_, err := f.c.InitializeAdmin(f.ctx, authority, admin2, admin3)
	require.NoError(f.t, err)
}

// fundVault mints amount for from and deposits it into a (possibly fresh) vault.
func (f *fixture) fundVault(from sdk.Address, amount uint64) {
	f.t.Helper()
	if _, err := f.c.GetVault(f.ctx); errors.Is(err, contract.ErrVaultNotInitialized) {
		_, err := f.c.InitializeVault(f.ctx, from)
		require.NoError(f.t, err)
	}
	require.NoError(f.t, f.c.Credit(f.ctx, from, amount))
	_, err := f.c.Deposit(f.ctx, from, amount)
	require.NoError(f.t, err)
}

func (f *fixture) proposal(owner sdk.Address, id uint64) *fund.Proposal {
	f.t.Helper()
	p, err := f.c.GetProposal(f.ctx, owner, id)
	require.NoError(f.t, err)
	return p
}

func (f *fixture) balance(addr sdk.Address) uint64 {
	f.t.Helper()
	b, err := f.c.Balance(f.ctx, addr)
	require.NoError(f.t, err)
	return b
}

// recorder is an event publisher that keeps everything it sees.
type recorder struct {
	mu     sync.Mutex
	events []sdk.Event
}

func (r *recorder) Publish(_ context.Context, ev sdk.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recorder) kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind
	}
	return out
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

var errStoreDown = errors.New("store down")

// flakyStore fails commits on demand so rollback paths can be exercised.
type flakyStore struct {
	*state.Mem
	mu   sync.Mutex
	fail bool
}

func (s *flakyStore) setFail(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = v
}

func (s *flakyStore) Commit(ctx context.Context, muts ...state.Mutation) error {
	s.mu.Lock()
	fail := s.fail
	s.mu.Unlock()
	if fail {
		return errStoreDown
	}
	return s.Mem.Commit(ctx, muts...)
}
