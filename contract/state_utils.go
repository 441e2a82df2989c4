package contract

import (
	"community_fund/contract/fund"
	"community_fund/sdk"
)

// -----------------------------------------------------------------------------
// Record Loaders
// -----------------------------------------------------------------------------

func (t *txn) exists(key string) (bool, error) {
	_, ok, err := t.get(key)
	return ok, err
}

func (t *txn) loadProfile(owner sdk.Address) (*fund.Profile, error) {
	raw, ok, err := t.get(profileKey(owner))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrProfileNotFound
	}
	return fund.DecodeProfile([]byte(raw))
}

func (t *txn) saveProfile(p *fund.Profile) {
	t.put(profileKey(p.Owner), string(fund.EncodeProfile(p)))
}

func (t *txn) loadProposal(owner sdk.Address, id uint64) (*fund.Proposal, error) {
	raw, ok, err := t.get(proposalKey(owner, id))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrProposalNotFound
	}
	return fund.DecodeProposal([]byte(raw))
}

func (t *txn) saveProposal(p *fund.Proposal) {
	t.put(proposalKey(p.Owner, p.ID), string(fund.EncodeProposal(p)))
}

// setStatus is the only way a proposal changes status.
func (t *txn) setStatus(p *fund.Proposal, next fund.Status) error {
	if !p.Status.CanTransition(next) {
		return ErrNotPending
	}
	p.Status = next
	emitProposalStateChangedEvent(t, p)
	return nil
}

func (t *txn) loadVote(voter, owner sdk.Address, id uint64) (*fund.VoteRecord, bool, error) {
	raw, ok, err := t.get(voteKey(voter, owner, id))
	if err != nil || !ok {
		return nil, false, err
	}
	v, err := fund.DecodeVoteRecord([]byte(raw))
	return v, err == nil, err
}

func (t *txn) loadRegistry() (*fund.Registry, error) {
	raw, ok, err := t.get(registryKey())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAdminsNotInitialized
	}
	return fund.DecodeRegistry([]byte(raw))
}

func (t *txn) loadVault() (*fund.Vault, error) {
	raw, ok, err := t.get(vaultKey())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrVaultNotInitialized
	}
	return fund.DecodeVault([]byte(raw))
}

func (t *txn) saveVault(v *fund.Vault) {
	t.put(vaultKey(), string(fund.EncodeVault(v)))
}

// requireAdmin checks the caller against the current council.
func (t *txn) requireAdmin() (*fund.Registry, error) {
	reg, err := t.loadRegistry()
	if err != nil {
		return nil, err
	}
	if !reg.IsAdmin(t.caller) {
		return nil, ErrNotAdmin
	}
	return reg, nil
}
