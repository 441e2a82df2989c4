package contract

import (
	"context"

	"community_fund/contract/fund"
	"community_fund/sdk"
)

// CreateProposalArgs is what a participant submits for a new funding request.
type CreateProposalArgs struct {
	Title       string
	Description string
	// Amount is in smallest units, see sdk.UnitScale.
	Amount uint64
}

// UpdateProposalArgs edits the texts of a pending proposal.
type UpdateProposalArgs struct {
	Owner       sdk.Address
	ID          uint64
	Title       string
	Description string
}

// -----------------------------------------------------------------------------
// Creation & Editing
// -----------------------------------------------------------------------------

// CreateProposal takes the owner's counter as id and bumps it in the same commit.
// Example payload: c.CreateProposal(ctx, "alice", contract.CreateProposalArgs{Title: "Docs", Amount: 5 * sdk.UnitScale})
func (c *Contract) CreateProposal(ctx context.Context, caller sdk.Address, args CreateProposalArgs) (*fund.Proposal, error) {
	var out *fund.Proposal
	err := c.run(ctx, "create_proposal", caller, []string{profileKey(caller)}, func(t *txn) error {
		if err := validateProposalText(args.Title, args.Description); err != nil {
			return err
		}
		prof, err := t.loadProfile(caller)
		if err != nil {
			return err
		}
		prpsl := &fund.Proposal{
			ID:              prof.ProposalCount,
			Owner:           caller,
			Title:           args.Title,
			Description:     args.Description,
			AmountRequested: args.Amount,
			Status:          fund.StatusPending,
			CreatedAt:       t.now,
			Tx:              t.id,
		}
		if prof.ProposalCount, err = addU64(prof.ProposalCount, 1); err != nil {
			return err
		}
		t.create(proposalKey(caller, prpsl.ID), string(fund.EncodeProposal(prpsl)), ErrAlreadyExists)
		t.saveProfile(prof)
		emitProposalCreatedEvent(t, prpsl)
		out = prpsl
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProposal lets the owner rewrite title and description while nothing has been decided yet.
func (c *Contract) UpdateProposal(ctx context.Context, caller sdk.Address, args UpdateProposalArgs) (*fund.Proposal, error) {
	var out *fund.Proposal
	err := c.run(ctx, "update_proposal", caller, []string{proposalKey(args.Owner, args.ID)}, func(t *txn) error {
		prpsl, err := t.loadProposal(args.Owner, args.ID)
		if err != nil {
			return err
		}
		if prpsl.Owner != caller {
			return ErrInvalidOwner
		}
		if prpsl.Status != fund.StatusPending {
			return ErrNotPending
		}
		if err := validateProposalText(args.Title, args.Description); err != nil {
			return err
		}
		prpsl.Title = args.Title
		prpsl.Description = args.Description
		t.saveProposal(prpsl)
		emitProposalUpdatedEvent(t, prpsl)
		out = prpsl
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// -----------------------------------------------------------------------------
// Council Decisions
// -----------------------------------------------------------------------------

// RejectProposal is the council's veto, independent of votes or earlier approvals.
func (c *Contract) RejectProposal(ctx context.Context, caller, owner sdk.Address, id uint64) (*fund.Proposal, error) {
	var out *fund.Proposal
	err := c.run(ctx, "reject_proposal", caller, []string{proposalKey(owner, id)}, func(t *txn) error {
		if _, err := t.requireAdmin(); err != nil {
			return err
		}
		prpsl, err := t.loadProposal(owner, id)
		if err != nil {
			return err
		}
		if prpsl.Status != fund.StatusPending {
			return ErrNotPending
		}
		if err := t.setStatus(prpsl, fund.StatusRejected); err != nil {
			return err
		}
		t.saveProposal(prpsl)
		out = prpsl
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ApproveFunding approves small requests outright. From MultisigThreshold on
// every distinct admin signature is collected until RequiredApprovals of the
// currently seated admins have signed.
func (c *Contract) ApproveFunding(ctx context.Context, caller, owner sdk.Address, id uint64) (*fund.Proposal, error) {
	var out *fund.Proposal
	locks := []string{proposalKey(owner, id), registryKey()}
	err := c.run(ctx, "approve_funding", caller, locks, func(t *txn) error {
		reg, err := t.requireAdmin()
		if err != nil {
			return err
		}
		prpsl, err := t.loadProposal(owner, id)
		if err != nil {
			return err
		}
		if prpsl.Status != fund.StatusPending {
			return ErrNotPending
		}
		if prpsl.AmountRequested < MultisigThreshold {
			if err := t.setStatus(prpsl, fund.StatusApproved); err != nil {
				return err
			}
		} else {
			if prpsl.HasApproval(caller) {
				return ErrAlreadyApproved
			}
			prpsl.FundingApprovals = append(prpsl.FundingApprovals, caller)
			emitFundingApprovedEvent(t, prpsl, caller)
			// a handed over seat keeps one voice, the old holder's approval stops counting
			if prpsl.SeatedApprovals(reg) >= RequiredApprovals {
				if err := t.setStatus(prpsl, fund.StatusApproved); err != nil {
					return err
				}
			}
		}
		t.saveProposal(prpsl)
		out = prpsl
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// -----------------------------------------------------------------------------
// Finalization
// -----------------------------------------------------------------------------

// FinalizeProposal turns the tally into an outcome once the voting window is over.
// Anyone may call it. Below MinVotes the proposal ends Rejected.
func (c *Contract) FinalizeProposal(ctx context.Context, caller, owner sdk.Address, id uint64) (*fund.Proposal, error) {
	var out *fund.Proposal
	err := c.run(ctx, "finalize_proposal", caller, []string{proposalKey(owner, id)}, func(t *txn) error {
		prpsl, err := t.loadProposal(owner, id)
		if err != nil {
			return err
		}
		if t.now-prpsl.CreatedAt < VotingWindow {
			return ErrVotingStillActive
		}
		if prpsl.FinalizedAt != 0 || prpsl.Status != fund.StatusPending {
			return ErrAlreadyFinalized
		}
		next := fund.StatusRejected
		if prpsl.VoteCount >= MinVotes {
			next = fund.StatusFinalized
		}
		if err := t.setStatus(prpsl, next); err != nil {
			return err
		}
		prpsl.FinalizedAt = t.now
		t.saveProposal(prpsl)
		out = prpsl
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
