package contract

import (
	"context"

	"community_fund/contract/fund"
	"community_fund/sdk"
)

// VoteArgs addresses a proposal and carries the voter's token weight.
type VoteArgs struct {
	Owner sdk.Address
	ID    uint64
	// Weight is trusted as given; zero is a valid vote.
	Weight uint64
}

// VoteOnProposal records one vote per voter and proposal and adds its weight
// to the tally in the same commit. Votes close with the voting window.
// Example payload: c.VoteOnProposal(ctx, "bob", contract.VoteArgs{Owner: "alice", ID: 0, Weight: 250})
func (c *Contract) VoteOnProposal(ctx context.Context, voter sdk.Address, args VoteArgs) (*fund.VoteRecord, error) {
	var out *fund.VoteRecord
	err := c.run(ctx, "vote", voter, []string{proposalKey(args.Owner, args.ID)}, func(t *txn) error {
		prpsl, err := t.loadProposal(args.Owner, args.ID)
		if err != nil {
			return err
		}
		if t.now-prpsl.CreatedAt >= VotingWindow {
			return ErrVotingExpired
		}
		key := voteKey(voter, args.Owner, args.ID)
		voted, err := t.exists(key)
		if err != nil {
			return err
		}
		if voted {
			return ErrDuplicateVote
		}
		if prpsl.VoteCount, err = addU64(prpsl.VoteCount, args.Weight); err != nil {
			return err
		}
		rec := &fund.VoteRecord{
			Voter:       voter,
			Owner:       args.Owner,
			ProposalID:  args.ID,
			Timestamp:   t.now,
			TokenWeight: args.Weight,
			Tx:          t.id,
		}
		t.create(key, string(fund.EncodeVoteRecord(rec)), ErrDuplicateVote)
		t.saveProposal(prpsl)
		if err := appendToIndex(t, proposalVotersIndex(args.Owner, args.ID), voter.String()); err != nil {
			return err
		}
		emitVoteCasted(t, rec)
		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
