package contract

import (
	"fmt"

	"community_fund/contract/fund"
	"community_fund/sdk"
)

// Event lines are staged on the txn and only leave the process after the commit succeeded.

// emitUserInitializedEvent announces a fresh profile so indexers can pick up the owner.
func emitUserInitializedEvent(t *txn, owner sdk.Address) {
	t.emit("ui", fmt.Sprintf(
		"ui|owner:%s",
		owner,
	))
}

// emitProposalCreatedEvent keeps observers updated with a short pc line for every new request.
func emitProposalCreatedEvent(t *txn, p *fund.Proposal) {
	t.emit("pc", fmt.Sprintf(
		"pc|owner:%s|id:%d|am:%s",
		p.Owner,
		p.ID,
		sdk.FormatAmount(p.AmountRequested),
	))
}

// emitProposalUpdatedEvent signals an edited title or description.
func emitProposalUpdatedEvent(t *txn, p *fund.Proposal) {
	t.emit("pu", fmt.Sprintf(
		"pu|owner:%s|id:%d",
		p.Owner,
		p.ID,
	))
}

// emitProposalStateChangedEvent is the swiss army knife log entry for any status flip.
func emitProposalStateChangedEvent(t *txn, p *fund.Proposal) {
	t.emit("ps", fmt.Sprintf(
		"ps|owner:%s|id:%d|s:%s",
		p.Owner,
		p.ID,
		p.Status.String(),
	))
}

// emitFundingApprovedEvent records one admin signature on a large request.
func emitFundingApprovedEvent(t *txn, p *fund.Proposal, admin sdk.Address) {
	t.emit("pa", fmt.Sprintf(
		"pa|owner:%s|id:%d|by:%s|n:%d",
		p.Owner,
		p.ID,
		admin,
		len(p.FundingApprovals),
	))
}

// emitVoteCasted includes the weight so the tally can be replayed from logs only.
func emitVoteCasted(t *txn, v *fund.VoteRecord) {
	t.emit("v", fmt.Sprintf(
		"v|owner:%s|id:%d|by:%s|w:%d",
		v.Owner,
		v.ProposalID,
		v.Voter,
		v.TokenWeight,
	))
}

func emitAdminsInitializedEvent(t *txn, reg *fund.Registry) {
	t.emit("ai", fmt.Sprintf(
		"ai|admins:%s",
		AddressesToString(reg.Admins[:]),
	))
}

// emitAdminTransferredEvent spells out which seat changed hands.
func emitAdminTransferredEvent(t *txn, old, new sdk.Address) {
	t.emit("at", fmt.Sprintf(
		"at|old:%s|new:%s|by:%s",
		old,
		new,
		t.caller,
	))
}

func emitVaultInitializedEvent(t *txn, account sdk.Address) {
	t.emit("vi", fmt.Sprintf(
		"vi|acc:%s|by:%s",
		account,
		t.caller,
	))
}

// emitFundsAdded tells indexing bots the pool grew.
func emitFundsAdded(t *txn, amount uint64) {
	t.emit("af", fmt.Sprintf(
		"af|by:%s|am:%s",
		t.caller,
		sdk.FormatAmount(amount),
	))
}

// emitFundsClaimed mirrors the add log for payouts.
func emitFundsClaimed(t *txn, p *fund.Proposal) {
	t.emit("rf", fmt.Sprintf(
		"rf|to:%s|id:%d|am:%s",
		p.Owner,
		p.ID,
		sdk.FormatAmount(p.AmountRequested),
	))
}
