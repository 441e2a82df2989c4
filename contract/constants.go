package contract

import (
	"community_fund/contract/fund"
	"community_fund/sdk"
)

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MaxTitleLength limits proposal titles, counted in characters.
	MaxTitleLength = 50
	// MaxDescriptionLength limits proposal descriptions, counted in characters.
	MaxDescriptionLength = 200
)

// -----------------------------------------------------------------------------
// Governance Policy
// -----------------------------------------------------------------------------

const (
	// MultisigThreshold is the amount (smallest units) from which two admins must sign off.
	MultisigThreshold uint64 = 1000 * sdk.UnitScale
	// RequiredApprovals is the number of distinct admins needed at or above the threshold.
	RequiredApprovals = 2
	// VotingWindow is how long (seconds) a proposal collects votes before it can be finalized.
	VotingWindow int64 = 7 * 24 * 60 * 60
	// MinVotes is the tally a proposal needs to pass finalization.
	MinVotes uint64 = 100
	// AdminSlots is the council size.
	AdminSlots = fund.AdminSlots
)

// DefaultVaultAccount is the account holding the pool unless configured otherwise.
const DefaultVaultAccount sdk.Address = "system:vault"

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kProfile stores encoded Profile records per owner.
	kProfile byte = 0x01
	// kProposal contains encoded Proposal records, owner scoped.
	kProposal byte = 0x10
	// kVote holds the immutable VoteRecord per (voter, owner, proposal).
	kVote byte = 0x20
	// kRegistry is the admin council singleton.
	kRegistry byte = 0x30
	// kVault is the vault accounting singleton.
	kVault byte = 0x31
	// kIndexMeta counts the chunks of an index.
	kIndexMeta byte = 0x40
	// kIndexChunk holds one chunk of index entries.
	kIndexChunk byte = 0x41
	// kBalance holds the decimal balance of one account.
	kBalance byte = 0x50
	// kGenesis marks that the configured genesis balances were minted.
	kGenesis byte = 0x51
)

// -----------------------------------------------------------------------------
// Indexes
// -----------------------------------------------------------------------------

const (
	// maxChunkSize splits every index so no single value grows without bound.
	maxChunkSize = 2500
	// idxOwners holds every address that initialized a profile.
	idxOwners byte = 'o'
	// idxProposalVoters + owner + id holds the voters of one proposal.
	idxProposalVoters byte = 'v'
)
