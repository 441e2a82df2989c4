package fund

import "community_fund/sdk"

// AdminSlots is the fixed size of the admin council.
const AdminSlots = 3

// Status captures a proposal's lifecycle.
type Status uint8

const (
	StatusPending   Status = 0
	StatusApproved  Status = 1
	StatusRejected  Status = 2
	StatusFinalized Status = 3
	StatusClaimed   Status = 4
)

// String prints the status as lower-case text for events and logs.
// Example payload: fund.StatusApproved.String()
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusApproved:
		return "approved"
	case StatusRejected:
		return "rejected"
	case StatusFinalized:
		return "finalized"
	case StatusClaimed:
		return "claimed"
	default:
		return "unknown"
	}
}

// IsTerminal reports statuses nothing can move out of.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusClaimed
}

// Claimable is true once either the council or the vote released the funds.
func (s Status) Claimable() bool {
	return s == StatusApproved || s == StatusFinalized
}

// Profile is a participant's counter record.
type Profile struct {
	Owner         sdk.Address
	ProposalCount uint64
}

// Proposal is a funding request, identified by (Owner, ID).
type Proposal struct {
	ID               uint64
	Owner            sdk.Address
	Title            string
	Description      string
	AmountRequested  uint64
	Status           Status
	VoteCount        uint64
	FundingApprovals []sdk.Address
	CreatedAt        int64
	FinalizedAt      int64
	Tx               string
}

// HasApproval reports whether admin already signed off on the funding.
func (p *Proposal) HasApproval(admin sdk.Address) bool {
	for _, a := range p.FundingApprovals {
		if a == admin {
			return true
		}
	}
	return false
}

// SeatedApprovals counts the approvals whose signer still holds a seat in r.
func (p *Proposal) SeatedApprovals(r *Registry) int {
	n := 0
	for _, a := range p.FundingApprovals {
		if r.IsAdmin(a) {
			n++
		}
	}
	return n
}

// VoteRecord is written once per (voter, owner, proposal id) and never changed.
type VoteRecord struct {
	Voter       sdk.Address
	Owner       sdk.Address
	ProposalID  uint64
	Timestamp   int64
	TokenWeight uint64
	Tx          string
}

// Registry holds the admin council.
type Registry struct {
	Admins [AdminSlots]sdk.Address
}

// SlotOf returns the slot holding addr or -1.
func (r *Registry) SlotOf(addr sdk.Address) int {
	for i, a := range r.Admins {
		if a == addr {
			return i
		}
	}
	return -1
}

func (r *Registry) IsAdmin(addr sdk.Address) bool {
	return r.SlotOf(addr) >= 0
}

// Vault tracks cumulative flows through the pool; both totals only grow.
type Vault struct {
	TotalDeposited uint64
	TotalClaimed   uint64
}

// Available is what deposits still cover.
func (v *Vault) Available() uint64 {
	if v.TotalClaimed >= v.TotalDeposited {
		return 0
	}
	return v.TotalDeposited - v.TotalClaimed
}
