package fund

import "community_fund/sdk"

// Read-only JSON shapes handed to presentation layers. Marshalers live in views_tinyjson.go.

//tinyjson:json
type ProfileView struct {
	Owner         string `json:"owner"`
	ProposalCount uint64 `json:"proposal_count"`
}

//tinyjson:json
type ProposalView struct {
	ID               uint64   `json:"id"`
	Owner            string   `json:"owner"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	AmountRequested  uint64   `json:"amount_requested"`
	Amount           string   `json:"amount"`
	Status           string   `json:"status"`
	VoteCount        uint64   `json:"vote_count"`
	FundingApprovals []string `json:"funding_approvals"`
	CreatedAt        int64    `json:"created_at"`
	FinalizedAt      int64    `json:"finalized_at"`
	Tx               string   `json:"tx"`
}

//tinyjson:json
type VoteView struct {
	Voter       string `json:"voter"`
	Owner       string `json:"owner"`
	ProposalID  uint64 `json:"proposal_id"`
	Timestamp   int64  `json:"timestamp"`
	TokenWeight uint64 `json:"token_weight"`
	Tx          string `json:"tx"`
}

//tinyjson:json
type AdminsView struct {
	Admins []string `json:"admins"`
}

//tinyjson:json
type VaultView struct {
	Account        string `json:"account"`
	TotalDeposited uint64 `json:"total_deposited"`
	TotalClaimed   uint64 `json:"total_claimed"`
	Available      uint64 `json:"available"`
	Custody        uint64 `json:"custody"`
}

//tinyjson:json
type ProposalList struct {
	Owner     string         `json:"owner"`
	Proposals []ProposalView `json:"proposals"`
}

//tinyjson:json
type VoteList struct {
	Owner      string     `json:"owner"`
	ProposalID uint64     `json:"proposal_id"`
	Votes      []VoteView `json:"votes"`
}

//tinyjson:json
type OwnerList struct {
	Owners []string `json:"owners"`
}

func (p *Profile) View() ProfileView {
	return ProfileView{Owner: p.Owner.String(), ProposalCount: p.ProposalCount}
}

// View flattens the proposal; Amount is the human readable form of AmountRequested.
// Example payload: prpsl.View().Amount == "1000"
func (p *Proposal) View() ProposalView {
	return ProposalView{
		ID:               p.ID,
		Owner:            p.Owner.String(),
		Title:            p.Title,
		Description:      p.Description,
		AmountRequested:  p.AmountRequested,
		Amount:           sdk.FormatAmount(p.AmountRequested),
		Status:           p.Status.String(),
		VoteCount:        p.VoteCount,
		FundingApprovals: addressStrings(p.FundingApprovals),
		CreatedAt:        p.CreatedAt,
		FinalizedAt:      p.FinalizedAt,
		Tx:               p.Tx,
	}
}

func (v *VoteRecord) View() VoteView {
	return VoteView{
		Voter:       v.Voter.String(),
		Owner:       v.Owner.String(),
		ProposalID:  v.ProposalID,
		Timestamp:   v.Timestamp,
		TokenWeight: v.TokenWeight,
		Tx:          v.Tx,
	}
}

func (r *Registry) View() AdminsView {
	return AdminsView{Admins: addressStrings(r.Admins[:])}
}

func addressStrings(in []sdk.Address) []string {
	out := make([]string, len(in))
	for i, a := range in {
		out[i] = a.String()
	}
	return out
}
