package webserver

// CreateProposalRequest is the body of POST /v1/proposals.
//tinyjson:json
type CreateProposalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Amount      uint64 `json:"amount"`
}

// UpdateProposalRequest is the body of PUT /v1/proposals/:owner/:id.
//tinyjson:json
type UpdateProposalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

//tinyjson:json
type VoteRequest struct {
	Weight uint64 `json:"weight"`
}

//tinyjson:json
type InitAdminRequest struct {
	Admin2 string `json:"admin2"`
	Admin3 string `json:"admin3"`
}

//tinyjson:json
type TransferAdminRequest struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// DepositRequest amounts are in smallest units.
//tinyjson:json
type DepositRequest struct {
	Amount uint64 `json:"amount"`
}

//tinyjson:json
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

//tinyjson:json
type HealthResponse struct {
	Status string `json:"status"`
}
