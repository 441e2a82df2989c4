package webserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"community_fund/contract"
	"community_fund/contract/fund"
	"community_fund/sdk"
)

// -----------------------------------------------------------------------------
// Profiles
// -----------------------------------------------------------------------------

func (s *Server) initProfile(c *gin.Context) {
	p, err := s.fund.InitializeUser(c.Request.Context(), caller(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusCreated, p.View())
}

func (s *Server) getProfile(c *gin.Context) {
	p, err := s.fund.GetProfile(c.Request.Context(), sdk.Address(c.Param("owner")))
	if err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, p.View())
}

func (s *Server) listOwners(c *gin.Context) {
	owners, err := s.fund.ListOwners(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	out := fund.OwnerList{Owners: make([]string, 0, len(owners))}
	for _, o := range owners {
		out.Owners = append(out.Owners, o.String())
	}
	render(c, http.StatusOK, out)
}

// -----------------------------------------------------------------------------
// Proposals
// -----------------------------------------------------------------------------

func (s *Server) createProposal(c *gin.Context) {
	var req CreateProposalRequest
	if err := bind(c, &req); err != nil {
		s.fail(c, err)
		return
	}
	if err := errors.Join(s.plainText("title", req.Title), s.plainText("description", req.Description)); err != nil {
		s.fail(c, err)
		return
	}
	p, err := s.fund.CreateProposal(c.Request.Context(), caller(c), contract.CreateProposalArgs{
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusCreated, p.View())
}

func (s *Server) updateProposal(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	var req UpdateProposalRequest
	if err := bind(c, &req); err != nil {
		s.fail(c, err)
		return
	}
	if err := errors.Join(s.plainText("title", req.Title), s.plainText("description", req.Description)); err != nil {
		s.fail(c, err)
		return
	}
	p, err := s.fund.UpdateProposal(c.Request.Context(), caller(c), contract.UpdateProposalArgs{
		Owner:       sdk.Address(c.Param("owner")),
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, p.View())
}

func (s *Server) getProposal(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	p, err := s.fund.GetProposal(c.Request.Context(), sdk.Address(c.Param("owner")), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, p.View())
}

func (s *Server) listProposals(c *gin.Context) {
	owner := sdk.Address(c.Param("owner"))
	ps, err := s.fund.ListProposals(c.Request.Context(), owner)
	if err != nil {
		s.fail(c, err)
		return
	}
	out := fund.ProposalList{Owner: owner.String(), Proposals: make([]fund.ProposalView, 0, len(ps))}
	for _, p := range ps {
		out.Proposals = append(out.Proposals, p.View())
	}
	render(c, http.StatusOK, out)
}

type proposalOp func(ctx *gin.Context, owner sdk.Address, id uint64) (*fund.Proposal, error)

// transition runs a caller initiated status change on /proposals/:owner/:id.
func (s *Server) transition(op proposalOp) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := paramID(c)
		if err != nil {
			s.fail(c, err)
			return
		}
		p, err := op(c, sdk.Address(c.Param("owner")), id)
		if err != nil {
			s.fail(c, err)
			return
		}
		render(c, http.StatusOK, p.View())
	}
}

func (s *Server) approve(c *gin.Context) {
	s.transition(func(c *gin.Context, owner sdk.Address, id uint64) (*fund.Proposal, error) {
		return s.fund.ApproveFunding(c.Request.Context(), caller(c), owner, id)
	})(c)
}

func (s *Server) reject(c *gin.Context) {
	s.transition(func(c *gin.Context, owner sdk.Address, id uint64) (*fund.Proposal, error) {
		return s.fund.RejectProposal(c.Request.Context(), caller(c), owner, id)
	})(c)
}

func (s *Server) finalize(c *gin.Context) {
	s.transition(func(c *gin.Context, owner sdk.Address, id uint64) (*fund.Proposal, error) {
		return s.fund.FinalizeProposal(c.Request.Context(), caller(c), owner, id)
	})(c)
}

// claim pays out the caller's own approved proposal.
func (s *Server) claim(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	p, err := s.fund.ClaimFunds(c.Request.Context(), caller(c), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, p.View())
}

// -----------------------------------------------------------------------------
// Votes
// -----------------------------------------------------------------------------

func (s *Server) vote(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	var req VoteRequest
	if err := bind(c, &req); err != nil {
		s.fail(c, err)
		return
	}
	v, err := s.fund.VoteOnProposal(c.Request.Context(), caller(c), contract.VoteArgs{
		Owner:  sdk.Address(c.Param("owner")),
		ID:     id,
		Weight: req.Weight,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusCreated, v.View())
}

func (s *Server) listVotes(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	owner := sdk.Address(c.Param("owner"))
	votes, err := s.fund.ListVotes(c.Request.Context(), owner, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	out := fund.VoteList{Owner: owner.String(), ProposalID: id, Votes: make([]fund.VoteView, 0, len(votes))}
	for _, v := range votes {
		out.Votes = append(out.Votes, v.View())
	}
	render(c, http.StatusOK, out)
}

// -----------------------------------------------------------------------------
// Admins & Vault
// -----------------------------------------------------------------------------

func (s *Server) initAdmins(c *gin.Context) {
	var req InitAdminRequest
	if err := bind(c, &req); err != nil {
		s.fail(c, err)
		return
	}
	reg, err := s.fund.InitializeAdmin(c.Request.Context(), caller(c), sdk.Address(req.Admin2), sdk.Address(req.Admin3))
	if err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusCreated, reg.View())
}

func (s *Server) transferAdmin(c *gin.Context) {
	var req TransferAdminRequest
	if err := bind(c, &req); err != nil {
		s.fail(c, err)
		return
	}
	reg, err := s.fund.TransferAdmin(c.Request.Context(), caller(c), sdk.Address(req.Old), sdk.Address(req.New))
	if err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, reg.View())
}

func (s *Server) getAdmins(c *gin.Context) {
	reg, err := s.fund.GetAdmins(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, reg.View())
}

func (s *Server) initVault(c *gin.Context) {
	if _, err := s.fund.InitializeVault(c.Request.Context(), caller(c)); err != nil {
		s.fail(c, err)
		return
	}
	s.vaultView(c, http.StatusCreated)
}

func (s *Server) deposit(c *gin.Context) {
	var req DepositRequest
	if err := bind(c, &req); err != nil {
		s.fail(c, err)
		return
	}
	if _, err := s.fund.Deposit(c.Request.Context(), caller(c), req.Amount); err != nil {
		s.fail(c, err)
		return
	}
	s.vaultView(c, http.StatusOK)
}

func (s *Server) getVault(c *gin.Context) {
	s.vaultView(c, http.StatusOK)
}

func (s *Server) vaultView(c *gin.Context, status int) {
	v, err := s.fund.GetVault(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	render(c, status, v)
}
