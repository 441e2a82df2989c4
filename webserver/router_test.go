package webserver

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/CosmWasm/tinyjson"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"community_fund/contract"
	"community_fund/contract/fund"
	"community_fund/sdk"
	"community_fund/state"
)

var secret = []byte("test-secret")

type harness struct {
	t      *testing.T
	router *gin.Engine
	fund   *contract.Contract
	clock  *sdk.ManualClock
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	h := &harness{
		t:     t,
		clock: sdk.NewManualClock(1_756_857_600),
	}
	h.fund = contract.New(state.NewMem(),
		contract.WithClock(h.clock),
		contract.WithAuthority(sdk.StaticAuthority{Address: "root"}),
		contract.WithMetrics(contract.NewMetrics(reg)),
		contract.WithLogger(logger),
	)
	h.router = New(h.fund, Options{JWTSecret: secret, Gatherer: reg, Logger: logger})
	return h
}

func (h *harness) do(method, path string, as sdk.Address, body string) *httptest.ResponseRecorder {
	h.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if as != "" {
		tok, err := IssueToken(secret, as, time.Hour)
		require.NoError(h.t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v tinyjson.Unmarshaler) {
	t.Helper()
	require.NoError(t, tinyjson.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func errKind(t *testing.T, w *httptest.ResponseRecorder) string {
	var e ErrorResponse
	decode(t, w, &e)
	return e.Kind
}

func TestHealthz(t *testing.T) {
	h := newHarness(t)
	w := h.do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAuthRequired(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodPost, "/v1/profile", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "alice"}).
		SignedString([]byte("other-secret"))
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"addr": "alice"}).SignedString(secret)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodPost, "/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer "+noSubject)
	rec = httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProposalFlow(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodPost, "/v1/profile", "alice", "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = h.do(http.MethodPost, "/v1/profile", "alice", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, contract.KindAlreadyExists, errKind(t, w))

	w = h.do(http.MethodPost, "/v1/proposals", "alice",
		`{"title":"<b>Docs</b> & more","description":"write docs","amount":5000000000}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, contract.KindValidation, errKind(t, w))
	w = h.do(http.MethodPost, "/v1/proposals", "alice",
		`{"title":"Docs","description":"<script>x()</script>write docs","amount":5000000000}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "description must not contain markup")

	w = h.do(http.MethodPost, "/v1/proposals", "alice",
		`{"title":"R&D < budget","description":"\"docs\" & more","amount":5000000000}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var p fund.ProposalView
	decode(t, w, &p)
	assert.Equal(t, "R&D < budget", p.Title)
	assert.Equal(t, `"docs" & more`, p.Description)
	assert.Equal(t, "5", p.Amount)
	assert.Equal(t, "pending", p.Status)

	w = h.do(http.MethodPost, "/v1/proposals", "alice", `{"title":"`+strings.Repeat("t", 51)+`","amount":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, contract.KindValidation, errKind(t, w))

	w = h.do(http.MethodPost, "/v1/proposals/alice/0/votes", "bob", `{"weight":150}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = h.do(http.MethodPost, "/v1/proposals/alice/0/votes", "bob", `{"weight":1}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = h.do(http.MethodPost, "/v1/proposals/alice/0/finalize", "bob", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, contract.KindInvalidState, errKind(t, w))

	w = h.do(http.MethodPut, "/v1/proposals/alice/0", "bob", `{"title":"mine now","description":""}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = h.do(http.MethodPut, "/v1/proposals/alice/0", "alice", `{"title":"<i>Docs</i>","description":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, contract.KindValidation, errKind(t, w))

	w = h.do(http.MethodGet, "/v1/proposals/alice/0/votes", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var votes fund.VoteList
	decode(t, w, &votes)
	require.Len(t, votes.Votes, 1)
	assert.Equal(t, "bob", votes.Votes[0].Voter)
	assert.Equal(t, uint64(150), votes.Votes[0].TokenWeight)

	h.clock.Advance(contract.VotingWindow)
	w = h.do(http.MethodPost, "/v1/proposals/alice/0/finalize", "bob", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &p)
	assert.Equal(t, "finalized", p.Status)
	assert.Equal(t, uint64(150), p.VoteCount)

	w = h.do(http.MethodGet, "/v1/proposals/alice", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list fund.ProposalList
	decode(t, w, &list)
	assert.Len(t, list.Proposals, 1)

	w = h.do(http.MethodGet, "/v1/owners", "", "")
	assert.JSONEq(t, `{"owners":["alice"]}`, w.Body.String())
}

func TestBadRequests(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodGet, "/v1/proposals/alice/x", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodGet, "/v1/proposals/alice/0", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = h.do(http.MethodPost, "/v1/proposals", "alice", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodGet, "/v1/vault", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, contract.KindNotFound, errKind(t, w))
}

func TestTreasuryFlow(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.fund.Credit(context.Background(), "funder", 10*sdk.UnitScale))

	w := h.do(http.MethodPost, "/v1/admin/init", "mallory", `{"admin2":"carol","admin3":"dave"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = h.do(http.MethodPost, "/v1/admin/init", "root", `{"admin2":"carol","admin3":"dave"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{"admins":["root","carol","dave"]}`, w.Body.String())

	w = h.do(http.MethodPost, "/v1/vault/init", "funder", "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = h.do(http.MethodPost, "/v1/vault/deposit", "funder", `{"amount":20000000000}`)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	w = h.do(http.MethodPost, "/v1/vault/deposit", "funder", `{"amount":10000000000}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	h.do(http.MethodPost, "/v1/profile", "alice", "")
	h.do(http.MethodPost, "/v1/proposals", "alice", `{"title":"t","description":"d","amount":4000000000}`)

	w = h.do(http.MethodPost, "/v1/claims/0", "alice", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = h.do(http.MethodPost, "/v1/proposals/alice/0/approve", "carol", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = h.do(http.MethodPost, "/v1/claims/0", "alice", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var p fund.ProposalView
	decode(t, w, &p)
	assert.Equal(t, "claimed", p.Status)

	bal, err := h.fund.Balance(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 4*sdk.UnitScale, bal)

	w = h.do(http.MethodGet, "/v1/vault", "", "")
	var v fund.VaultView
	decode(t, w, &v)
	assert.Equal(t, 6*sdk.UnitScale, v.Available)
	assert.Equal(t, 6*sdk.UnitScale, v.Custody)

	w = h.do(http.MethodPost, "/v1/admin/transfer", "dave", `{"old":"dave","new":"erin"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = h.do(http.MethodGet, "/v1/admins", "", "")
	assert.JSONEq(t, `{"admins":["root","carol","erin"]}`, w.Body.String())

	w = h.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `fund_operations_total{op="claim_funds",result="ok"} 1`)
}
