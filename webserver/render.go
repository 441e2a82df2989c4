package webserver

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/CosmWasm/tinyjson"
	"github.com/gin-gonic/gin"

	"community_fund/contract"
)

const maxBodyBytes = 64 << 10

var errBadRequest = errors.New("bad request")

func bind(c *gin.Context, v tinyjson.Unmarshaler) error {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", errBadRequest, err)
	}
	if err := tinyjson.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

func render(c *gin.Context, status int, v tinyjson.Marshaler) {
	raw, err := tinyjson.Marshal(v)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(status, "application/json; charset=utf-8", raw)
}

func paramID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: proposal id %q", errBadRequest, c.Param("id"))
	}
	return id, nil
}

// statusFor maps an operation error kind to an HTTP status.
func statusFor(kind string) int {
	switch kind {
	case contract.KindAlreadyExists, contract.KindInvalidState:
		return http.StatusConflict
	case contract.KindUnauthorized:
		return http.StatusForbidden
	case contract.KindValidation:
		return http.StatusBadRequest
	case contract.KindInsufficientFunds:
		return http.StatusPaymentRequired
	case contract.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	if errors.Is(err, errBadRequest) {
		render(c, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: contract.KindValidation})
		return
	}
	kind := contract.ErrorKind(err)
	status := statusFor(kind)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", c.FullPath(), "err", err)
		msg = "internal error"
	}
	render(c, status, ErrorResponse{Error: msg, Kind: kind})
}
