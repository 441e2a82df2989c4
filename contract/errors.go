package contract

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by an operation matches exactly one of
// these with errors.Is, except backend failures which match none.
var (
	ErrAlreadyExists     = errors.New("already exists")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidState      = errors.New("invalid state")
	ErrValidation        = errors.New("validation failed")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotFound          = errors.New("not found")
)

// AlreadyExists
var (
	ErrDuplicateVote     = fmt.Errorf("%w: voter already voted on this proposal", ErrAlreadyExists)
	ErrAlreadyApproved   = fmt.Errorf("%w: admin already approved this proposal", ErrAlreadyExists)
	ErrProfileExists     = fmt.Errorf("%w: profile already initialized", ErrAlreadyExists)
	ErrAdminsInitialized = fmt.Errorf("%w: admins already initialized", ErrAlreadyExists)
	ErrVaultInitialized  = fmt.Errorf("%w: vault already initialized", ErrAlreadyExists)
)

// Unauthorized
var (
	ErrInvalidOwner  = fmt.Errorf("%w: caller is not the proposal owner", ErrUnauthorized)
	ErrNotAdmin      = fmt.Errorf("%w: caller is not an admin", ErrUnauthorized)
	ErrNotAuthority  = fmt.Errorf("%w: caller is not the deployment authority", ErrUnauthorized)
	ErrAdminNotFound = fmt.Errorf("%w: admin to replace not found", ErrUnauthorized)
)

// InvalidState
var (
	ErrVotingStillActive = fmt.Errorf("%w: voting period still active", ErrInvalidState)
	ErrVotingExpired     = fmt.Errorf("%w: voting period has ended", ErrInvalidState)
	ErrNotApproved       = fmt.Errorf("%w: proposal not approved", ErrInvalidState)
	ErrAlreadyFinalized  = fmt.Errorf("%w: proposal already finalized", ErrInvalidState)
	ErrAlreadyClaimed    = fmt.Errorf("%w: funds already claimed", ErrInvalidState)
	ErrNotPending        = fmt.Errorf("%w: proposal is not pending", ErrInvalidState)
)

// Validation
var (
	ErrTitleTooLong       = fmt.Errorf("%w: title too long", ErrValidation)
	ErrDescriptionTooLong = fmt.Errorf("%w: description too long", ErrValidation)
	ErrInvalidAddress     = fmt.Errorf("%w: invalid address", ErrValidation)
	ErrDuplicateAdmin     = fmt.Errorf("%w: admins must be distinct", ErrValidation)
	ErrOverflow           = fmt.Errorf("%w: arithmetic overflow", ErrValidation)
)

// InsufficientFunds
var (
	ErrInsufficientVaultBalance = fmt.Errorf("%w: vault cannot cover the amount", ErrInsufficientFunds)
	ErrInsufficientBalance      = fmt.Errorf("%w: caller balance too low", ErrInsufficientFunds)
)

// NotFound
var (
	ErrProfileNotFound      = fmt.Errorf("%w: profile", ErrNotFound)
	ErrProposalNotFound     = fmt.Errorf("%w: proposal", ErrNotFound)
	ErrAdminsNotInitialized = fmt.Errorf("%w: admins not initialized", ErrNotFound)
	ErrVaultNotInitialized  = fmt.Errorf("%w: vault not initialized", ErrNotFound)
)

// Error kind names reported by ErrorKind.
const (
	KindOK                = "ok"
	KindAlreadyExists     = "already_exists"
	KindUnauthorized      = "unauthorized"
	KindInvalidState      = "invalid_state"
	KindValidation        = "validation"
	KindInsufficientFunds = "insufficient_funds"
	KindNotFound          = "not_found"
	KindInternal          = "internal"
)

// ErrorKind names the kind of err for metrics labels and transport mapping.
// Example payload: ErrorKind(ErrDuplicateVote) == "already_exists"
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, ErrAlreadyExists):
		return KindAlreadyExists
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrInvalidState):
		return KindInvalidState
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrInsufficientFunds):
		return KindInsufficientFunds
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	default:
		return KindInternal
	}
}
