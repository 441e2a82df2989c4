package contract

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"community_fund/sdk"
)

// -----------------------------------------------------------------------------
// Validation Helpers
// -----------------------------------------------------------------------------

// validateProposalText counts characters, not bytes, so multi-byte titles get the same room.
// Example payload: validateProposalText("Docs translation", "Translate the handbook")
func validateProposalText(title, description string) error {
	if n := utf8.RuneCountInString(title); n > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, n, MaxTitleLength)
	}
	if n := utf8.RuneCountInString(description); n > MaxDescriptionLength {
		return fmt.Errorf("%w: %d > %d", ErrDescriptionTooLong, n, MaxDescriptionLength)
	}
	return nil
}

func validateAddress(a sdk.Address) error {
	if !a.IsParticipant() {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, a.String())
	}
	return nil
}

// -----------------------------------------------------------------------------
// Arithmetic
// -----------------------------------------------------------------------------

// addU64 adds with an overflow check instead of wrapping.
func addU64(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}

// -----------------------------------------------------------------------------
// String Conversion Helpers
// -----------------------------------------------------------------------------

// AddressesToString joins addresses for event lines as a,b,c.
// Example payload: AddressesToString([]sdk.Address{"alice", "bob"})
func AddressesToString(addrs []sdk.Address) string {
	parts := make([]string, len(addrs))
	for i, a := range addrs {
		parts[i] = a.String()
	}
	return strings.Join(parts, ",")
}
