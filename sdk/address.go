package sdk

import (
	"strings"
	"unicode"
)

type AddressDomain string

const (
	AddressDomainUser   AddressDomain = "user"
	AddressDomainSystem AddressDomain = "system"
)

// MaxAddressLength caps identities so storage keys stay bounded.
const MaxAddressLength = 128

// Address is an already-authenticated participant identity, like "alice" or "did:key:z6Mk...".
type Address string

// String returns the literal representation of the address.
// Example payload: sdk.Address("alice").String()
func (a Address) String() string {
	return string(a)
}

// Domain checks the prefix so system accounts (like the vault) never act as participants.
// Example payload: sdk.Address("system:vault").Domain()
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), "system:") {
		return AddressDomainSystem
	}
	return AddressDomainUser
}

// IsValid is a light sanity check: non-empty, bounded, no whitespace or control chars.
// Key layout relies on the missing NUL byte, see contract/keys.go.
// Example payload: sdk.Address("alice").IsValid()
func (a Address) IsValid() bool {
	if a == "" || len(a) > MaxAddressLength {
		return false
	}
	for _, r := range a.String() {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// IsParticipant reports whether the address may act as a caller of the fund.
func (a Address) IsParticipant() bool {
	return a.IsValid() && a.Domain() == AddressDomainUser
}
