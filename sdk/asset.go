package sdk

import (
	"strconv"
	"strings"
)

// Decimals is the number of fractional digits in one whole unit; amounts are
// always handled in the smallest unit.
const Decimals = 9

// UnitScale is 10^Decimals.
const UnitScale uint64 = 1_000_000_000

// FormatAmount renders smallest units as a decimal string for logs and events.
// Example payload: sdk.FormatAmount(1_500_000_000) // "1.5"
func FormatAmount(v uint64) string {
	whole := v / UnitScale
	frac := v % UnitScale
	if frac == 0 {
		return strconv.FormatUint(whole, 10)
	}
	fs := strconv.FormatUint(frac, 10)
	fs = strings.Repeat("0", Decimals-len(fs)) + fs
	return strconv.FormatUint(whole, 10) + "." + strings.TrimRight(fs, "0")
}
