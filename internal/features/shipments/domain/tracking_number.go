package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// trackingPrefix is the carrier code leading every tracking number.
// The full format DR-<4-digit year>-<zero-padded sequence> is a contract
// visible to customers and must be preserved.
const trackingPrefix = "DR"

// NextTrackingNumber computes the next tracking number for the given year
// from a snapshot of the shipment collection. Pure: no side effects, always
// produces a value. The numeric suffix is one greater than the maximum suffix
// already issued for that year; deleted numbers are never reused. Malformed
// suffixes on existing records are tolerated and contribute 0.
func NextTrackingNumber(shipments []Shipment, year int) string {
	prefix := fmt.Sprintf("%s-%d-", trackingPrefix, year)

	maxSuffix := 0
	for _, s := range shipments {
		if !strings.HasPrefix(strings.ToUpper(s.TrackingNumber), prefix) {
			continue
		}
		parts := strings.Split(s.TrackingNumber, "-")
		n, err := strconv.Atoi(parts[len(parts)-1])
		if err != nil {
			n = 0
		}
		if n > maxSuffix {
			maxSuffix = n
		}
	}

	return fmt.Sprintf("%s%03d", prefix, maxSuffix+1)
}

// NormalizeTrackingNumber canonicalizes customer input for lookup:
// surrounding whitespace is trimmed and the comparison is case-insensitive.
func NormalizeTrackingNumber(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
