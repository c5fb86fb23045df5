package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func shipmentWithNumber(number string) Shipment {
	return Shipment{ID: number, TrackingNumber: number}
}

func TestNextTrackingNumber_EmptyCollection(t *testing.T) {
	got := NextTrackingNumber(nil, 2025)
	assert.Equal(t, "DR-2025-001", got)
}

func TestNextTrackingNumber_Monotonic(t *testing.T) {
	var shipments []Shipment

	for i := 0; i < 5; i++ {
		next := NextTrackingNumber(shipments, 2025)
		shipments = append(shipments, shipmentWithNumber(next))
	}

	assert.Equal(t, "DR-2025-005", shipments[4].TrackingNumber)

	// All generated numbers are pairwise distinct.
	seen := map[string]bool{}
	for _, s := range shipments {
		assert.False(t, seen[s.TrackingNumber], "duplicate %s", s.TrackingNumber)
		seen[s.TrackingNumber] = true
	}
}

func TestNextTrackingNumber_CrossYearReset(t *testing.T) {
	shipments := []Shipment{
		shipmentWithNumber("DR-2024-041"),
		shipmentWithNumber("DR-2024-042"),
	}

	assert.Equal(t, "DR-2024-043", NextTrackingNumber(shipments, 2024))
	assert.Equal(t, "DR-2025-001", NextTrackingNumber(shipments, 2025))
}

func TestNextTrackingNumber_GapTolerance(t *testing.T) {
	// Suffix 005 was deleted; 007 is the highest survivor.
	shipments := []Shipment{
		shipmentWithNumber("DR-2025-004"),
		shipmentWithNumber("DR-2025-007"),
	}

	got := NextTrackingNumber(shipments, 2025)
	assert.Equal(t, "DR-2025-008", got, "deleted suffixes must not be reused")
}

func TestNextTrackingNumber_MalformedSuffixContributesZero(t *testing.T) {
	shipments := []Shipment{
		shipmentWithNumber("DR-2025-XYZ"),
	}

	assert.Equal(t, "DR-2025-001", NextTrackingNumber(shipments, 2025))

	shipments = append(shipments, shipmentWithNumber("DR-2025-003"))
	assert.Equal(t, "DR-2025-004", NextTrackingNumber(shipments, 2025))
}

func TestNextTrackingNumber_CaseInsensitivePrefix(t *testing.T) {
	shipments := []Shipment{
		shipmentWithNumber("dr-2025-009"),
	}

	assert.Equal(t, "DR-2025-010", NextTrackingNumber(shipments, 2025))
}

func TestNextTrackingNumber_NoTruncationAboveWidth(t *testing.T) {
	shipments := []Shipment{
		shipmentWithNumber("DR-2025-999"),
	}

	assert.Equal(t, "DR-2025-1000", NextTrackingNumber(shipments, 2025))

	shipments = append(shipments, shipmentWithNumber("DR-2025-1000"))
	assert.Equal(t, "DR-2025-1001", NextTrackingNumber(shipments, 2025))
}

func TestNextTrackingNumber_IgnoresOtherPrefixes(t *testing.T) {
	shipments := []Shipment{
		shipmentWithNumber("XX-2025-050"),
		shipmentWithNumber(fmt.Sprintf("DR-%d-002", 2025)),
	}

	assert.Equal(t, "DR-2025-003", NextTrackingNumber(shipments, 2025))
}

func TestNormalizeTrackingNumber(t *testing.T) {
	assert.Equal(t, "DR-2025-007", NormalizeTrackingNumber(" dr-2025-007 "))
	assert.Equal(t, "DR-2025-007", NormalizeTrackingNumber("Dr-2025-007"))
	assert.Equal(t, "DR-2025-007", NormalizeTrackingNumber("DR-2025-007"))
}
