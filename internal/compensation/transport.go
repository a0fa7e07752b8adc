package compensation

import (
	"strings"

	"backend/internal/domain/models"
)

// SegmentCost prices a single travel segment against the rate table.
// Vehicle modes bill kilometers, public transit passes ticket costs through,
// on-foot and bicycle are free. Segments without a transport mode cost zero.
func SegmentCost(seg models.TravelSegment, prices models.PriceList) float64 {
	mode := strings.TrimSpace(seg.TransportType)
	switch {
	case mode == "":
		return 0
	case models.IsVehicleMode(mode):
		return seg.Kilometers * prices.TransportRate(mode)
	case mode == models.TransportPublicTransit:
		return seg.TicketCosts
	default:
		// on-foot, bicycle, anything unrecognized
		return 0
	}
}

// TransportCosts sums SegmentCost across all segments.
func TransportCosts(segments []models.TravelSegment, prices models.PriceList) float64 {
	var total float64
	for _, seg := range segments {
		total += SegmentCost(seg, prices)
	}
	return total
}
