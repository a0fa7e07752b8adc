package compensation

import (
	"strings"
	"time"

	"backend/internal/domain/models"
)

const timeLayout = "15:04"

// WorkHours computes total billable hours across all travel segments.
// Segments are grouped by calendar date; each date contributes the span from
// the earliest start to the latest end among segments with both times set.
// Segments missing a time are ignored rather than failing the calculation.
func WorkHours(segments []models.TravelSegment) float64 {
	type span struct {
		earliest time.Time
		latest   time.Time
		valid    bool
	}

	byDate := map[string]*span{}
	for _, seg := range segments {
		if strings.TrimSpace(seg.Date) == "" {
			continue
		}
		start, err := time.Parse(timeLayout, strings.TrimSpace(seg.StartTime))
		if err != nil {
			continue
		}
		end, err := time.Parse(timeLayout, strings.TrimSpace(seg.EndTime))
		if err != nil {
			continue
		}

		s, ok := byDate[seg.Date]
		if !ok {
			byDate[seg.Date] = &span{earliest: start, latest: end, valid: true}
			continue
		}
		if start.Before(s.earliest) {
			s.earliest = start
		}
		if end.After(s.latest) {
			s.latest = end
		}
	}

	var total float64
	for _, s := range byDate {
		if !s.valid {
			continue
		}
		if s.latest.After(s.earliest) {
			total += s.latest.Sub(s.earliest).Hours()
		}
	}
	return total
}
